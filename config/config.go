package config

import (
	"fmt"

	"github.com/HMasataka/rotation/domain/entity"
	"github.com/jessevdk/go-flags"
)

const DefaultRounds = 11

type Config struct {
	Seed    uint64 `short:"s" long:"seed" description:"Seed for the random source, 0 derives one from the clock" default:"0"`
	Rounds  int    `short:"r" long:"rounds" description:"Number of rounds to generate, including the opening round" default:"11"`
	Output  string `short:"o" long:"output" description:"Output file (default: best_games_<players>_<courts>.csv)"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable development logging"`

	Args struct {
		Players int `positional-arg-name:"players" description:"Total number of players"`
		Courts  int `positional-arg-name:"courts" description:"Number of available courts"`
	} `positional-args:"yes" required:"yes"`
}

// Parse reads the command line. A help request is returned as the go-flags
// error unchanged so callers can detect it with flags.WroteHelp.
func Parse(args []string) (*Config, error) {
	var cfg Config

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "rotation"

	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return nil, err
		}
		return nil, entity.ErrConfigParseFailed.WithCause(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Args.Players < 0 {
		return entity.ErrInvalidPlayerCount
	}
	if c.Args.Courts < 0 {
		return entity.ErrInvalidCourtCount
	}
	if c.Rounds < 1 {
		return entity.ErrInvalidRoundCount
	}

	return nil
}

func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}

	return fmt.Sprintf("best_games_%d_%d.csv", c.Args.Players, c.Args.Courts)
}
