package config

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]string{"10", "2"})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Args.Players)
	assert.Equal(t, 2, cfg.Args.Courts)
	assert.Equal(t, DefaultRounds, cfg.Rounds)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "best_games_10_2.csv", cfg.OutputPath())
}

func TestParseOptions(t *testing.T) {
	cfg, err := Parse([]string{"--seed", "42", "-r", "5", "-o", "out.csv", "-v", "9", "3"})
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.Rounds)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "out.csv", cfg.OutputPath())
}

func TestParseErrors(t *testing.T) {
	cases := map[string][]string{
		"no arguments":        {},
		"missing court count": {"8"},
		"non-integer players": {"eight", "2"},
		"non-integer courts":  {"8", "two"},
		"negative players":    {"--", "-8", "2"},
		"negative courts":     {"--", "8", "-2"},
		"zero rounds":         {"-r", "0", "8", "2"},
		"non-integer seed":    {"--seed", "abc", "8", "2"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse(args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, flags.WroteHelp(err))
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"--help"})
	require.Error(t, err)
	assert.True(t, flags.WroteHelp(err))
}
