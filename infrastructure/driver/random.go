package driver

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/HMasataka/rotation/config"
	idriver "github.com/HMasataka/rotation/domain/driver"
	"github.com/HMasataka/rotation/domain/entity"
)

type randomDriver struct {
	seed uint64
	rand *rand.Rand
}

// NewRandomDriver seeds from the configuration, or from the clock when no
// seed was given.
func NewRandomDriver(cfg *config.Config) idriver.RandomDriver {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return NewSeededRandomDriver(seed)
}

func NewSeededRandomDriver(seed uint64) idriver.RandomDriver {
	return &randomDriver{
		seed: seed,
		rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

func (d *randomDriver) Seed() uint64 {
	return d.seed
}

func (d *randomDriver) Sample(population []entity.PlayerID, n int) []entity.PlayerID {
	if n > len(population) {
		panic("sample larger than population")
	}

	pool := slices.Clone(population)
	for i := 0; i < n; i++ {
		j := i + d.rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}

func (d *randomDriver) Coin() bool {
	return d.rand.IntN(2) == 1
}
