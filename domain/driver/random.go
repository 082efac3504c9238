package driver

import "github.com/HMasataka/rotation/domain/entity"

// RandomDriver is the single source of randomness shared by a schedule run.
type RandomDriver interface {
	// Sample draws n distinct players uniformly without replacement.
	Sample(population []entity.PlayerID, n int) []entity.PlayerID
	// Coin returns true with probability 0.5.
	Coin() bool
	Seed() uint64
}
