package service

import (
	"math/rand/v2"
	"slices"

	"github.com/HMasataka/rotation/domain/entity"
	"github.com/samber/lo"
)

// testRandom is a seeded RandomDriver local to the domain tests.
type testRandom struct {
	rand *rand.Rand
}

func newTestRandom(seed uint64) *testRandom {
	return &testRandom{rand: rand.New(rand.NewPCG(seed, seed))}
}

func (r *testRandom) Sample(population []entity.PlayerID, n int) []entity.PlayerID {
	pool := slices.Clone(population)
	r.rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

func (r *testRandom) Coin() bool {
	return r.rand.IntN(2) == 1
}

func (r *testRandom) Seed() uint64 {
	return 0
}

func playerRange(n int) []entity.PlayerID {
	return lo.Map(lo.Range(n), func(i int, _ int) entity.PlayerID { return entity.PlayerID(i) })
}

// recordedHistory returns a history in which the given courts were played as
// the only round so far.
func recordedHistory(totalPlayers int, round entity.Round) *entity.History {
	h := entity.NewHistory(totalPlayers)
	for _, court := range round {
		for i, x := range court {
			for j, y := range court {
				if i != j {
					h.Pairs[x][y]++
				}
			}
		}
		h.Teammates[court[0]][court[1]]++
		h.Teammates[court[1]][court[0]]++
		h.Teammates[court[2]][court[3]]++
		h.Teammates[court[3]][court[2]]++
	}
	h.Previous = round.Groups()
	h.Rounds = 1
	return h
}
