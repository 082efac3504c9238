package service

import (
	"testing"

	"github.com/HMasataka/rotation/domain/entity"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitSampler_PriorityFillsCohort(t *testing.T) {
	s := NewWaitSampler(newTestRandom(1))

	waits := []int{0, 1, 0, 1, 1, 0, 1, 0}
	cohort := s.Sample(waits, 4)

	assert.Equal(t, []entity.PlayerID{1, 3, 4, 6}, cohort)
}

func TestWaitSampler_PriorityTopUp(t *testing.T) {
	s := NewWaitSampler(newTestRandom(2))

	waits := []int{2, 1, 1, 2, 1, 1, 1, 1, 1}
	for range 50 {
		cohort := s.Sample(waits, 8)

		require.Len(t, cohort, 8)
		assert.Contains(t, cohort, entity.PlayerID(0))
		assert.Contains(t, cohort, entity.PlayerID(3))
		assert.Len(t, lo.Uniq(cohort), 8)
		assert.IsIncreasing(t, cohort)
	}
}

func TestWaitSampler_TooManyPriorityPlayers(t *testing.T) {
	s := NewWaitSampler(newTestRandom(3))

	// Six players waited more than the minimum but only four can play.
	waits := []int{0, 0, 0, 0, 1, 1, 1, 1, 1, 1}
	seen := map[entity.PlayerID]bool{}
	for range 200 {
		cohort := s.Sample(waits, 4)

		require.Len(t, cohort, 4)
		assert.Len(t, lo.Uniq(cohort), 4)
		assert.IsIncreasing(t, cohort)
		for _, p := range cohort {
			seen[p] = true
		}
	}

	// Every player, including those at the minimum, gets drawn.
	assert.Len(t, seen, len(waits))
}

func TestWaitSampler_EqualWaits(t *testing.T) {
	s := NewWaitSampler(newTestRandom(4))

	cohort := s.Sample(make([]int, 8), 8)
	assert.Equal(t, playerRange(8), cohort)

	cohort = s.Sample(make([]int, 7), 4)
	assert.Len(t, lo.Uniq(cohort), 4)
	for _, p := range cohort {
		assert.Less(t, int(p), 7)
	}
}

func TestWaitSampler_NoCourts(t *testing.T) {
	s := NewWaitSampler(newTestRandom(5))

	assert.Empty(t, s.Sample([]int{0, 0, 0}, 0))
	assert.Empty(t, s.Sample(nil, 0))
}
