package service

import (
	"slices"

	"github.com/HMasataka/rotation/domain/driver"
	"github.com/HMasataka/rotation/domain/entity"
	"github.com/samber/lo"
)

// WaitSampler picks the cohort that plays the next round.
type WaitSampler interface {
	Sample(waits []int, nPlaying int) []entity.PlayerID
}

type waitSampler struct {
	random driver.RandomDriver
}

func NewWaitSampler(random driver.RandomDriver) WaitSampler {
	return &waitSampler{
		random: random,
	}
}

// Sample returns exactly nPlaying distinct players in ascending order.
// Players that waited more than the current minimum are preferred, unless
// there are more of them than seats, in which case everyone is drawn
// uniformly.
func (s *waitSampler) Sample(waits []int, nPlaying int) []entity.PlayerID {
	if nPlaying == 0 || len(waits) == 0 {
		return nil
	}

	all := lo.Map(lo.Range(len(waits)), func(i int, _ int) entity.PlayerID { return entity.PlayerID(i) })
	lowest := lo.Min(waits)
	priority := lo.Filter(all, func(p entity.PlayerID, _ int) bool { return waits[p] != lowest })

	var cohort []entity.PlayerID
	switch k := len(priority); {
	case k == nPlaying:
		cohort = priority
	case k < nPlaying:
		rest := lo.Without(all, priority...)
		cohort = append(priority, s.random.Sample(rest, nPlaying-k)...)
	default:
		// NOTE fairness priority is discarded here; kept as the historical behavior.
		cohort = s.random.Sample(all, nPlaying)
	}

	slices.Sort(cohort)
	return cohort
}
