package usecase

import (
	"context"

	"github.com/HMasataka/rotation/domain/driver"
	"github.com/HMasataka/rotation/domain/entity"
	"github.com/HMasataka/rotation/domain/service"
)

type Selection struct {
	Round entity.Round
	Cost  float64
	// Candidates is the number of rounds scored.
	Candidates int
}

type RoundUsecase interface {
	Select(ctx context.Context, history *entity.History, usedCourts int) (*Selection, error)
}

type roundUsecase struct {
	sampler          service.WaitSampler
	partitionService service.PartitionService
	teamService      service.TeamService
	evaluator        entity.Evaluator
	random           driver.RandomDriver
}

func NewRoundUsecase(
	sampler service.WaitSampler,
	partitionService service.PartitionService,
	teamService service.TeamService,
	evaluator entity.Evaluator,
	random driver.RandomDriver,
) RoundUsecase {
	return &roundUsecase{
		sampler:          sampler,
		partitionService: partitionService,
		teamService:      teamService,
		evaluator:        evaluator,
		random:           random,
	}
}

// Select scores every candidate for the sampled cohort and keeps the cheapest.
// An equal-cost candidate replaces the current best on a coin flip, which
// favours candidates enumerated late rather than sampling ties uniformly.
// Cancellation is observed before each partition.
func (u *roundUsecase) Select(ctx context.Context, history *entity.History, usedCourts int) (*Selection, error) {
	nPlaying := usedCourts * entity.CourtSize

	cohort := u.sampler.Sample(history.Waits, nPlaying)
	if len(cohort) != nPlaying {
		panic("sampled cohort does not fill the courts")
	}

	best := &Selection{Round: entity.DefaultRound(usedCourts)}
	found := false

	for partition := range u.partitionService.Partitions(cohort) {
		if err := ctx.Err(); err != nil {
			return nil, entity.ErrScheduleCanceled.WithCause(err)
		}

		for round := range u.teamService.Rounds(partition) {
			best.Candidates++

			cost := u.evaluator.Evaluate(round, history)
			if !found || cost < best.Cost || cost == best.Cost && u.random.Coin() {
				found = true
				best.Round = round
				best.Cost = cost
			}
		}
	}

	if !found {
		best.Cost = u.evaluator.Evaluate(best.Round, history)
	}

	return best, nil
}
