package usecase

import (
	"context"

	"github.com/HMasataka/rotation/config"
	"github.com/HMasataka/rotation/domain/driver"
	"github.com/HMasataka/rotation/domain/entity"
	"github.com/HMasataka/rotation/domain/repository"
	"go.uber.org/zap"
)

type ScheduleUsecase interface {
	Exec(ctx context.Context, rounds int) (*entity.Schedule, error)
}

type scheduleUsecase struct {
	cfg    *config.Config
	logger *zap.Logger

	historyRepository repository.HistoryRepository
	roundUsecase      RoundUsecase
	random            driver.RandomDriver
}

func NewScheduleUsecase(
	cfg *config.Config,
	logger *zap.Logger,
	repositoryContainer *repository.RepositoryContainer,
	roundUsecase RoundUsecase,
	random driver.RandomDriver,
) ScheduleUsecase {
	return &scheduleUsecase{
		cfg:               cfg,
		logger:            logger,
		historyRepository: repositoryContainer.HistoryRepository,
		roundUsecase:      roundUsecase,
		random:            random,
	}
}

// Exec records the default round as round 0 and optimizes every following
// round against the history so far.
func (u *scheduleUsecase) Exec(ctx context.Context, rounds int) (*entity.Schedule, error) {
	schedule := entity.NewSchedule(u.cfg.Args.Players, u.cfg.Args.Courts)

	logger := u.logger.With(zap.String("schedule_id", schedule.ID))
	logger.Info("finding optimal games",
		zap.Int("players", schedule.TotalPlayers),
		zap.Int("courts", schedule.CourtCount),
		zap.Int("used_courts", schedule.UsedCourts),
		zap.Int("rounds", rounds),
		zap.Uint64("seed", u.random.Seed()),
	)

	opening := entity.DefaultRound(schedule.UsedCourts)
	u.historyRepository.Record(opening)
	schedule.Rounds = append(schedule.Rounds, opening)

	for i := 1; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, entity.ErrScheduleCanceled.WithCause(err)
		}

		selection, err := u.roundUsecase.Select(ctx, u.historyRepository.Snapshot(), schedule.UsedCourts)
		if err != nil {
			return nil, err
		}
		u.historyRepository.Record(selection.Round)
		schedule.Rounds = append(schedule.Rounds, selection.Round)

		logger.Info("round selected",
			zap.Int("round", i),
			zap.Int("of", rounds-1),
			zap.Float64("cost", selection.Cost),
			zap.Int("candidates", selection.Candidates),
		)
	}

	return schedule, nil
}
