package usecase

import (
	"github.com/HMasataka/rotation/config"
	"github.com/HMasataka/rotation/domain/driver"
	"github.com/HMasataka/rotation/domain/entity"
	"github.com/HMasataka/rotation/domain/repository"
	"github.com/HMasataka/rotation/domain/service"
	"go.uber.org/zap"
)

type UseCaseContainer struct {
	ScheduleUsecase ScheduleUsecase
}

// NewContainer builds a container for one run. The history and random source
// are per-run state, so containers are never shared between runs.
func NewContainer(
	cfg *config.Config,
	logger *zap.Logger,
	repositoryContainer *repository.RepositoryContainer,
	sampler service.WaitSampler,
	partitionService service.PartitionService,
	teamService service.TeamService,
	evaluator entity.Evaluator,
	random driver.RandomDriver,
) *UseCaseContainer {
	roundUsecase := NewRoundUsecase(sampler, partitionService, teamService, evaluator, random)

	return &UseCaseContainer{
		ScheduleUsecase: NewScheduleUsecase(cfg, logger, repositoryContainer, roundUsecase, random),
	}
}
