//go:build wireinject
// +build wireinject

package di

import (
	"github.com/HMasataka/rotation/config"
	"github.com/HMasataka/rotation/domain/service"
	"github.com/HMasataka/rotation/infrastructure/driver"
	"github.com/HMasataka/rotation/infrastructure/persistence"
	"github.com/HMasataka/rotation/usecase"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func InitializeUseCase(
	cfg *config.Config,
	logger *zap.Logger,
) *usecase.UseCaseContainer {
	wire.Build(
		driver.NewRandomDriver,
		persistence.NewRepository,
		service.NewWaitSampler,
		service.NewPartitionService,
		service.NewTeamService,
		service.NewDefaultEvaluator,
		usecase.NewContainer,
	)

	return nil
}
