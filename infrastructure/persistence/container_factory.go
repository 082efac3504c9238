package persistence

import (
	"github.com/HMasataka/rotation/config"
	"github.com/HMasataka/rotation/domain/repository"
)

func NewRepository(cfg *config.Config) *repository.RepositoryContainer {
	return &repository.RepositoryContainer{
		HistoryRepository: NewHistoryRepository(cfg.Args.Players),
	}
}
