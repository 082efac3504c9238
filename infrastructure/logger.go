package infrastructure

import (
	"github.com/HMasataka/rotation/config"
	"github.com/HMasataka/rotation/domain/entity"
	"go.uber.org/zap"
)

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, entity.ErrLoggerCreationFailed.WithCause(err)
	}

	return logger.Named("rotation"), nil
}
