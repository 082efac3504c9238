package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HMasataka/rotation/config"
	"github.com/HMasataka/rotation/di"
	"github.com/HMasataka/rotation/handler"
	"github.com/HMasataka/rotation/infrastructure"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Println(err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := infrastructure.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// The first signal cancels the search and removes the output; a second
	// one gets the default handling and kills the process.
	context.AfterFunc(ctx, stop)

	err = run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()

	if err != nil {
		logger.Fatal("failed to generate games", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Create the output before the search so an unwritable path fails fast.
	output, err := handler.CreateOutput(cfg.OutputPath())
	if err != nil {
		return err
	}

	u := di.InitializeUseCase(cfg, logger)

	schedule, err := u.ScheduleUsecase.Exec(ctx, cfg.Rounds)
	if err != nil {
		_ = output.Discard()
		return err
	}

	if err := output.Write(schedule); err != nil {
		return err
	}

	logger.Info("games written", zap.String("schedule_id", schedule.ID), zap.String("output", output.Name()))
	return nil
}
