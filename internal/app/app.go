package app

import (
	"context"
	"time"

	"github.com/go-arcade/aoc2021/internal/config"
	"github.com/go-arcade/aoc2021/internal/pkg/input"
	"github.com/go-arcade/aoc2021/internal/solver"
	"github.com/go-arcade/aoc2021/pkg/log"
	"github.com/go-arcade/aoc2021/pkg/metrics"
)

/**
 * @author: gagral.x@gmail.com
 * @file: app.go
 * @description: assembled application
 */

type App struct {
	Conf    *config.AppConfig
	Logger  log.ILogger
	Source  *input.Source
	Runner  *solver.Runner
	Metrics *metrics.Server
}

func NewApp(
	conf *config.AppConfig,
	logger log.ILogger,
	source *input.Source,
	runner *solver.Runner,
	metricsServer *metrics.Server,
) (*App, func(), error) {
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Stop(ctx); err != nil {
			logger.Warnw("failed to stop metrics server", "error", err)
		}
	}

	app := &App{
		Conf:    conf,
		Logger:  logger,
		Source:  source,
		Runner:  runner,
		Metrics: metricsServer,
	}
	return app, cleanup, nil
}

// Solve loads the input for day from path and runs its solver.
func (a *App) Solve(ctx context.Context, day int, path string) (*solver.Answer, error) {
	text, err := a.Source.Load(ctx, day, path)
	if err != nil {
		return nil, err
	}
	return a.Runner.Run(ctx, day, text)
}
