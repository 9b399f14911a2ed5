package bootstrap

import (
	"context"
	"log/slog"

	"radstation/internal/jobs"
	"radstation/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		jobs.NewRunner,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(runner *jobs.Runner, cfg config.Config) (*jobs.Scheduler, error) {
	return jobs.NewScheduler(runner, cfg.Scheduler)
}

func startScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler, cfg config.Config) {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("scheduler entries", "count", scheduler.Entries(), "location", cfg.Scheduler.Location)
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
