package jobs

import (
	"log/slog"
	"time"

	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron
	jobs *Runner
}

// NewScheduler registers every job with the expressions from cfg. Expressions carry a
// seconds field.
func NewScheduler(runner *Runner, cfg config.SchedulerConfig) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid scheduler location %q", cfg.Location)
	}

	s := &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		jobs: runner,
	}
	if err := s.registerJobs(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) error {
	entries := []struct {
		name string
		spec string
		fn   func()
	}{
		{name: "RefreshTodaySnapshot", spec: cfg.RefreshSnapshot, fn: s.jobs.RefreshTodaySnapshot},
		{name: "PurgeExpiredSubmissions", spec: cfg.PurgeSubmissions, fn: s.jobs.PurgeExpiredSubmissions},
	}
	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.spec, e.fn); err != nil {
			return errs.Wrapf(err, "failed to register %s job (%q)", e.name, e.spec)
		}
	}
	slog.Info("cron jobs registered", "count", len(entries))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("cron scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
