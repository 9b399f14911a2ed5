package jobs

import (
	"context"
	"log/slog"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/pkg/clock"
	"radstation/internal/usecase/queries"
	"radstation/internal/usecase/shared"
)

const jobTimeout = 30 * time.Second

// Runner holds the background jobs. Each job logs its own failures.
type Runner struct {
	snapshots queries.SnapshotProvider
	repo      shared.SubmissionRepository
	clock     clock.Clock
}

func NewRunner(snapshots queries.SnapshotProvider, repo shared.SubmissionRepository, clk clock.Clock) *Runner {
	return &Runner{snapshots: snapshots, repo: repo, clock: clk}
}

// RefreshTodaySnapshot warms the cache for today's same-day rental range.
func (r *Runner) RefreshTodaySnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	today := rental.SingleDay(clock.Today(r.clock))
	snapshot, err := r.snapshots.Refresh(ctx, today)
	if err != nil {
		slog.Warn("snapshot refresh failed", "range", today.String(), "error", err)
		return
	}
	slog.Debug("snapshot refreshed", "range", today.String(), "types", snapshot.Len())
}

func (r *Runner) PurgeExpiredSubmissions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := r.repo.DeleteExpired(ctx, r.clock.Now())
	if err != nil {
		slog.Error("failed to purge expired submissions", "error", err)
		return
	}
	if count > 0 {
		slog.Info("purged expired submissions", "count", count)
	}
}
