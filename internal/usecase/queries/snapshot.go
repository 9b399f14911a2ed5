package queries

//go:generate mockgen -source=snapshot.go -destination=../../mock/queries/mock_snapshot.go -package=queriesmock

import (
	"context"
	"log/slog"

	"radstation/internal/domain/rental"
	"radstation/internal/infra"
	"radstation/internal/pkg/errs"
	"radstation/internal/usecase/shared"
)

// SnapshotProvider hands out normalized availability snapshots. Snapshot may serve
// a cached copy; Refresh always asks the backend.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, r rental.DateRange) (rental.Snapshot, error)
	Refresh(ctx context.Context, r rental.DateRange) (rental.Snapshot, error)
}

type snapshotProviderImpl struct {
	source shared.AvailabilitySource
	cache  shared.SnapshotCache
}

func NewSnapshotProvider(source shared.AvailabilitySource, cache shared.SnapshotCache) SnapshotProvider {
	return &snapshotProviderImpl{source: source, cache: cache}
}

func (p *snapshotProviderImpl) Snapshot(ctx context.Context, r rental.DateRange) (rental.Snapshot, error) {
	records, err := p.cache.Get(ctx, r)
	if err == nil {
		snapshot, _ := rental.NormalizeSnapshot(records)
		return snapshot, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		slog.Warn("snapshot cache read failed, falling back to upstream", "range", r.String(), "error", err)
	}
	return p.Refresh(ctx, r)
}

func (p *snapshotProviderImpl) Refresh(ctx context.Context, r rental.DateRange) (rental.Snapshot, error) {
	raw, err := p.source.FetchSnapshot(ctx, r)
	if err != nil {
		return rental.Snapshot{}, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	snapshot, issues := rental.NormalizeSnapshot(raw)
	for _, issue := range issues {
		slog.Warn("snapshot record repaired", "type", issue.Type, "reason", issue.Reason, "range", r.String())
	}

	if err := p.cache.Set(ctx, r, snapshot.Records()); err != nil {
		slog.Warn("snapshot cache write failed", "range", r.String(), "error", err)
	}
	return snapshot, nil
}
