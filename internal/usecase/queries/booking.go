package queries

//go:generate mockgen -source=booking.go -destination=../../mock/queries/mock_booking.go -package=queriesmock

import (
	"context"

	"radstation/internal/pkg/errs"
	"radstation/internal/usecase/shared"
)

const defaultRecentLimit = 50

type BookingQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*SubmissionView, error)
}

type bookingQueriesImpl struct {
	repo shared.SubmissionRepository
}

func NewBookingQueries(repo shared.SubmissionRepository) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*SubmissionView, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	records, err := q.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*SubmissionView, len(records))
	for i, rec := range records {
		views[i] = NewSubmissionView(rec)
	}
	return views, nil
}
