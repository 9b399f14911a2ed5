package queries

//go:generate mockgen -source=rental.go -destination=../../mock/queries/mock_rental.go -package=queriesmock

import (
	"context"
	"log/slog"

	"radstation/internal/domain/rental"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"
	"radstation/internal/usecase/shared"
)

type RentalQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*QuoteView, error)
	Availability(ctx context.Context, von, bis string) (*AvailabilityView, error)
	Timeline(ctx context.Context, von, bis string) (*TimelineView, error)
}

// DefaultMaxRangeDays applies when no positive limit is configured.
const DefaultMaxRangeDays = 366

type rentalQueriesImpl struct {
	snapshots SnapshotProvider
	source    shared.AvailabilitySource
	maxDays   int
}

func NewRentalQueries(snapshots SnapshotProvider, source shared.AvailabilitySource, cfg config.BookingConfig) RentalQueries {
	return &rentalQueriesImpl{snapshots: snapshots, source: source, maxDays: MaxRangeDays(cfg)}
}

func MaxRangeDays(cfg config.BookingConfig) int {
	if cfg.MaxRangeDays <= 0 {
		return DefaultMaxRangeDays
	}
	return cfg.MaxRangeDays
}

func (q *rentalQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	r, err := ParseRange(params.VonDatum, params.BisDatum, q.maxDays)
	if err != nil {
		return nil, err
	}

	snapshot, err := q.snapshots.Snapshot(ctx, r)
	if err != nil {
		return nil, err
	}
	return BuildQuote(r, rental.RequestsFromCounts(params.Positionen), snapshot), nil
}

func (q *rentalQueriesImpl) Availability(ctx context.Context, von, bis string) (*AvailabilityView, error) {
	r, err := ParseRange(von, bis, q.maxDays)
	if err != nil {
		return nil, err
	}

	snapshot, err := q.snapshots.Snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	rates := snapshot.Rates()
	types := make([]TypeAvailabilityView, len(rates))
	for i, rate := range rates {
		types[i] = TypeAvailabilityView{
			Rate:          rate,
			MaxSelectable: rental.MaxSelectable(rate.Name, snapshot),
		}
	}
	return &AvailabilityView{Range: r, Types: types}, nil
}

func (q *rentalQueriesImpl) Timeline(ctx context.Context, von, bis string) (*TimelineView, error) {
	r, err := ParseRange(von, bis, q.maxDays)
	if err != nil {
		return nil, err
	}

	fleet, err := q.snapshots.Snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	bookings, err := q.source.FetchBookings(ctx, r)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	days := rental.Timeline(r, fleet, rental.Overlapping(r, bookings))
	return &TimelineView{Range: r, Days: days, MinFree: rental.MinFree(days)}, nil
}

// ParseRange parses both dates and marks every failure as ErrInvalidRange,
// including ranges longer than maxDays.
func ParseRange(von, bis string, maxDays int) (rental.DateRange, error) {
	r, err := rental.ParseDateRange(von, bis)
	if err != nil {
		return rental.DateRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	if maxDays > 0 && r.Days() > maxDays {
		err = errs.Wrapf(rental.ErrRangeTooLong, "%s spans %d days, limit is %d", r, r.Days(), maxDays)
		return rental.DateRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return r, nil
}

// BuildQuote prices requests against snapshot and attaches the capacity issues.
func BuildQuote(r rental.DateRange, requests []rental.RentalLineRequest, snapshot rental.Snapshot) *QuoteView {
	quote := rental.ComputeQuote(r.Days(), requests, snapshot)
	if len(quote.UnknownTypes) > 0 {
		slog.Warn("quote skipped unknown bicycle types", "types", quote.UnknownTypes, "range", r.String())
	}

	issues := rental.CheckAll(requests, snapshot)
	return &QuoteView{
		Range:          r,
		Quote:          quote,
		CapacityIssues: issues,
		Submittable:    !quote.IsEmpty() && len(issues) == 0,
	}
}
