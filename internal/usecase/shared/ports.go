package shared

//go:generate mockgen -source=ports.go -destination=../../mock/shared/mock_ports.go -package=sharedmock

import (
	"context"
	"time"

	"radstation/internal/domain/rental"

	"github.com/google/uuid"
)

// AvailabilitySource is the read side of the Warenwirtschaft backend.
type AvailabilitySource interface {
	FetchSnapshot(ctx context.Context, r rental.DateRange) (map[string]rental.SnapshotRecord, error)
	FetchBookings(ctx context.Context, r rental.DateRange) ([]rental.Booking, error)
}

// BookingSink forwards an accepted submission to the Warenwirtschaft backend and
// returns the booking id assigned there.
type BookingSink interface {
	SubmitBooking(ctx context.Context, sub rental.BookingSubmission) (string, error)
}

type SnapshotCache interface {
	Get(ctx context.Context, r rental.DateRange) (map[string]rental.SnapshotRecord, error)
	Set(ctx context.Context, r rental.DateRange, records map[string]rental.SnapshotRecord) error
}

type SubmissionRepository interface {
	// TryClaim takes the key for a new attempt. It reports false when another attempt
	// holds the key and it has neither failed nor expired.
	TryClaim(ctx context.Context, params ClaimParams) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*SubmissionRecord, error)
	MarkCompleted(ctx context.Context, params CompletionParams) error
	MarkRejected(ctx context.Context, params RejectionParams) error
	MarkFailed(ctx context.Context, key uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*SubmissionRecord, error)
}
