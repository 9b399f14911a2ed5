package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Pricing errors
	ErrInvalidRange     = errors.New("invalid date range")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrNothingSelected  = errors.New("nothing selected")

	// Submission errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrDuplicateSubmission    = errors.New("duplicate submission")
	ErrSubmissionInProgress   = errors.New("submission in progress")
	ErrSubmissionNotFound     = errors.New("submission not found")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Upstream errors
	ErrUpstreamRejected    = errors.New("upstream rejected booking")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
