package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubmissionStatus string

const (
	SubmissionProcessing SubmissionStatus = "processing"
	SubmissionCompleted  SubmissionStatus = "completed"
	SubmissionRejected   SubmissionStatus = "rejected"
	SubmissionFailed     SubmissionStatus = "failed"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionProcessing, SubmissionCompleted, SubmissionRejected, SubmissionFailed:
		return true
	default:
		return false
	}
}

// SubmissionRecord is a journal entry of one booking submission attempt.
type SubmissionRecord struct {
	IdempotencyKey    uuid.UUID
	RequestHash       string
	Status            SubmissionStatus
	Payload           []byte
	TotalPrice        *decimal.Decimal
	UpstreamBookingID *string
	RejectionMessage  *string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ClaimParams struct {
	IdempotencyKey uuid.UUID
	RequestHash    string
	ExpiresAt      time.Time
	Now            time.Time
}

type CompletionParams struct {
	IdempotencyKey    uuid.UUID
	Payload           []byte
	TotalPrice        decimal.Decimal
	UpstreamBookingID string
}

type RejectionParams struct {
	IdempotencyKey   uuid.UUID
	Payload          []byte
	TotalPrice       decimal.Decimal
	RejectionMessage string
}

// UpstreamRejection is implemented by errors that carry the backend's refusal message.
type UpstreamRejection interface {
	error
	UpstreamMessage() string
}
