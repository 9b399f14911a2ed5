package queries

import (
	"encoding/json"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteParams struct {
	VonDatum   string
	BisDatum   string
	Positionen map[string]int
}

type QuoteView struct {
	Range          rental.DateRange
	Quote          rental.Quote
	CapacityIssues []*rental.CapacityExceededError
	Submittable    bool
}

type TypeAvailabilityView struct {
	Rate          rental.BicycleTypeRate
	MaxSelectable int
}

type AvailabilityView struct {
	Range rental.DateRange
	Types []TypeAvailabilityView
}

type TimelineView struct {
	Range   rental.DateRange
	Days    []rental.TimelineDay
	MinFree map[rental.TypeName]int
}

// SubmissionView is the read model of one journal entry.
type SubmissionView struct {
	IdempotencyKey    uuid.UUID
	Status            string
	Payload           json.RawMessage
	TotalPrice        *decimal.Decimal
	UpstreamBookingID *string
	RejectionMessage  *string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewSubmissionView(rec *shared.SubmissionRecord) *SubmissionView {
	if rec == nil {
		return nil
	}
	return &SubmissionView{
		IdempotencyKey:    rec.IdempotencyKey,
		Status:            rec.Status.String(),
		Payload:           json.RawMessage(rec.Payload),
		TotalPrice:        rec.TotalPrice,
		UpstreamBookingID: rec.UpstreamBookingID,
		RejectionMessage:  rec.RejectionMessage,
		ExpiresAt:         rec.ExpiresAt,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}
