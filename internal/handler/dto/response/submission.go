package response

import (
	"encoding/json"
	"time"

	"radstation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type SubmissionResponse struct {
	IdempotencyKey    string          `json:"idempotency_key"`
	Status            string          `json:"status"`
	Payload           json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
	TotalPrice        *json.Number    `json:"total_price,omitempty" swaggertype:"number"`
	UpstreamBookingID *string         `json:"upstream_booking_id,omitempty"`
	RejectionMessage  *string         `json:"rejection_message,omitempty"`
	ExpiresAt         time.Time       `json:"expires_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

var submissionCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: &decimal.Decimal{},
			DstType: (*json.Number)(nil),
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*json.Number)(nil), nil
				}
				n := money(*d)
				return &n, nil
			},
		},
	},
}

func FromSubmissionView(v *queries.SubmissionView) (*SubmissionResponse, error) {
	var res SubmissionResponse
	if err := copier.CopyWithOption(&res, v, submissionCopyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromSubmissionViews(views []*queries.SubmissionView) ([]*SubmissionResponse, error) {
	res := make([]*SubmissionResponse, len(views))
	for i, v := range views {
		r, err := FromSubmissionView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
