package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingSubmissions struct {
	IdempotencyKey    uuid.UUID          `json:"idempotency_key"`
	RequestHash       string             `json:"request_hash"`
	Status            string             `json:"status"`
	Payload           []byte             `json:"payload"`
	Gesamtpreis       pgtype.Numeric     `json:"gesamtpreis"`
	UpstreamBookingID pgtype.Text        `json:"upstream_booking_id"`
	RejectionMessage  pgtype.Text        `json:"rejection_message"`
	ExpiresAt         pgtype.Timestamptz `json:"expires_at"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}
