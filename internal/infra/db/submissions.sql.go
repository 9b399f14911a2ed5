package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const submissionColumns = `idempotency_key, request_hash, status, payload, gesamtpreis,
    upstream_booking_id, rejection_message, expires_at, created_at, updated_at`

const claimSubmission = `
INSERT INTO booking_submissions (idempotency_key, request_hash, status, expires_at, created_at, updated_at)
VALUES ($1, $2, 'processing', $3, $4, $4)
ON CONFLICT (idempotency_key) DO UPDATE
SET request_hash        = EXCLUDED.request_hash,
    status              = 'processing',
    payload             = NULL,
    gesamtpreis         = NULL,
    upstream_booking_id = NULL,
    rejection_message   = NULL,
    expires_at          = EXCLUDED.expires_at,
    created_at          = EXCLUDED.created_at,
    updated_at          = EXCLUDED.updated_at
WHERE booking_submissions.status = 'failed'
   OR (booking_submissions.expires_at < EXCLUDED.created_at AND booking_submissions.status <> 'processing')
`

type ClaimSubmissionParams struct {
	IdempotencyKey uuid.UUID
	RequestHash    string
	ExpiresAt      pgtype.Timestamptz
	Now            pgtype.Timestamptz
}

func (q *Queries) ClaimSubmission(ctx context.Context, db DBTX, arg ClaimSubmissionParams) (int64, error) {
	tag, err := db.Exec(ctx, claimSubmission, arg.IdempotencyKey, arg.RequestHash, arg.ExpiresAt, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getSubmission = `SELECT ` + submissionColumns + `
FROM booking_submissions
WHERE idempotency_key = $1
`

func (q *Queries) GetSubmission(ctx context.Context, db DBTX, key uuid.UUID) (BookingSubmissions, error) {
	row := db.QueryRow(ctx, getSubmission, key)
	var i BookingSubmissions
	err := row.Scan(
		&i.IdempotencyKey,
		&i.RequestHash,
		&i.Status,
		&i.Payload,
		&i.Gesamtpreis,
		&i.UpstreamBookingID,
		&i.RejectionMessage,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const markSubmissionCompleted = `
UPDATE booking_submissions
SET status = 'completed', payload = $2, gesamtpreis = $3, upstream_booking_id = $4, updated_at = now()
WHERE idempotency_key = $1 AND status = 'processing'
`

type MarkSubmissionCompletedParams struct {
	IdempotencyKey    uuid.UUID
	Payload           []byte
	Gesamtpreis       pgtype.Numeric
	UpstreamBookingID pgtype.Text
}

func (q *Queries) MarkSubmissionCompleted(ctx context.Context, db DBTX, arg MarkSubmissionCompletedParams) (int64, error) {
	tag, err := db.Exec(ctx, markSubmissionCompleted, arg.IdempotencyKey, arg.Payload, arg.Gesamtpreis, arg.UpstreamBookingID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markSubmissionRejected = `
UPDATE booking_submissions
SET status = 'rejected', payload = $2, gesamtpreis = $3, rejection_message = $4, updated_at = now()
WHERE idempotency_key = $1 AND status = 'processing'
`

type MarkSubmissionRejectedParams struct {
	IdempotencyKey   uuid.UUID
	Payload          []byte
	Gesamtpreis      pgtype.Numeric
	RejectionMessage pgtype.Text
}

func (q *Queries) MarkSubmissionRejected(ctx context.Context, db DBTX, arg MarkSubmissionRejectedParams) (int64, error) {
	tag, err := db.Exec(ctx, markSubmissionRejected, arg.IdempotencyKey, arg.Payload, arg.Gesamtpreis, arg.RejectionMessage)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markSubmissionFailed = `
UPDATE booking_submissions
SET status = 'failed', updated_at = now()
WHERE idempotency_key = $1 AND status = 'processing'
`

func (q *Queries) MarkSubmissionFailed(ctx context.Context, db DBTX, key uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markSubmissionFailed, key)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredSubmissions = `
DELETE FROM booking_submissions
WHERE expires_at < $1 AND status <> 'processing'
`

func (q *Queries) DeleteExpiredSubmissions(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredSubmissions, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listRecentSubmissions = `SELECT ` + submissionColumns + `
FROM booking_submissions
ORDER BY created_at DESC
LIMIT $1
`

func (q *Queries) ListRecentSubmissions(ctx context.Context, db DBTX, limit int32) ([]BookingSubmissions, error) {
	rows, err := db.Query(ctx, listRecentSubmissions, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookingSubmissions
	for rows.Next() {
		var i BookingSubmissions
		if err := rows.Scan(
			&i.IdempotencyKey,
			&i.RequestHash,
			&i.Status,
			&i.Payload,
			&i.Gesamtpreis,
			&i.UpstreamBookingID,
			&i.RejectionMessage,
			&i.ExpiresAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
