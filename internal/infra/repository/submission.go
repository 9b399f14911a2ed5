package repository

//go:generate mockgen -source=submission.go -destination=../../mock/repository/mock_submission.go -package=repositorymock

import (
	"context"
	"time"

	"radstation/internal/infra"
	"radstation/internal/infra/db"
	"radstation/internal/pkg/pgconv"
	"radstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SubmissionQueries interface {
	ClaimSubmission(ctx context.Context, dbtx db.DBTX, arg db.ClaimSubmissionParams) (int64, error)
	GetSubmission(ctx context.Context, dbtx db.DBTX, key uuid.UUID) (db.BookingSubmissions, error)
	MarkSubmissionCompleted(ctx context.Context, dbtx db.DBTX, arg db.MarkSubmissionCompletedParams) (int64, error)
	MarkSubmissionRejected(ctx context.Context, dbtx db.DBTX, arg db.MarkSubmissionRejectedParams) (int64, error)
	MarkSubmissionFailed(ctx context.Context, dbtx db.DBTX, key uuid.UUID) (int64, error)
	DeleteExpiredSubmissions(ctx context.Context, dbtx db.DBTX, now pgtype.Timestamptz) (int64, error)
	ListRecentSubmissions(ctx context.Context, dbtx db.DBTX, limit int32) ([]db.BookingSubmissions, error)
}

type SubmissionRepository struct {
	queries SubmissionQueries
	db      db.DBTX
}

func NewSubmissionRepository(queries SubmissionQueries, dbtx db.DBTX) *SubmissionRepository {
	return &SubmissionRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *SubmissionRepository) TryClaim(ctx context.Context, params shared.ClaimParams) (bool, error) {
	affected, err := r.queries.ClaimSubmission(ctx, r.db, db.ClaimSubmissionParams{
		IdempotencyKey: params.IdempotencyKey,
		RequestHash:    params.RequestHash,
		ExpiresAt:      pgconv.TimeToPgtype(params.ExpiresAt),
		Now:            pgconv.TimeToPgtype(params.Now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim submission", err)
	}
	return affected == 1, nil
}

func (r *SubmissionRepository) Get(ctx context.Context, key uuid.UUID) (*shared.SubmissionRecord, error) {
	row, err := r.queries.GetSubmission(ctx, r.db, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get submission", err)
	}
	return toSubmissionRecord(row)
}

func (r *SubmissionRepository) MarkCompleted(ctx context.Context, params shared.CompletionParams) error {
	affected, err := r.queries.MarkSubmissionCompleted(ctx, r.db, db.MarkSubmissionCompletedParams{
		IdempotencyKey:    params.IdempotencyKey,
		Payload:           params.Payload,
		Gesamtpreis:       pgconv.NumericFromDecimal(params.TotalPrice),
		UpstreamBookingID: pgconv.StringToPgtype(params.UpstreamBookingID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark submission completed", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("no processing submission to complete", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubmissionRepository) MarkRejected(ctx context.Context, params shared.RejectionParams) error {
	affected, err := r.queries.MarkSubmissionRejected(ctx, r.db, db.MarkSubmissionRejectedParams{
		IdempotencyKey:   params.IdempotencyKey,
		Payload:          params.Payload,
		Gesamtpreis:      pgconv.NumericFromDecimal(params.TotalPrice),
		RejectionMessage: pgconv.StringToPgtype(params.RejectionMessage),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark submission rejected", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("no processing submission to reject", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubmissionRepository) MarkFailed(ctx context.Context, key uuid.UUID) error {
	if _, err := r.queries.MarkSubmissionFailed(ctx, r.db, key); err != nil {
		return infra.WrapRepoErr("failed to mark submission failed", err)
	}
	return nil
}

func (r *SubmissionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredSubmissions(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired submissions", err)
	}
	return count, nil
}

func (r *SubmissionRepository) ListRecent(ctx context.Context, limit int) ([]*shared.SubmissionRecord, error) {
	rows, err := r.queries.ListRecentSubmissions(ctx, r.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent submissions", err)
	}

	records := make([]*shared.SubmissionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toSubmissionRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toSubmissionRecord(row db.BookingSubmissions) (*shared.SubmissionRecord, error) {
	total, err := pgconv.DecimalPtrFromNumeric(row.Gesamtpreis)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid gesamtpreis in submission row", err, infra.KindInvalidPayload)
	}

	status := shared.SubmissionStatus(row.Status)
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("invalid status in submission row: "+row.Status, nil, infra.KindInvalidPayload)
	}

	return &shared.SubmissionRecord{
		IdempotencyKey:    row.IdempotencyKey,
		RequestHash:       row.RequestHash,
		Status:            status,
		Payload:           row.Payload,
		TotalPrice:        total,
		UpstreamBookingID: pgconv.StringPtrFromPgtype(row.UpstreamBookingID),
		RejectionMessage:  pgconv.StringPtrFromPgtype(row.RejectionMessage),
		ExpiresAt:         pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
