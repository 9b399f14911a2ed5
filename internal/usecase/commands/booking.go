package commands

//go:generate mockgen -source=booking.go -destination=../../mock/commands/mock_booking.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/pkg/clock"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"
	"radstation/internal/usecase/queries"
	"radstation/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitBookingParams struct {
	VonDatum   string
	BisDatum   string
	Positionen map[string]int
}

type SubmitBookingResult struct {
	Submission *queries.SubmissionView
	IsReplayed bool
}

// CapacityError lists every type whose requested count exceeds the fresh snapshot.
type CapacityError struct {
	Issues []*rental.CapacityExceededError
}

func (e *CapacityError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Error()
	}
	return "capacity exceeded: " + strings.Join(parts, "; ")
}

func (e *CapacityError) Is(target error) bool {
	return target == errs.ErrCapacityExceeded
}

// RejectedError carries the backend's refusal message back to the caller.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "upstream rejected booking: " + e.Message
}

func (e *RejectedError) Is(target error) bool {
	return target == errs.ErrUpstreamRejected
}

type BookingCommands interface {
	Submit(ctx context.Context, params SubmitBookingParams, idempotencyKey uuid.UUID) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	repo      shared.SubmissionRepository
	snapshots queries.SnapshotProvider
	sink      shared.BookingSink
	clock     clock.Clock
	ttl       time.Duration
	maxDays   int
}

func NewBookingCommands(
	repo shared.SubmissionRepository,
	snapshots queries.SnapshotProvider,
	sink shared.BookingSink,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	ttl := cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &bookingCommandsImpl{
		repo:      repo,
		snapshots: snapshots,
		sink:      sink,
		clock:     clk,
		ttl:       ttl,
		maxDays:   queries.MaxRangeDays(cfg),
	}
}

func (b *bookingCommandsImpl) Submit(
	ctx context.Context,
	params SubmitBookingParams,
	idempotencyKey uuid.UUID,
) (*SubmitBookingResult, error) {
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	r, err := queries.ParseRange(params.VonDatum, params.BisDatum, b.maxDays)
	if err != nil {
		return nil, err
	}
	requests := rental.RequestsFromCounts(params.Positionen)
	requestHash := calculateRequestHash(r, requests)

	replayed, err := b.handleIdempotency(ctx, idempotencyKey, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	view, err := b.submitNew(ctx, idempotencyKey, r, requests)
	if err != nil {
		return nil, err
	}
	return &SubmitBookingResult{Submission: view, IsReplayed: false}, nil
}

// handleIdempotency returns a result only when a finished attempt is replayed.
func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	requestHash string,
) (*SubmitBookingResult, error) {
	now := b.clock.Now()
	claimed, err := b.repo.TryClaim(ctx, shared.ClaimParams{
		IdempotencyKey: idempotencyKey,
		RequestHash:    requestHash,
		ExpiresAt:      now.Add(b.ttl),
		Now:            now,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := b.repo.Get(ctx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.ErrDuplicateSubmission
	}

	switch existing.Status {
	case shared.SubmissionCompleted:
		return &SubmitBookingResult{Submission: queries.NewSubmissionView(existing), IsReplayed: true}, nil
	case shared.SubmissionRejected:
		msg := ""
		if existing.RejectionMessage != nil {
			msg = *existing.RejectionMessage
		}
		return nil, &RejectedError{Message: msg}
	case shared.SubmissionProcessing, shared.SubmissionFailed:
		return nil, errs.ErrSubmissionInProgress
	default:
		return nil, errs.Mark(errs.New("invalid submission status: "+existing.Status.String()), errs.ErrIdempotencyCheckFailed)
	}
}

func (b *bookingCommandsImpl) submitNew(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	r rental.DateRange,
	requests []rental.RentalLineRequest,
) (*queries.SubmissionView, error) {
	snapshot, err := b.snapshots.Refresh(ctx, r)
	if err != nil {
		b.release(ctx, idempotencyKey)
		return nil, err
	}

	quoteView := queries.BuildQuote(r, requests, snapshot)
	if len(quoteView.CapacityIssues) > 0 {
		b.release(ctx, idempotencyKey)
		return nil, &CapacityError{Issues: quoteView.CapacityIssues}
	}

	submission, err := rental.NewBookingSubmission(r, quoteView.Quote)
	if err != nil {
		b.release(ctx, idempotencyKey)
		return nil, errs.Mark(err, errs.ErrNothingSelected)
	}

	payload, err := json.Marshal(submission)
	if err != nil {
		b.release(ctx, idempotencyKey)
		return nil, errs.Wrap(err, "failed to encode booking submission")
	}

	bookingID, err := b.sink.SubmitBooking(ctx, submission)
	if err != nil {
		return nil, b.handleSubmitFailure(ctx, idempotencyKey, payload, submission, err)
	}

	// The booking exists upstream from here on.
	writeCtx := context.WithoutCancel(ctx)
	if err := b.repo.MarkCompleted(writeCtx, shared.CompletionParams{
		IdempotencyKey:    idempotencyKey,
		Payload:           payload,
		TotalPrice:        submission.Gesamtpreis,
		UpstreamBookingID: bookingID,
	}); err != nil {
		slog.Error("booking accepted upstream but journal update failed",
			"idempotency_key", idempotencyKey.String(),
			"upstream_booking_id", bookingID,
			"error", err)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	record, err := b.repo.Get(writeCtx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("booking submitted",
		"idempotency_key", idempotencyKey.String(),
		"upstream_booking_id", bookingID,
		"range", r.String(),
		"gesamtpreis", submission.Gesamtpreis.StringFixed(2))
	return queries.NewSubmissionView(record), nil
}

func (b *bookingCommandsImpl) handleSubmitFailure(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	payload []byte,
	submission rental.BookingSubmission,
	cause error,
) error {
	var rejection shared.UpstreamRejection
	if !errors.As(cause, &rejection) {
		slog.Error("booking submission failed", "idempotency_key", idempotencyKey.String(), "error", cause)
		b.release(ctx, idempotencyKey)
		return errs.Mark(cause, errs.ErrUpstreamUnavailable)
	}

	msg := rejection.UpstreamMessage()
	if err := b.repo.MarkRejected(context.WithoutCancel(ctx), shared.RejectionParams{
		IdempotencyKey:   idempotencyKey,
		Payload:          payload,
		TotalPrice:       submission.Gesamtpreis,
		RejectionMessage: msg,
	}); err != nil {
		slog.Error("failed to journal upstream rejection", "idempotency_key", idempotencyKey.String(), "error", err)
	}
	slog.Warn("booking rejected upstream", "idempotency_key", idempotencyKey.String(), "message", msg)
	return &RejectedError{Message: msg}
}

// release marks the attempt failed so the same key can be claimed again.
func (b *bookingCommandsImpl) release(ctx context.Context, idempotencyKey uuid.UUID) {
	if err := b.repo.MarkFailed(context.WithoutCancel(ctx), idempotencyKey); err != nil {
		slog.Warn("failed to release submission claim", "idempotency_key", idempotencyKey.String(), "error", err)
	}
}

func calculateRequestHash(r rental.DateRange, requests []rental.RentalLineRequest) string {
	lines := make([]string, 0, len(requests))
	for _, req := range requests {
		if req.Count > 0 {
			lines = append(lines, fmt.Sprintf("%s=%d", req.Type, req.Count))
		}
	}
	data, _ := json.Marshal(struct {
		Von   string   `json:"von"`
		Bis   string   `json:"bis"`
		Lines []string `json:"lines"`
	}{Von: r.Von(), Bis: r.Bis(), Lines: lines})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
