//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"radstation/internal/infra"
	"radstation/internal/infra/db"
	"radstation/internal/infra/repository"
	"radstation/internal/testutil"
	"radstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SubmissionRepositorySuite struct {
	suite.Suite
	repo *repository.SubmissionRepository
	now  time.Time
}

func TestSubmissionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SubmissionRepositorySuite))
}

func (s *SubmissionRepositorySuite) SetupSuite() {
	pool, _ := testutil.StartPostgres(s.T())
	s.repo = repository.NewSubmissionRepository(db.New(), pool)
	s.now = time.Now().UTC().Truncate(time.Microsecond)
}

func (s *SubmissionRepositorySuite) claim(key uuid.UUID, hash string, now time.Time) bool {
	claimed, err := s.repo.TryClaim(context.Background(), shared.ClaimParams{
		IdempotencyKey: key,
		RequestHash:    hash,
		ExpiresAt:      now.Add(time.Hour),
		Now:            now,
	})
	s.Require().NoError(err)
	return claimed
}

func (s *SubmissionRepositorySuite) TestClaimLifecycle() {
	ctx := context.Background()
	key := uuid.New()

	s.True(s.claim(key, "h1", s.now), "first claim takes the key")
	s.False(s.claim(key, "h1", s.now), "processing key is held")

	s.Require().NoError(s.repo.MarkFailed(ctx, key))
	s.True(s.claim(key, "h2", s.now), "failed key can be reclaimed")

	rec, err := s.repo.Get(ctx, key)
	s.Require().NoError(err)
	s.Equal(shared.SubmissionProcessing, rec.Status)
	s.Equal("h2", rec.RequestHash)

	s.Require().NoError(s.repo.MarkCompleted(ctx, shared.CompletionParams{
		IdempotencyKey:    key,
		Payload:           []byte(`{"gesamtpreis": 132.00}`),
		TotalPrice:        decimal.RequireFromString("132.00"),
		UpstreamBookingID: "4711",
	}))
	s.False(s.claim(key, "h2", s.now), "completed key is held until expiry")

	rec, err = s.repo.Get(ctx, key)
	s.Require().NoError(err)
	s.Equal(shared.SubmissionCompleted, rec.Status)
	s.Require().NotNil(rec.TotalPrice)
	s.Equal("132.00", rec.TotalPrice.StringFixed(2))
	s.Equal("4711", *rec.UpstreamBookingID)
	s.JSONEq(`{"gesamtpreis": 132.00}`, string(rec.Payload))

	err = s.repo.MarkCompleted(ctx, shared.CompletionParams{IdempotencyKey: key, TotalPrice: decimal.Zero})
	s.True(infra.IsKind(err, infra.KindNotFound), "settled rows are not overwritten")
}

func (s *SubmissionRepositorySuite) TestExpiredKeyIsReclaimed() {
	ctx := context.Background()
	key := uuid.New()
	past := s.now.Add(-3 * time.Hour)

	s.True(s.claim(key, "old", past))
	s.Require().NoError(s.repo.MarkRejected(ctx, shared.RejectionParams{
		IdempotencyKey:   key,
		TotalPrice:       decimal.NewFromInt(10),
		RejectionMessage: "ausgebucht",
	}))

	s.True(s.claim(key, "new", s.now), "expired rejection frees the key")
	rec, err := s.repo.Get(ctx, key)
	s.Require().NoError(err)
	s.Equal("new", rec.RequestHash)
	s.Nil(rec.RejectionMessage)
}

func (s *SubmissionRepositorySuite) TestExpiredProcessingKeyIsHeld() {
	ctx := context.Background()
	key := uuid.New()
	past := s.now.Add(-3 * time.Hour)

	s.True(s.claim(key, "sent", past))
	s.False(s.claim(key, "sent", s.now), "unsettled attempt may already exist upstream")

	rec, err := s.repo.Get(ctx, key)
	s.Require().NoError(err)
	s.Equal(shared.SubmissionProcessing, rec.Status)

	_, err = s.repo.DeleteExpired(ctx, s.now)
	s.Require().NoError(err)
	_, err = s.repo.Get(ctx, key)
	s.NoError(err, "purge keeps unsettled rows")
}

func (s *SubmissionRepositorySuite) TestDeleteExpiredAndListRecent() {
	ctx := context.Background()
	expired := uuid.New()
	live := uuid.New()

	s.True(s.claim(expired, "e", s.now.Add(-2*time.Hour)))
	s.Require().NoError(s.repo.MarkFailed(ctx, expired))
	s.True(s.claim(live, "l", s.now))

	count, err := s.repo.DeleteExpired(ctx, s.now)
	s.Require().NoError(err)
	s.GreaterOrEqual(count, int64(1))

	_, err = s.repo.Get(ctx, expired)
	s.True(infra.IsKind(err, infra.KindNotFound))

	records, err := s.repo.ListRecent(ctx, 100)
	s.Require().NoError(err)
	require.NotEmpty(s.T(), records)
	for i := 1; i < len(records); i++ {
		s.False(records[i].CreatedAt.After(records[i-1].CreatedAt), "newest first")
	}
}
