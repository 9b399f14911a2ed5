//go:build unit

package repository_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"radstation/internal/infra"
	"radstation/internal/infra/db"
	"radstation/internal/infra/repository"
	repositorymock "radstation/internal/mock/repository"
	"radstation/internal/pkg/pgconv"
	"radstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}

func newRepo(t *testing.T) (*repository.SubmissionRepository, *repositorymock.MockSubmissionQueries, db.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSubmissionQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewSubmissionRepository(mockQueries, mockDB), mockQueries, mockDB
}

// =============================================================================
// TryClaim
// =============================================================================

func TestSubmissionRepository_TryClaim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	params := shared.ClaimParams{IdempotencyKey: uuid.New(), RequestHash: "h", ExpiresAt: now.Add(time.Hour), Now: now}

	testCases := []struct {
		name        string
		affected    int64
		mockErr     error
		wantClaimed bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: new key claimed", affected: 1, wantClaimed: true},
		{name: "success: key held by another attempt", affected: 0, wantClaimed: false},
		{name: "error: unique violation", mockErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error", mockErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newRepo(t)
			mockQueries.EXPECT().ClaimSubmission(ctx, mockDB, db.ClaimSubmissionParams{
				IdempotencyKey: params.IdempotencyKey,
				RequestHash:    "h",
				ExpiresAt:      pgconv.TimeToPgtype(params.ExpiresAt),
				Now:            pgconv.TimeToPgtype(now),
			}).Return(tc.affected, tc.mockErr)

			claimed, err := repo.TryClaim(ctx, params)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantClaimed, claimed)
		})
	}
}

// =============================================================================
// Get
// =============================================================================

func TestSubmissionRepository_Get(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: maps every column", func(t *testing.T) {
		repo, mockQueries, mockDB := newRepo(t)
		mockQueries.EXPECT().GetSubmission(ctx, mockDB, key).Return(db.BookingSubmissions{
			IdempotencyKey:    key,
			RequestHash:       "h",
			Status:            "completed",
			Payload:           []byte(`{}`),
			Gesamtpreis:       pgtype.Numeric{Int: big.NewInt(13200), Exp: -2, Valid: true},
			UpstreamBookingID: pgconv.StringToPgtype("4711"),
			ExpiresAt:         pgconv.TimeToPgtype(created.Add(24 * time.Hour)),
			CreatedAt:         pgconv.TimeToPgtype(created),
			UpdatedAt:         pgconv.TimeToPgtype(created),
		}, nil)

		rec, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, shared.SubmissionCompleted, rec.Status)
		require.NotNil(t, rec.TotalPrice)
		assert.True(t, decimal.NewFromInt(132).Equal(*rec.TotalPrice))
		assert.Equal(t, "4711", *rec.UpstreamBookingID)
		assert.Nil(t, rec.RejectionMessage)
		assert.Equal(t, created, rec.CreatedAt)
	})

	t.Run("error: not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newRepo(t)
		mockQueries.EXPECT().GetSubmission(ctx, mockDB, key).Return(db.BookingSubmissions{}, pgx.ErrNoRows)

		_, err := repo.Get(ctx, key)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown status", func(t *testing.T) {
		repo, mockQueries, mockDB := newRepo(t)
		mockQueries.EXPECT().GetSubmission(ctx, mockDB, key).Return(db.BookingSubmissions{IdempotencyKey: key, Status: "lost"}, nil)

		_, err := repo.Get(ctx, key)
		assert.True(t, infra.IsKind(err, infra.KindInvalidPayload))
	})
}

// =============================================================================
// Mark*
// =============================================================================

func TestSubmissionRepository_MarkCompleted(t *testing.T) {
	ctx := context.Background()
	params := shared.CompletionParams{
		IdempotencyKey:    uuid.New(),
		Payload:           []byte(`{"gesamtpreis":132.00}`),
		TotalPrice:        decimal.RequireFromString("132.00"),
		UpstreamBookingID: "4711",
	}

	testCases := []struct {
		name       string
		affected   int64
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: no processing row", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error", mockErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newRepo(t)
			mockQueries.EXPECT().MarkSubmissionCompleted(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ db.DBTX, arg db.MarkSubmissionCompletedParams) (int64, error) {
					assert.Equal(t, params.IdempotencyKey, arg.IdempotencyKey)
					assert.Equal(t, "4711", arg.UpstreamBookingID.String)
					assert.True(t, arg.Gesamtpreis.Valid)
					return tc.affected, tc.mockErr
				})

			err := repo.MarkCompleted(ctx, params)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSubmissionRepository_MarkRejected(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newRepo(t)
	key := uuid.New()

	mockQueries.EXPECT().MarkSubmissionRejected(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, arg db.MarkSubmissionRejectedParams) (int64, error) {
			assert.Equal(t, "ausgebucht", arg.RejectionMessage.String)
			return 1, nil
		})

	err := repo.MarkRejected(ctx, shared.RejectionParams{IdempotencyKey: key, RejectionMessage: "ausgebucht", TotalPrice: decimal.NewFromInt(10)})
	assert.NoError(t, err)
}

func TestSubmissionRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("already settled rows are left alone", func(t *testing.T) {
		repo, mockQueries, mockDB := newRepo(t)
		mockQueries.EXPECT().MarkSubmissionFailed(ctx, mockDB, key).Return(int64(0), nil)
		assert.NoError(t, repo.MarkFailed(ctx, key))
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockQueries, mockDB := newRepo(t)
		mockQueries.EXPECT().MarkSubmissionFailed(ctx, mockDB, key).Return(int64(0), errors.New("boom"))
		assert.True(t, infra.IsKind(repo.MarkFailed(ctx, key), infra.KindDBFailure))
	})
}

// =============================================================================
// DeleteExpired / ListRecent
// =============================================================================

func TestSubmissionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 2, 3, 30, 0, 0, time.UTC)
	repo, mockQueries, mockDB := newRepo(t)
	mockQueries.EXPECT().DeleteExpiredSubmissions(ctx, mockDB, pgconv.TimeToPgtype(now)).Return(int64(4), nil)

	count, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestSubmissionRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo, mockQueries, mockDB := newRepo(t)
	mockQueries.EXPECT().ListRecentSubmissions(ctx, mockDB, int32(2)).Return([]db.BookingSubmissions{
		{IdempotencyKey: uuid.New(), Status: "processing"},
		{IdempotencyKey: uuid.New(), Status: "rejected", RejectionMessage: pgconv.StringToPgtype("nein")},
	}, nil)

	records, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Nil(t, records[0].TotalPrice)
	assert.Equal(t, "nein", *records[1].RejectionMessage)
}
