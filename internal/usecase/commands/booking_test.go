//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/infra"
	queriesmock "radstation/internal/mock/queries"
	sharedmock "radstation/internal/mock/shared"
	"radstation/internal/pkg/clock"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"
	"radstation/internal/usecase/commands"
	"radstation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type upstreamRejection struct{ msg string }

func (e *upstreamRejection) Error() string           { return "rejected: " + e.msg }
func (e *upstreamRejection) UpstreamMessage() string { return e.msg }

var now = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func fleet() rental.Snapshot {
	return rental.NewSnapshot(
		rental.BicycleTypeRate{
			Name: "E-Bike", Tier1: decimal.NewFromInt(25), Tier2: decimal.NewFromInt(22), Tier3: decimal.NewFromInt(20),
			TotalUnits: 15, AvailableUnits: 15, Rentable: true,
		},
		rental.BicycleTypeRate{
			Name: "Normal", Tier1: decimal.RequireFromString("15.50"), Tier2: decimal.RequireFromString("12.75"), Tier3: decimal.NewFromInt(10),
			TotalUnits: 20, AvailableUnits: 8, Rentable: true,
		},
	)
}

func validParams() commands.SubmitBookingParams {
	return commands.SubmitBookingParams{
		VonDatum:   "2024-06-01",
		BisDatum:   "2024-06-03",
		Positionen: map[string]int{"E-Bike": 2},
	}
}

type fixture struct {
	repo      *sharedmock.MockSubmissionRepository
	snapshots *queriesmock.MockSnapshotProvider
	sink      *sharedmock.MockBookingSink
	cmds      commands.BookingCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:      sharedmock.NewMockSubmissionRepository(ctrl),
		snapshots: queriesmock.NewMockSnapshotProvider(ctrl),
		sink:      sharedmock.NewMockBookingSink(ctrl),
	}
	f.cmds = commands.NewBookingCommands(f.repo, f.snapshots, f.sink, clock.NewMockClock(now), config.BookingConfig{IdempotencyTTL: time.Hour})
	return f
}

func completedRecord(key uuid.UUID, hash string) *shared.SubmissionRecord {
	total := decimal.NewFromInt(132)
	id := "4711"
	return &shared.SubmissionRecord{
		IdempotencyKey:    key,
		RequestHash:       hash,
		Status:            shared.SubmissionCompleted,
		Payload:           []byte(`{"gesamtpreis":132.00}`),
		TotalPrice:        &total,
		UpstreamBookingID: &id,
		ExpiresAt:         now.Add(time.Hour),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestBookingCommands_Submit_Success(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	f := newFixture(t)

	var claimedHash string
	gomock.InOrder(
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p shared.ClaimParams) (bool, error) {
			assert.Equal(t, key, p.IdempotencyKey)
			assert.Equal(t, now.Add(time.Hour), p.ExpiresAt)
			assert.Len(t, p.RequestHash, 64)
			claimedHash = p.RequestHash
			return true, nil
		}),
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil),
		f.sink.EXPECT().SubmitBooking(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, sub rental.BookingSubmission) (string, error) {
			assert.Equal(t, 2, sub.AnzahlRaeder)
			assert.Equal(t, 3, sub.AnzahlTage)
			assert.Equal(t, "132.00", sub.Gesamtpreis.StringFixed(2))
			assert.Equal(t, "22.00", sub.Tagespreis.StringFixed(2))
			return "4711", nil
		}),
		f.repo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p shared.CompletionParams) error {
			assert.Equal(t, "4711", p.UpstreamBookingID)
			assert.True(t, decimal.NewFromInt(132).Equal(p.TotalPrice))
			var payload map[string]any
			require.NoError(t, json.Unmarshal(p.Payload, &payload))
			assert.Equal(t, "2024-06-01", payload["von_datum"])
			return nil
		}),
		f.repo.EXPECT().Get(gomock.Any(), key).DoAndReturn(func(_ context.Context, k uuid.UUID) (*shared.SubmissionRecord, error) {
			return completedRecord(k, claimedHash), nil
		}),
	)

	result, err := f.cmds.Submit(ctx, validParams(), key)
	require.NoError(t, err)
	assert.False(t, result.IsReplayed)
	assert.Equal(t, "completed", result.Submission.Status)
	assert.Equal(t, "4711", *result.Submission.UpstreamBookingID)
}

func TestBookingCommands_Submit_Idempotency(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	// hashOf captures the hash of validParams by letting one claim through.
	hashOf := func(t *testing.T) string {
		f := newFixture(t)
		var hash string
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p shared.ClaimParams) (bool, error) {
			hash = p.RequestHash
			return false, assert.AnError
		})
		_, _ = f.cmds.Submit(ctx, validParams(), key)
		return hash
	}
	hash := hashOf(t)

	testCases := []struct {
		name        string
		existing    *shared.SubmissionRecord
		wantErr     error
		wantReplay  bool
		wantMessage string
	}{
		{
			name:       "completed with same request is replayed",
			existing:   completedRecord(key, hash),
			wantReplay: true,
		},
		{
			name:     "same key with different request",
			existing: completedRecord(key, "other"),
			wantErr:  errs.ErrDuplicateSubmission,
		},
		{
			name:     "in flight",
			existing: &shared.SubmissionRecord{IdempotencyKey: key, RequestHash: hash, Status: shared.SubmissionProcessing},
			wantErr:  errs.ErrSubmissionInProgress,
		},
		{
			name: "rejected is replayed as rejection",
			existing: func() *shared.SubmissionRecord {
				msg := "Nicht genug E-Bikes"
				return &shared.SubmissionRecord{IdempotencyKey: key, RequestHash: hash, Status: shared.SubmissionRejected, RejectionMessage: &msg}
			}(),
			wantErr:     errs.ErrUpstreamRejected,
			wantMessage: "Nicht genug E-Bikes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(false, nil)
			f.repo.EXPECT().Get(ctx, key).Return(tc.existing, nil)

			result, err := f.cmds.Submit(ctx, validParams(), key)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				if tc.wantMessage != "" {
					var rej *commands.RejectedError
					require.ErrorAs(t, err, &rej)
					assert.Equal(t, tc.wantMessage, rej.Message)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantReplay, result.IsReplayed)
			assert.Equal(t, key, result.Submission.IdempotencyKey)
		})
	}
}

func TestBookingCommands_Submit_SameRequestSameHash(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()
	var hashes []string

	for _, positionen := range []map[string]int{
		{"E-Bike": 2, "Normal": 1},
		{" Normal ": 1, "E-Bike": 2, "Lastenrad": 0},
	} {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p shared.ClaimParams) (bool, error) {
			hashes = append(hashes, p.RequestHash)
			return false, assert.AnError
		})
		_, err := f.cmds.Submit(ctx, commands.SubmitBookingParams{VonDatum: "2024-06-01", BisDatum: "2024-06-03", Positionen: positionen}, key)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyCheckFailed))
	}
	require.Len(t, hashes, 2)
	assert.Equal(t, hashes[0], hashes[1])
}

func TestBookingCommands_Submit_Refusals(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("missing idempotency key", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.cmds.Submit(ctx, validParams(), uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrIdempotencyKeyRequired)
	})

	t.Run("invalid range is refused before claiming", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.cmds.Submit(ctx, commands.SubmitBookingParams{VonDatum: "2024-06-03", BisDatum: "2024-06-01"}, key)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
	})

	t.Run("range longer than the default limit is refused before claiming", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.cmds.Submit(ctx, commands.SubmitBookingParams{
			VonDatum:   "2024-06-01",
			BisDatum:   "2025-06-02",
			Positionen: map[string]int{"E-Bike": 1},
		}, key)
		assert.True(t, errs.Is(err, errs.ErrInvalidRange))
		assert.ErrorIs(t, err, rental.ErrRangeTooLong)
	})

	t.Run("capacity exceeded releases the claim and sends nothing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil)
		f.repo.EXPECT().MarkFailed(gomock.Any(), key).Return(nil)

		params := validParams()
		params.Positionen = map[string]int{"E-Bike": 16, "Normal": 9}
		_, err := f.cmds.Submit(ctx, params, key)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))

		var capErr *commands.CapacityError
		require.ErrorAs(t, err, &capErr)
		require.Len(t, capErr.Issues, 2)
		assert.Equal(t, rental.TypeName("E-Bike"), capErr.Issues[0].Type)
		assert.Equal(t, 15, capErr.Issues[0].Available)
		assert.Equal(t, rental.TypeName("Normal"), capErr.Issues[1].Type)
	})

	t.Run("nothing selected", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil)
		f.repo.EXPECT().MarkFailed(gomock.Any(), key).Return(nil)

		params := validParams()
		params.Positionen = map[string]int{"E-Bike": 0}
		_, err := f.cmds.Submit(ctx, params, key)
		assert.True(t, errs.Is(err, errs.ErrNothingSelected), "got %v", err)
	})

	t.Run("only unknown types is nothing selected, not a capacity issue", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil)
		f.repo.EXPECT().MarkFailed(gomock.Any(), key).Return(nil)

		params := validParams()
		params.Positionen = map[string]int{"Tandem": 2}
		_, err := f.cmds.Submit(ctx, params, key)
		assert.True(t, errs.Is(err, errs.ErrNothingSelected), "got %v", err)
		assert.False(t, errs.Is(err, errs.ErrCapacityExceeded))
	})

	t.Run("snapshot refresh fails", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(rental.Snapshot{}, errs.Mark(assert.AnError, errs.ErrUpstreamUnavailable))
		f.repo.EXPECT().MarkFailed(gomock.Any(), key).Return(nil)

		_, err := f.cmds.Submit(ctx, validParams(), key)
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})
}

func TestBookingCommands_Submit_UpstreamOutcomes(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("rejection is journaled and reported", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil)
		f.sink.EXPECT().SubmitBooking(ctx, gomock.Any()).Return("", &upstreamRejection{msg: "Zeitraum gesperrt"}).Times(1)
		f.repo.EXPECT().MarkRejected(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p shared.RejectionParams) error {
			assert.Equal(t, "Zeitraum gesperrt", p.RejectionMessage)
			assert.Equal(t, "132.00", p.TotalPrice.StringFixed(2))
			return nil
		})

		_, err := f.cmds.Submit(ctx, validParams(), key)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUpstreamRejected))
		var rej *commands.RejectedError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, "Zeitraum gesperrt", rej.Message)
	})

	t.Run("network failure releases the claim without retry", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil)
		f.sink.EXPECT().SubmitBooking(ctx, gomock.Any()).
			Return("", infra.WrapRepoErr("timeout", assert.AnError, infra.KindUnavailable)).Times(1)
		f.repo.EXPECT().MarkFailed(gomock.Any(), key).Return(nil)

		_, err := f.cmds.Submit(ctx, validParams(), key)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
	})

	t.Run("journal failure after acceptance is not resent", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().TryClaim(ctx, gomock.Any()).Return(true, nil)
		f.snapshots.EXPECT().Refresh(ctx, gomock.Any()).Return(fleet(), nil)
		f.sink.EXPECT().SubmitBooking(ctx, gomock.Any()).Return("4711", nil).Times(1)
		f.repo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any()).Return(infra.WrapRepoErr("boom", assert.AnError))

		_, err := f.cmds.Submit(ctx, validParams(), key)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
