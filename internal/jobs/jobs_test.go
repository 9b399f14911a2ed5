//go:build unit

package jobs_test

import (
	"context"
	"testing"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/jobs"
	queriesmock "radstation/internal/mock/queries"
	sharedmock "radstation/internal/mock/shared"
	"radstation/internal/pkg/clock"
	"radstation/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunner_RefreshTodaySnapshot(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// 00:30 in Berlin is still the previous day in UTC.
	clk := clock.NewMockClock(time.Date(2024, 6, 2, 0, 30, 0, 0, berlin))

	ctrl := gomock.NewController(t)
	snapshots := queriesmock.NewMockSnapshotProvider(ctrl)
	repo := sharedmock.NewMockSubmissionRepository(ctrl)

	snapshots.EXPECT().Refresh(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r rental.DateRange) (rental.Snapshot, error) {
			assert.Equal(t, "2024-06-02", r.Von())
			assert.Equal(t, "2024-06-02", r.Bis())
			return rental.NewSnapshot(), nil
		})

	jobs.NewRunner(snapshots, repo, clk).RefreshTodaySnapshot()
}

func TestRunner_PurgeExpiredSubmissions(t *testing.T) {
	now := time.Date(2024, 6, 2, 3, 30, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	snapshots := queriesmock.NewMockSnapshotProvider(ctrl)
	repo := sharedmock.NewMockSubmissionRepository(ctrl)
	repo.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(3), nil)

	jobs.NewRunner(snapshots, repo, clock.NewMockClock(now)).PurgeExpiredSubmissions()
}

func TestNewScheduler(t *testing.T) {
	runner := jobs.NewRunner(nil, nil, clock.NewMockClock(time.Now()))

	t.Run("registers both jobs", func(t *testing.T) {
		s, err := jobs.NewScheduler(runner, config.SchedulerConfig{
			Location:         "Europe/Berlin",
			RefreshSnapshot:  "0 */1 * * * *",
			PurgeSubmissions: "0 30 3 * * *",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, s.Entries())
	})

	t.Run("rejects expressions without seconds field", func(t *testing.T) {
		_, err := jobs.NewScheduler(runner, config.SchedulerConfig{
			Location:         "UTC",
			RefreshSnapshot:  "*/1 * * *",
			PurgeSubmissions: "0 30 3 * * *",
		})
		assert.ErrorContains(t, err, "failed to register RefreshTodaySnapshot job")
	})

	t.Run("rejects unknown location", func(t *testing.T) {
		_, err := jobs.NewScheduler(runner, config.SchedulerConfig{Location: "Mars/Olympus"})
		assert.ErrorContains(t, err, `invalid scheduler location "Mars/Olympus"`)
	})
}
