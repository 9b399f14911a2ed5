package components

import (
	"time"

	"radstation/internal/pkg/clock"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"
	"radstation/internal/usecase/commands"
	"radstation/internal/usecase/queries"
	"radstation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSnapshotProvider,
		NewRentalQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
	),
)

// NewClock runs in the shop's time zone so that "today" follows the local calendar.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.Scheduler.Location)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid SCHEDULER_LOCATION %q", cfg.Scheduler.Location)
	}
	return clock.NewRealClockIn(loc), nil
}

func NewRentalQueries(
	snapshots queries.SnapshotProvider,
	source shared.AvailabilitySource,
	cfg config.Config,
) queries.RentalQueries {
	return queries.NewRentalQueries(snapshots, source, cfg.Booking)
}

func NewBookingCommands(
	repo shared.SubmissionRepository,
	snapshots queries.SnapshotProvider,
	sink shared.BookingSink,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(repo, snapshots, sink, clk, cfg.Booking)
}
