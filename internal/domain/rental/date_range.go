package rental

import (
	"time"

	"radstation/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := civilDate(start), civilDate(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: s, end: e}, nil
}

func ParseDateRange(von, bis string) (DateRange, error) {
	start, err := time.Parse(DateLayout, von)
	if err != nil {
		return DateRange{}, errs.Wrapf(err, "invalid start date %q", von)
	}
	end, err := time.Parse(DateLayout, bis)
	if err != nil {
		return DateRange{}, errs.Wrapf(err, "invalid end date %q", bis)
	}
	return NewDateRange(start, end)
}

// SingleDay is the range of a same-day rental.
func SingleDay(day time.Time) DateRange {
	d := civilDate(day)
	return DateRange{start: d, end: d}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }
func (r DateRange) Von() string      { return r.start.Format(DateLayout) }
func (r DateRange) Bis() string      { return r.end.Format(DateLayout) }

func (r DateRange) Days() int {
	return daysBetween(r.start, r.end) + 1
}

func (r DateRange) Contains(day time.Time) bool {
	d := civilDate(day)
	return !d.Before(r.start) && !d.After(r.end)
}

// Overlaps treats both ranges as inclusive on both ends.
func (r DateRange) Overlaps(other DateRange) bool {
	return !other.end.Before(r.start) && !other.start.After(r.end)
}

func (r DateRange) String() string {
	return r.Von() + ".." + r.Bis()
}

// ComputeDurationDays counts rental days including both the start and the end date.
func ComputeDurationDays(start, end time.Time) (int, error) {
	s, e := civilDate(start), civilDate(end)
	if e.Before(s) {
		return 0, ErrInvalidRange
	}
	return daysBetween(s, e) + 1, nil
}

// civilDate drops the time of day, keeping the calendar date as seen in t's own location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween expects both dates at UTC midnight. time.Duration saturates after ~292 years.
func daysBetween(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
