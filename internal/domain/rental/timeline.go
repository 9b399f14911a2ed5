package rental

import (
	"time"
)

// Booking is an already accepted rental occupying units over a date range.
type Booking struct {
	ID    string
	Range DateRange
	Units map[TypeName]int
}

type TypeOccupancy struct {
	Type   TypeName
	Total  int
	Booked int
	Free   int
}

type TimelineDay struct {
	Date  time.Time
	Types []TypeOccupancy
}

// Timeline lays the bookings over every day of r for each type in the fleet.
// Types that are not part of the fleet are ignored.
func Timeline(r DateRange, fleet Snapshot, bookings []Booking) []TimelineDay {
	names := fleet.Names()
	days := make([]TimelineDay, 0, r.Days())

	for day := r.Start(); !day.After(r.End()); day = day.AddDate(0, 0, 1) {
		booked := make(map[TypeName]int, len(names))
		for _, b := range bookings {
			if !b.Range.Contains(day) {
				continue
			}
			for name, n := range b.Units {
				if n > 0 {
					booked[name] += n
				}
			}
		}

		types := make([]TypeOccupancy, len(names))
		for i, name := range names {
			rate, _ := fleet.Lookup(name)
			free := rate.TotalUnits - booked[name]
			if free < 0 {
				free = 0
			}
			types[i] = TypeOccupancy{
				Type:   name,
				Total:  rate.TotalUnits,
				Booked: booked[name],
				Free:   free,
			}
		}
		days = append(days, TimelineDay{Date: day, Types: types})
	}
	return days
}

// MinFree is the bottleneck free count of each type across the given days.
func MinFree(days []TimelineDay) map[TypeName]int {
	out := make(map[TypeName]int)
	for _, d := range days {
		for _, t := range d.Types {
			if cur, ok := out[t.Type]; !ok || t.Free < cur {
				out[t.Type] = t.Free
			}
		}
	}
	return out
}

// Overlapping filters the bookings touching r.
func Overlapping(r DateRange, bookings []Booking) []Booking {
	var out []Booking
	for _, b := range bookings {
		if r.Overlaps(b.Range) {
			out = append(out, b)
		}
	}
	return out
}
