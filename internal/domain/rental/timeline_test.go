//go:build unit

package rental_test

import (
	"testing"

	"radstation/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	fleet := rental.NewSnapshot(eBike(), normal())
	bookings := []rental.Booking{
		{ID: "b1", Range: dateRange("2024-06-01", "2024-06-02"), Units: map[rental.TypeName]int{"E-Bike": 4}},
		{ID: "b2", Range: dateRange("2024-06-02", "2024-06-05"), Units: map[rental.TypeName]int{"E-Bike": 10, "Normal": 25}},
		{ID: "b3", Range: dateRange("2024-05-20", "2024-05-30"), Units: map[rental.TypeName]int{"E-Bike": 15}},
		{ID: "b4", Range: dateRange("2024-06-03", "2024-06-03"), Units: map[rental.TypeName]int{"Lastenrad": 1}},
	}

	days := rental.Timeline(dateRange("2024-06-01", "2024-06-03"), fleet, bookings)
	require.Len(t, days, 3)

	assert.Equal(t, date("2024-06-01"), days[0].Date)
	assert.Equal(t, []rental.TypeOccupancy{
		{Type: "E-Bike", Total: 15, Booked: 4, Free: 11},
		{Type: "Normal", Total: 20, Booked: 0, Free: 20},
	}, days[0].Types)

	assert.Equal(t, []rental.TypeOccupancy{
		{Type: "E-Bike", Total: 15, Booked: 14, Free: 1},
		{Type: "Normal", Total: 20, Booked: 25, Free: 0},
	}, days[1].Types)

	assert.Equal(t, []rental.TypeOccupancy{
		{Type: "E-Bike", Total: 15, Booked: 10, Free: 5},
		{Type: "Normal", Total: 20, Booked: 25, Free: 0},
	}, days[2].Types)

	assert.Equal(t, map[rental.TypeName]int{"E-Bike": 1, "Normal": 0}, rental.MinFree(days))
}

func TestOverlapping(t *testing.T) {
	bookings := []rental.Booking{
		{ID: "in", Range: dateRange("2024-06-03", "2024-06-04")},
		{ID: "edge", Range: dateRange("2024-05-28", "2024-06-01")},
		{ID: "out", Range: dateRange("2024-06-08", "2024-06-09")},
	}
	actual := rental.Overlapping(dateRange("2024-06-01", "2024-06-07"), bookings)
	require.Len(t, actual, 2)
	assert.Equal(t, "in", actual[0].ID)
	assert.Equal(t, "edge", actual[1].ID)
}
