//go:build unit

package rental_test

import (
	"time"

	"radstation/internal/domain/rental"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.AllowUnexported(rental.DateRange{}),
}

func eBike() rental.BicycleTypeRate {
	return rental.BicycleTypeRate{
		Name:           "E-Bike",
		Tier1:          decimal.NewFromInt(25),
		Tier2:          decimal.NewFromInt(22),
		Tier3:          decimal.NewFromInt(20),
		TotalUnits:     15,
		AvailableUnits: 15,
		Rentable:       true,
	}
}

func normal() rental.BicycleTypeRate {
	return rental.BicycleTypeRate{
		Name:           "Normal",
		Tier1:          decimal.RequireFromString("15.50"),
		Tier2:          decimal.RequireFromString("12.75"),
		Tier3:          decimal.NewFromInt(10),
		TotalUnits:     20,
		AvailableUnits: 8,
		Rentable:       true,
	}
}

func date(s string) time.Time {
	t, err := time.Parse(rental.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dateRange(von, bis string) rental.DateRange {
	r, err := rental.ParseDateRange(von, bis)
	if err != nil {
		panic(err)
	}
	return r
}

func cmpDiffRates(want, got []rental.BicycleTypeRate) string {
	return cmp.Diff(want, got, cmpOpts...)
}
