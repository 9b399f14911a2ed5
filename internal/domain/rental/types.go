package rental

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRange     = errors.New("end date precedes start date")
	ErrRangeTooLong     = errors.New("date range exceeds the maximum length")
	ErrCapacityExceeded = errors.New("requested count exceeds available units")
	ErrUnknownType      = errors.New("unknown bicycle type")
	ErrNothingSelected  = errors.New("no bicycles selected")
	ErrEmptyTypeName    = errors.New("bicycle type name cannot be empty")
)

type TypeName string

func NewTypeName(raw string) (TypeName, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyTypeName
	}
	return TypeName(name), nil
}

func (n TypeName) String() string {
	return string(n)
}

// BicycleTypeRate is the price schedule and fleet size of one bicycle type.
// Tier1 applies to 1-2 days, Tier2 to 3-4 days and Tier3 to 5 or more days.
type BicycleTypeRate struct {
	Name           TypeName
	Tier1          decimal.Decimal
	Tier2          decimal.Decimal
	Tier3          decimal.Decimal
	TotalUnits     int
	AvailableUnits int
	Rentable       bool
}

// HasTierAnomaly reports rates that grow with the rental duration.
func (r BicycleTypeRate) HasTierAnomaly() bool {
	return r.Tier1.LessThan(r.Tier2) || r.Tier2.LessThan(r.Tier3)
}

type RentalLineRequest struct {
	Type  TypeName
	Count int
}

// Snapshot is a read-only view of the rentable fleet at the time it was fetched.
type Snapshot struct {
	rates map[TypeName]BicycleTypeRate
}

// NewSnapshot keeps only rentable types. A later rate with the same name replaces an earlier one.
func NewSnapshot(rates ...BicycleTypeRate) Snapshot {
	m := make(map[TypeName]BicycleTypeRate, len(rates))
	for _, r := range rates {
		if !r.Rentable || r.Name == "" {
			continue
		}
		m[r.Name] = r
	}
	return Snapshot{rates: m}
}

func (s Snapshot) Lookup(name TypeName) (BicycleTypeRate, bool) {
	r, ok := s.rates[name]
	return r, ok
}

func (s Snapshot) Len() int {
	return len(s.rates)
}

func (s Snapshot) Names() []TypeName {
	names := make([]TypeName, 0, len(s.rates))
	for n := range s.rates {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (s Snapshot) Rates() []BicycleTypeRate {
	names := s.Names()
	out := make([]BicycleTypeRate, len(names))
	for i, n := range names {
		out[i] = s.rates[n]
	}
	return out
}

// addCount saturates at the int bounds instead of wrapping.
func addCount(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// RequestsFromCounts turns a name→count selection into requests ordered by name.
// Blank names are dropped; names equal after trimming are merged.
func RequestsFromCounts(counts map[string]int) []RentalLineRequest {
	merged := make(map[TypeName]int, len(counts))
	for raw, count := range counts {
		name, err := NewTypeName(raw)
		if err != nil {
			continue
		}
		merged[name] = addCount(merged[name], count)
	}

	names := make([]TypeName, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	requests := make([]RentalLineRequest, 0, len(names))
	for _, name := range names {
		requests = append(requests, RentalLineRequest{Type: name, Count: merged[name]})
	}
	return requests
}
