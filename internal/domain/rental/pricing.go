package rental

import (
	"github.com/shopspring/decimal"
)

const (
	tier2MinDays = 3
	tier3MinDays = 5

	pricePlaces = 2
)

type LineItem struct {
	Type           TypeName
	Count          int
	AppliedDayRate decimal.Decimal
	Subtotal       decimal.Decimal
}

type Quote struct {
	DurationDays int
	LineItems    []LineItem
	TotalPrice   decimal.Decimal
	UnknownTypes []TypeName
}

func (q Quote) IsEmpty() bool {
	return len(q.LineItems) == 0
}

func (q Quote) UnitCount() int {
	n := 0
	for _, li := range q.LineItems {
		n += li.Count
	}
	return n
}

// Units sums the counts per type.
func (q Quote) Units() map[TypeName]int {
	units := make(map[TypeName]int, len(q.LineItems))
	for _, li := range q.LineItems {
		units[li.Type] += li.Count
	}
	return units
}

func SelectDayRate(rate BicycleTypeRate, days int) decimal.Decimal {
	switch {
	case days >= tier3MinDays:
		return rate.Tier3
	case days >= tier2MinDays:
		return rate.Tier2
	default:
		return rate.Tier1
	}
}

// ComputeQuote prices every request with a positive count. Unknown types contribute
// nothing and are reported in UnknownTypes. A non-positive duration yields an empty quote.
func ComputeQuote(days int, requests []RentalLineRequest, snapshot Snapshot) Quote {
	q := Quote{
		DurationDays: days,
		LineItems:    []LineItem{},
		TotalPrice:   decimal.Zero.Round(pricePlaces),
	}
	if days < 1 {
		return q
	}

	sum := decimal.Zero
	d := decimal.NewFromInt(int64(days))
	for _, req := range requests {
		if req.Count <= 0 {
			continue
		}
		rate, ok := snapshot.Lookup(req.Type)
		if !ok {
			q.UnknownTypes = append(q.UnknownTypes, req.Type)
			continue
		}

		dayRate := SelectDayRate(rate, days)
		subtotal := dayRate.Mul(d).Mul(decimal.NewFromInt(int64(req.Count)))
		q.LineItems = append(q.LineItems, LineItem{
			Type:           req.Type,
			Count:          req.Count,
			AppliedDayRate: dayRate,
			Subtotal:       subtotal,
		})
		sum = sum.Add(subtotal)
	}

	q.TotalPrice = sum.Round(pricePlaces)
	return q
}
