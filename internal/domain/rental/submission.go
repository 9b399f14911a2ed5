package rental

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BookingSubmission is the payload the Warenwirtschaft backend expects on confirm.
type BookingSubmission struct {
	AnzahlRaeder int
	Range        DateRange
	Tagespreis   decimal.Decimal
	AnzahlTage   int
	Gesamtpreis  decimal.Decimal
	Positionen   map[TypeName]int
}

// NewBookingSubmission derives the average day rate only because the backend schema
// stores one; it is not used for pricing.
func NewBookingSubmission(r DateRange, q Quote) (BookingSubmission, error) {
	units := q.UnitCount()
	if units <= 0 || q.DurationDays < 1 {
		return BookingSubmission{}, ErrNothingSelected
	}

	divisor := decimal.NewFromInt(int64(q.DurationDays * units))
	return BookingSubmission{
		AnzahlRaeder: units,
		Range:        r,
		Tagespreis:   q.TotalPrice.DivRound(divisor, pricePlaces),
		AnzahlTage:   q.DurationDays,
		Gesamtpreis:  q.TotalPrice.Round(pricePlaces),
		Positionen:   q.Units(),
	}, nil
}

type bookingSubmissionWire struct {
	AnzahlRaeder int            `json:"anzahl_raeder"`
	VonDatum     string         `json:"von_datum"`
	BisDatum     string         `json:"bis_datum"`
	Tagespreis   json.Number    `json:"tagespreis"`
	AnzahlTage   int            `json:"anzahl_tage"`
	Gesamtpreis  json.Number    `json:"gesamtpreis"`
	Positionen   map[string]int `json:"positionen,omitempty"`
}

// MarshalJSON writes prices as JSON numbers with two decimals.
func (b BookingSubmission) MarshalJSON() ([]byte, error) {
	pos := make(map[string]int, len(b.Positionen))
	for name, n := range b.Positionen {
		pos[name.String()] = n
	}
	return json.Marshal(bookingSubmissionWire{
		AnzahlRaeder: b.AnzahlRaeder,
		VonDatum:     b.Range.Von(),
		BisDatum:     b.Range.Bis(),
		Tagespreis:   json.Number(b.Tagespreis.StringFixed(pricePlaces)),
		AnzahlTage:   b.AnzahlTage,
		Gesamtpreis:  json.Number(b.Gesamtpreis.StringFixed(pricePlaces)),
		Positionen:   pos,
	})
}
