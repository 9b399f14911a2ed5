package response

import (
	"encoding/json"

	"radstation/internal/domain/rental"
	"radstation/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(moneyPlaces))
}

type TypeAvailabilityResponse struct {
	Type           string      `json:"type"`
	TotalUnits     int         `json:"total_units"`
	AvailableUnits int         `json:"available_units"`
	MaxSelectable  int         `json:"max_selectable"`
	Preis1Tag      json.Number `json:"preis_1tag" swaggertype:"number"`
	Preis3Tage     json.Number `json:"preis_3tage" swaggertype:"number"`
	Preis5Tage     json.Number `json:"preis_5tage" swaggertype:"number"`
}

type AvailabilityResponse struct {
	VonDatum     string                     `json:"von_datum"`
	BisDatum     string                     `json:"bis_datum"`
	DurationDays int                        `json:"duration_days"`
	Currency     string                     `json:"currency"`
	Types        []TypeAvailabilityResponse `json:"types"`
}

func FromAvailabilityView(v *queries.AvailabilityView, currency string) *AvailabilityResponse {
	types := make([]TypeAvailabilityResponse, len(v.Types))
	for i, t := range v.Types {
		types[i] = TypeAvailabilityResponse{
			Type:           t.Rate.Name.String(),
			TotalUnits:     t.Rate.TotalUnits,
			AvailableUnits: t.Rate.AvailableUnits,
			MaxSelectable:  t.MaxSelectable,
			Preis1Tag:      money(t.Rate.Tier1),
			Preis3Tage:     money(t.Rate.Tier2),
			Preis5Tage:     money(t.Rate.Tier3),
		}
	}
	return &AvailabilityResponse{
		VonDatum:     v.Range.Von(),
		BisDatum:     v.Range.Bis(),
		DurationDays: v.Range.Days(),
		Currency:     currency,
		Types:        types,
	}
}

type LineItemResponse struct {
	Type     string      `json:"type"`
	Count    int         `json:"count"`
	DayRate  json.Number `json:"day_rate" swaggertype:"number"`
	Subtotal json.Number `json:"subtotal" swaggertype:"number"`
}

type CapacityIssueResponse struct {
	Type      string `json:"type"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func FromCapacityIssues(issues []*rental.CapacityExceededError) []CapacityIssueResponse {
	res := make([]CapacityIssueResponse, len(issues))
	for i, issue := range issues {
		res[i] = CapacityIssueResponse{
			Type:      issue.Type.String(),
			Requested: issue.Requested,
			Available: issue.Available,
		}
	}
	return res
}

type QuoteResponse struct {
	VonDatum       string                  `json:"von_datum"`
	BisDatum       string                  `json:"bis_datum"`
	DurationDays   int                     `json:"duration_days"`
	Currency       string                  `json:"currency"`
	LineItems      []LineItemResponse      `json:"line_items"`
	TotalPrice     json.Number             `json:"total_price" swaggertype:"number"`
	UnitCount      int                     `json:"unit_count"`
	UnknownTypes   []string                `json:"unknown_types,omitempty"`
	CapacityIssues []CapacityIssueResponse `json:"capacity_issues"`
	Submittable    bool                    `json:"submittable"`
}

func FromQuoteView(v *queries.QuoteView, currency string) *QuoteResponse {
	items := make([]LineItemResponse, len(v.Quote.LineItems))
	for i, li := range v.Quote.LineItems {
		items[i] = LineItemResponse{
			Type:     li.Type.String(),
			Count:    li.Count,
			DayRate:  money(li.AppliedDayRate),
			Subtotal: money(li.Subtotal),
		}
	}

	var unknown []string
	for _, name := range v.Quote.UnknownTypes {
		unknown = append(unknown, name.String())
	}

	return &QuoteResponse{
		VonDatum:       v.Range.Von(),
		BisDatum:       v.Range.Bis(),
		DurationDays:   v.Quote.DurationDays,
		Currency:       currency,
		LineItems:      items,
		TotalPrice:     money(v.Quote.TotalPrice),
		UnitCount:      v.Quote.UnitCount(),
		UnknownTypes:   unknown,
		CapacityIssues: FromCapacityIssues(v.CapacityIssues),
		Submittable:    v.Submittable,
	}
}

type OccupancyResponse struct {
	Type   string `json:"type"`
	Total  int    `json:"total"`
	Booked int    `json:"booked"`
	Free   int    `json:"free"`
}

type TimelineDayResponse struct {
	Date  string              `json:"date"`
	Types []OccupancyResponse `json:"types"`
}

type TimelineResponse struct {
	VonDatum string                `json:"von_datum"`
	BisDatum string                `json:"bis_datum"`
	Days     []TimelineDayResponse `json:"days"`
	MinFree  map[string]int        `json:"min_free"`
}

func FromTimelineView(v *queries.TimelineView) *TimelineResponse {
	days := make([]TimelineDayResponse, len(v.Days))
	for i, day := range v.Days {
		types := make([]OccupancyResponse, len(day.Types))
		for j, t := range day.Types {
			types[j] = OccupancyResponse{Type: t.Type.String(), Total: t.Total, Booked: t.Booked, Free: t.Free}
		}
		days[i] = TimelineDayResponse{Date: day.Date.Format(rental.DateLayout), Types: types}
	}

	minFree := make(map[string]int, len(v.MinFree))
	for name, free := range v.MinFree {
		minFree[name.String()] = free
	}

	return &TimelineResponse{
		VonDatum: v.Range.Von(),
		BisDatum: v.Range.Bis(),
		Days:     days,
		MinFree:  minFree,
	}
}
