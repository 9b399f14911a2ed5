package request

import (
	"radstation/internal/usecase/commands"
	"radstation/internal/usecase/queries"
)

// RangeQuery is the von/bis pair of the read endpoints.
type RangeQuery struct {
	Von string `form:"von" binding:"required"`
	Bis string `form:"bis" binding:"required"`
}

// QuoteRequest mirrors the selection state of the booking form.
type QuoteRequest struct {
	VonDatum   string         `json:"von_datum" binding:"required"`
	BisDatum   string         `json:"bis_datum" binding:"required"`
	Positionen map[string]int `json:"positionen" binding:"omitempty,dive,gte=0,lte=9999"`
}

func (r QuoteRequest) ToParams() queries.QuoteParams {
	return queries.QuoteParams{
		VonDatum:   r.VonDatum,
		BisDatum:   r.BisDatum,
		Positionen: r.Positionen,
	}
}

type SubmitBookingRequest struct {
	VonDatum   string         `json:"von_datum" binding:"required"`
	BisDatum   string         `json:"bis_datum" binding:"required"`
	Positionen map[string]int `json:"positionen" binding:"required,min=1,dive,gte=0,lte=9999"`
}

func (r SubmitBookingRequest) ToParams() commands.SubmitBookingParams {
	return commands.SubmitBookingParams{
		VonDatum:   r.VonDatum,
		BisDatum:   r.BisDatum,
		Positionen: r.Positionen,
	}
}

type RecentQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=200"`
}
