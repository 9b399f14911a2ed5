//go:build unit

package upstream_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/infra"
	"radstation/internal/infra/upstream"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *upstream.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return upstream.NewClient(server.Client(), config.UpstreamConfig{
		BaseURL: server.URL + "/",
		Timeout: 2 * time.Second,
		APIKey:  "secret",
	})
}

func juneRange(t *testing.T) rental.DateRange {
	t.Helper()
	r, err := rental.ParseDateRange("2024-06-01", "2024-06-03")
	require.NoError(t, err)
	return r
}

func TestClient_FetchSnapshot(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vermietung/verfuegbarkeit", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("von"))
		assert.Equal(t, "2024-06-03", r.URL.Query().Get("bis"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		_, _ = io.WriteString(w, `{
			"E-Bike": {"gesamt": 15, "verfuegbar": 15, "preis_1tag": 25, "preis_3tage": 22, "preis_5tage": "20.00"},
			"Normal": {"gesamt": 20, "verfuegbar": 8, "preis_1tag": 15.5, "preis_3tage": 12.75, "preis_5tage": 10, "vermietbar": false}
		}`)
	})

	records, err := client.FetchSnapshot(context.Background(), juneRange(t))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, decimal.NewFromInt(20).Equal(records["E-Bike"].Preis5Tage))
	assert.Equal(t, 8, records["Normal"].Verfuegbar)
	assert.False(t, records["Normal"].IsRentable())
}

func TestClient_FetchBookings(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vermietung/buchungen", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 17, "von_datum": "2024-06-01", "bis_datum": "2024-06-02", "positionen": {"E-Bike": 2, " ": 3, "Normal": 0}},
			{"id": "B-3", "von_datum": "2024-06-03", "bis_datum": "2024-06-03", "positionen": {"Normal": 1}}
		]`)
	})

	bookings, err := client.FetchBookings(context.Background(), juneRange(t))
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "17", bookings[0].ID)
	assert.Equal(t, map[rental.TypeName]int{"E-Bike": 2}, bookings[0].Units)
	assert.Equal(t, "B-3", bookings[1].ID)
	assert.Equal(t, 1, bookings[1].Range.Days())
}

func TestClient_FetchBookings_InvalidRange(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"id": 1, "von_datum": "2024-06-05", "bis_datum": "2024-06-01"}]`)
	})

	_, err := client.FetchBookings(context.Background(), juneRange(t))
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindInvalidPayload), "got %v", err)
}

func TestClient_SubmitBooking(t *testing.T) {
	r := juneRange(t)
	quote := rental.ComputeQuote(3,
		[]rental.RentalLineRequest{{Type: "E-Bike", Count: 2}},
		rental.NewSnapshot(rental.BicycleTypeRate{
			Name: "E-Bike", Tier1: decimal.NewFromInt(25), Tier2: decimal.NewFromInt(22), Tier3: decimal.NewFromInt(20),
			TotalUnits: 15, AvailableUnits: 15, Rentable: true,
		}),
	)
	sub, err := rental.NewBookingSubmission(r, quote)
	require.NoError(t, err)

	tests := []struct {
		name       string
		status     int
		body       string
		wantID     string
		wantErr    error
		wantKind   infra.RepositoryErrorKind
		wantRejMsg string
	}{
		{name: "success with numeric id", status: http.StatusCreated, body: `{"id": 4711}`, wantID: "4711"},
		{name: "success with string id", status: http.StatusOK, body: `{"id": "B-1"}`, wantID: "B-1"},
		{name: "rejection with error field", status: http.StatusConflict, body: `{"error": "Nicht genug E-Bikes"}`, wantErr: errs.ErrUpstreamRejected, wantRejMsg: "Nicht genug E-Bikes"},
		{name: "rejection with message field", status: http.StatusUnprocessableEntity, body: `{"message": "Datum ungültig"}`, wantErr: errs.ErrUpstreamRejected, wantRejMsg: "Datum ungültig"},
		{name: "rejection with text body", status: http.StatusBadRequest, body: "kaputt\n", wantErr: errs.ErrUpstreamRejected, wantRejMsg: "kaputt"},
		{name: "server error", status: http.StatusBadGateway, body: "down", wantKind: infra.KindUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			client := newClient(t, func(w http.ResponseWriter, req *http.Request) {
				calls++
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

				var payload map[string]any
				require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
				assert.Equal(t, "2024-06-01", payload["von_datum"])
				assert.EqualValues(t, 2, payload["anzahl_raeder"])

				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			id, err := client.SubmitBooking(context.Background(), sub)
			assert.Equal(t, 1, calls)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				var rej *upstream.RejectionError
				require.ErrorAs(t, err, &rej)
				assert.Equal(t, tt.status, rej.Status)
				assert.Equal(t, tt.wantRejMsg, rej.Message)
			case tt.wantKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := upstream.NewClient(nil, config.UpstreamConfig{BaseURL: server.URL, Timeout: time.Second})
	_, err := client.FetchSnapshot(context.Background(), juneRange(t))
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUnavailable))
}
