package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"radstation/internal/domain/rental"
	"radstation/internal/infra"
	"radstation/internal/pkg/config"
	"radstation/internal/pkg/errs"
)

const (
	availabilityPath = "/api/vermietung/verfuegbarkeit"
	bookingsPath     = "/api/vermietung/buchungen"
	apiKeyHeader     = "X-Api-Key"
	maxErrorBody     = 4 << 10
)

// RejectionError is returned when the backend answers a booking with a 4xx status.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("upstream rejected booking (%d): %s", e.Status, e.Message)
}

func (e *RejectionError) Is(target error) bool {
	return target == errs.ErrUpstreamRejected
}

func (e *RejectionError) UpstreamMessage() string {
	return e.Message
}

// Client talks to the Warenwirtschaft REST backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(httpClient *http.Client, cfg config.UpstreamConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = 5 * time.Second
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

func (c *Client) FetchSnapshot(ctx context.Context, r rental.DateRange) (map[string]rental.SnapshotRecord, error) {
	var records map[string]rental.SnapshotRecord
	if err := c.getJSON(ctx, availabilityPath, rangeQuery(r), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = map[string]rental.SnapshotRecord{}
	}
	return records, nil
}

type bookingWire struct {
	ID         flexibleID     `json:"id"`
	VonDatum   string         `json:"von_datum"`
	BisDatum   string         `json:"bis_datum"`
	Positionen map[string]int `json:"positionen"`
}

func (c *Client) FetchBookings(ctx context.Context, r rental.DateRange) ([]rental.Booking, error) {
	var wire []bookingWire
	if err := c.getJSON(ctx, bookingsPath, rangeQuery(r), &wire); err != nil {
		return nil, err
	}

	bookings := make([]rental.Booking, 0, len(wire))
	for _, w := range wire {
		br, err := rental.ParseDateRange(w.VonDatum, w.BisDatum)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking range from upstream: "+string(w.ID), err, infra.KindInvalidPayload)
		}
		units := make(map[rental.TypeName]int, len(w.Positionen))
		for name, count := range w.Positionen {
			typeName, err := rental.NewTypeName(name)
			if err != nil || count <= 0 {
				continue
			}
			units[typeName] += count
		}
		bookings = append(bookings, rental.Booking{ID: string(w.ID), Range: br, Units: units})
	}
	return bookings, nil
}

// SubmitBooking posts the payload exactly once. The caller decides about retries.
func (c *Client) SubmitBooking(ctx context.Context, sub rental.BookingSubmission) (string, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return "", infra.WrapRepoErr("failed to encode booking submission", err, infra.KindInvalidPayload)
	}

	req, err := c.newRequest(ctx, http.MethodPost, bookingsPath, nil, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", infra.WrapRepoErr("booking request failed", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var created struct {
		ID flexibleID `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", infra.WrapRepoErr("failed to decode booking response", err, infra.KindInvalidPayload)
	}
	return string(created.ID), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapRepoErr("upstream request failed: "+path, err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return infra.WrapRepoErr("failed to decode upstream response: "+path, err, infra.KindInvalidPayload)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build upstream request", err, infra.KindUnavailable)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	return req, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &RejectionError{Status: resp.StatusCode, Message: errorMessage(b, resp.Status)}
	}
	return infra.WrapRepoErr(
		fmt.Sprintf("upstream http %s: %s", resp.Status, strings.TrimSpace(string(b))),
		nil,
		infra.KindUnavailable,
	)
}

// errorMessage prefers {"error": ...} then {"message": ...} then the raw body.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fallback
}

func rangeQuery(r rental.DateRange) url.Values {
	q := url.Values{}
	q.Set("von", r.Von())
	q.Set("bis", r.Bis())
	return q
}

// flexibleID accepts both string and numeric ids.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}
