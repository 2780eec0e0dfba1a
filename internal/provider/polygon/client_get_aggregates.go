package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Timespan is the unit of an aggregate window.
type Timespan string

const (
	TimespanMinute Timespan = "minute"
	TimespanHour   Timespan = "hour"
	TimespanDay    Timespan = "day"
	TimespanWeek   Timespan = "week"
	TimespanMonth  Timespan = "month"
	TimespanYear   Timespan = "year"
)

// StatusOK is the status flag of a complete aggregates response.
const StatusOK = "OK"

// Aggregate is one OHLCV bar. T is the window start in epoch milliseconds.
type Aggregate struct {
	T  int64   `json:"t"`
	O  float64 `json:"o"`
	H  float64 `json:"h"`
	L  float64 `json:"l"`
	C  float64 `json:"c"`
	V  float64 `json:"v"`
	VW float64 `json:"vw,omitempty"`
	N  int64   `json:"n,omitempty"`
}

// AggregatesResponse is the body of /v2/aggs/ticker/{ticker}/range/...
type AggregatesResponse struct {
	Ticker       string      `json:"ticker"`
	Status       string      `json:"status"`
	Adjusted     bool        `json:"adjusted"`
	QueryCount   int         `json:"queryCount"`
	ResultsCount int         `json:"resultsCount"`
	RequestID    string      `json:"request_id"`
	Results      []Aggregate `json:"results"`
	Error        string      `json:"error,omitempty"`
	Message      string      `json:"message,omitempty"`
}

// GetAggregates retrieves ascending OHLCV bars of multiplier*timespan
// between from and to (dates, inclusive).
func (c *PolygonAPIClient) GetAggregates(ctx context.Context, ticker string, multiplier int, timespan Timespan, from, to time.Time, opts ...PolygonAPIClientOption) (*AggregatesResponse, error) {
	var override = &PolygonAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
		query:      c.query,
	}
	for _, opt := range opts {
		opt(override)
	}

	query := maps.Clone(override.query)
	if query == nil {
		query = url.Values{}
	}
	query.Set("adjusted", "true")
	query.Set("sort", "asc")
	query.Set("limit", "50000")

	u := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/%s/%s/%s/%s?%s",
		override.baseURL,
		url.PathEscape(ticker),
		strconv.Itoa(multiplier),
		timespan,
		from.Format(time.DateOnly),
		to.Format(time.DateOnly),
		query.Encode(),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header
	req.Header.Set("Accept", "application/json")

	res, err := override.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request for ticker=%s", ticker)

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("unauthorized")

	case http.StatusNotFound:
		return nil, fmt.Errorf("ticker %s not found", ticker)

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limited")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var body AggregatesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding aggregates response: %w", err)
	}
	return &body, nil
}
