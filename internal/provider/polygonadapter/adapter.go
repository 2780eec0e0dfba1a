package polygonadapter

import (
	"context"
	"fmt"
	"time"

	"marketfetch/internal/candle"
	"marketfetch/internal/provider"
	"marketfetch/internal/provider/polygon"
)

// DefaultMaxCandles bounds primary output; a wide window can return tens of
// thousands of minute bars.
const DefaultMaxCandles = 100

type Config struct {
	Name       string // display name and result source, default: polygon
	MaxCandles int    // most recent bars kept, default: 100
}

// AggregatesClient is the subset of the Polygon API the adapter needs.
type AggregatesClient interface {
	GetAggregates(ctx context.Context, ticker string, multiplier int, timespan polygon.Timespan, from, to time.Time, opts ...polygon.PolygonAPIClientOption) (*polygon.AggregatesResponse, error)
}

type Adapter struct {
	cfg    Config
	client AggregatesClient
	now    func() time.Time
}

func New(cfg Config, client AggregatesClient) *Adapter {
	if cfg.Name == "" { cfg.Name = "polygon" }
	if cfg.MaxCandles <= 0 { cfg.MaxCandles = DefaultMaxCandles }
	return &Adapter{cfg: cfg, client: client, now: time.Now}
}

func (a *Adapter) Name() string { return a.cfg.Name }

// Intraday fetches bars of the given interval covering lookback up to now.
// A non-OK status or an empty result is an error so the caller can fall back.
func (a *Adapter) Intraday(ctx context.Context, symbol, interval, lookback string) ([]candle.Candle, error) {
	mult, timespan, err := toTimespan(interval)
	if err != nil {
		return nil, &provider.Error{Provider: a.cfg.Name, Op: "aggregates", Err: err}
	}
	window, err := provider.ParseSpan(lookback)
	if err != nil {
		return nil, &provider.Error{Provider: a.cfg.Name, Op: "aggregates", Err: err}
	}

	to := a.now().UTC()
	from := to.Add(-window.Duration())

	res, err := a.client.GetAggregates(ctx, symbol, mult, timespan, from, to)
	if err != nil {
		return nil, &provider.Error{Provider: a.cfg.Name, Op: "aggregates", Err: err}
	}
	if res.Status != polygon.StatusOK {
		return nil, &provider.Error{Provider: a.cfg.Name, Op: "aggregates", Err: fmt.Errorf("%w: %q", provider.ErrStatus, res.Status)}
	}
	if len(res.Results) == 0 {
		return nil, provider.ErrNoData
	}

	raws := make([]candle.Raw, 0, len(res.Results))
	for _, r := range res.Results {
		raws = append(raws, candle.Raw{Timestamp: r.T, Open: r.O, High: r.H, Low: r.L, Close: r.C, Volume: r.V})
	}
	return candle.Tail(candle.NormalizeAll(raws), a.cfg.MaxCandles), nil
}

func toTimespan(interval string) (int, polygon.Timespan, error) {
	s, err := provider.ParseSpan(interval)
	if err != nil {
		return 0, "", err
	}
	switch s.Unit {
	case provider.Minute:
		return s.N, polygon.TimespanMinute, nil
	case provider.Hour:
		return s.N, polygon.TimespanHour, nil
	case provider.Day:
		return s.N, polygon.TimespanDay, nil
	case provider.Week:
		return s.N, polygon.TimespanWeek, nil
	case provider.Month:
		return s.N, polygon.TimespanMonth, nil
	case provider.Year:
		return s.N, polygon.TimespanYear, nil
	}
	return 0, "", fmt.Errorf("unsupported interval %q", interval)
}
