package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guregu/null/v6"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"marketfetch/internal/candle"
	"marketfetch/internal/provider"
)

// sessionPad widens a one-day period so weekends and holidays still reach
// the most recent trading session.
const sessionPad = 4 * 24 * time.Hour

type Config struct {
	Name string // result source, default: yfinance
}

// Client serves latest closes, history and profile data from Yahoo Finance.
type Client struct {
	cfg     Config
	backend Backend
	now     func() time.Time
}

func New(cfg Config, backend Backend) *Client {
	if cfg.Name == "" { cfg.Name = "yfinance" }
	if backend == nil { backend = FinanceBackend{} }
	return &Client{cfg: cfg, backend: backend, now: time.Now}
}

func (c *Client) Name() string { return c.cfg.Name }

// LatestClose returns the close of the most recent daily session.
func (c *Client) LatestClose(ctx context.Context, symbol string) (provider.PricePoint, error) {
	bars, err := c.History(ctx, symbol, provider.HistoryQuery{Interval: "1d", Period: "1d"})
	if err != nil {
		return provider.PricePoint{}, err
	}
	last := bars[len(bars)-1]
	return provider.PricePoint{
		Symbol:    symbol,
		AssetType: provider.AssetEquity,
		Close:     last.Close,
		Date:      time.UnixMilli(last.TS).UTC().Format(time.DateOnly),
		Source:    c.cfg.Name,
	}, nil
}

// History returns bars of q.Interval covering q.Period up to now, oldest
// first. A "1d" period yields only the latest trading session.
func (c *Client) History(ctx context.Context, symbol string, q provider.HistoryQuery) ([]candle.Candle, error) {
	interval, err := toInterval(q.Interval)
	if err != nil {
		return nil, &provider.Error{Provider: c.cfg.Name, Op: "chart", Err: err}
	}
	period, err := provider.ParseSpan(q.Period)
	if err != nil {
		return nil, &provider.Error{Provider: c.cfg.Name, Op: "chart", Err: err}
	}

	end := c.now().UTC()
	start := end.Add(-period.Duration())
	oneSession := period == provider.Span{N: 1, Unit: provider.Day}
	if oneSession {
		start = start.Add(-sessionPad)
	}

	bars, err := c.backend.Chart(ctx, &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: interval,
	})
	if err != nil {
		return nil, &provider.Error{Provider: c.cfg.Name, Op: "chart", Err: err}
	}

	out := toCandles(bars)
	if oneSession {
		out = lastSession(out)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w for %s", c.cfg.Name, provider.ErrNoData, symbol)
	}
	return out, nil
}

// Profile returns the display name and market cap of symbol. Name falls back
// from long name to short name to the symbol itself.
func (c *Client) Profile(ctx context.Context, symbol string) (provider.Profile, error) {
	eq, err := c.backend.Equity(ctx, symbol)
	if err != nil {
		return provider.Profile{Name: symbol}, &provider.Error{Provider: c.cfg.Name, Op: "equity", Err: err}
	}
	if eq == nil {
		return provider.Profile{Name: symbol}, fmt.Errorf("%s: %w for %s", c.cfg.Name, provider.ErrNoData, symbol)
	}

	p := provider.Profile{Name: symbol}
	switch {
	case strings.TrimSpace(eq.LongName) != "":
		p.Name = eq.LongName
	case strings.TrimSpace(eq.ShortName) != "":
		p.Name = eq.ShortName
	}
	if eq.MarketCap > 0 {
		p.MarketCap = null.FloatFrom(float64(eq.MarketCap))
	}
	return p, nil
}

func toCandles(bars []*finance.ChartBar) []candle.Candle {
	raws := make([]candle.Raw, 0, len(bars))
	for _, b := range bars {
		// Yahoo pads halted or partial minutes with null bars.
		if b == nil || b.Close.IsZero() {
			continue
		}
		raws = append(raws, candle.Raw{
			Timestamp: int64(b.Timestamp),
			Open:      b.Open.InexactFloat64(),
			High:      b.High.InexactFloat64(),
			Low:       b.Low.InexactFloat64(),
			Close:     b.Close.InexactFloat64(),
			Volume:    float64(b.Volume),
		})
	}
	return candle.NormalizeAll(raws)
}

// lastSession keeps the bars sharing the UTC date of the final bar.
func lastSession(cs []candle.Candle) []candle.Candle {
	if len(cs) == 0 {
		return cs
	}
	day := time.UnixMilli(cs[len(cs)-1].TS).UTC().Format(time.DateOnly)
	i := len(cs)
	for i > 0 && time.UnixMilli(cs[i-1].TS).UTC().Format(time.DateOnly) == day {
		i--
	}
	return cs[i:]
}

var intervals = map[string]datetime.Interval{
	"1m":  datetime.OneMin,
	"2m":  "2m",
	"5m":  "5m",
	"15m": "15m",
	"30m": "30m",
	"60m": "60m",
	"90m": "90m",
	"1h":  "1h",
	"1d":  datetime.OneDay,
	"5d":  "5d",
	"1wk": "1wk",
	"1mo": "1mo",
	"3mo": "3mo",
}

func toInterval(s string) (datetime.Interval, error) {
	if iv, ok := intervals[strings.ToLower(strings.TrimSpace(s))]; ok {
		return iv, nil
	}
	return "", fmt.Errorf("unsupported interval %q", s)
}
