package handler

import (
	"context"
	"time"

	"github.com/guregu/null/v6"
	"github.com/rs/zerolog"

	"marketfetch/internal/aggregate"
	"marketfetch/internal/provider"
)

// PriceSummary is the price_summary response body. MarketCap is null when
// the provider does not report one.
type PriceSummary struct {
	Symbol           string            `json:"symbol"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	Change24h        float64           `json:"change24h"`
	ChangePercent24h float64           `json:"changePercent24h"`
	MarketCap        null.Float        `json:"marketCap"`
	MiniChart        []aggregate.Point `json:"miniChart"`
	AsOf             string            `json:"asOf"`
	Source           string            `json:"source"`
}

// Summary builds a PriceSummary from one day and seven days of daily history.
// The change is measured against the second-to-last close of the weekly
// series, which approximates 24 hours.
type Summary struct {
	History provider.HistoryProvider
	Log     zerolog.Logger
	Now     func() time.Time
}

func (h *Summary) Run(ctx context.Context, symbol string) (PriceSummary, error) {
	day, err := h.History.History(ctx, symbol, provider.HistoryQuery{Interval: "1d", Period: "1d"})
	if err != nil || len(day) == 0 {
		h.Log.Warn().Err(err).Str("symbol", symbol).Str("provider", h.History.Name()).Msg("1d history unavailable")
		return PriceSummary{}, failf("No price data available for %s", symbol)
	}
	week, err := h.History.History(ctx, symbol, provider.HistoryQuery{Interval: "1d", Period: "7d"})
	if err != nil || len(week) == 0 {
		h.Log.Warn().Err(err).Str("symbol", symbol).Str("provider", h.History.Name()).Msg("7d history unavailable")
		return PriceSummary{}, failf("No price data available for %s", symbol)
	}

	profile, err := h.History.Profile(ctx, symbol)
	if err != nil {
		h.Log.Warn().Err(err).Str("symbol", symbol).Msg("profile unavailable")
	}
	name := profile.Name
	if name == "" {
		name = symbol
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	change := aggregate.DayOverDay(week)
	return PriceSummary{
		Symbol:           symbol,
		Name:             name,
		Price:            day[len(day)-1].Close,
		Change24h:        change.Abs,
		ChangePercent24h: change.Percent,
		MarketCap:        profile.MarketCap,
		MiniChart:        aggregate.MiniChart(week),
		AsOf:             now().UTC().Format(time.RFC3339),
		Source:           h.History.Name(),
	}, nil
}
