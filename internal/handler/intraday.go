package handler

import (
	"context"

	"github.com/rs/zerolog"

	"marketfetch/internal/candle"
	"marketfetch/internal/provider"
)

const (
	DefaultInterval = "1m"
	DefaultLookback = "1d"
)

// IntradayResult is the intraday response body. Interval echoes the request;
// Source names the provider that produced Candles.
type IntradayResult struct {
	Symbol   string          `json:"symbol"`
	Interval string          `json:"interval"`
	Candles  []candle.Candle `json:"candles"`
	Source   string          `json:"source"`
}

type intradayState int

const (
	tryPrimary intradayState = iota
	tryFallback
	tryCoarse
	done
)

func (s intradayState) String() string {
	switch s {
	case tryPrimary:
		return "primary"
	case tryFallback:
		return "fallback"
	case tryCoarse:
		return "coarse"
	}
	return "done"
}

// Intraday serves candles from Primary when configured, then from Fallback
// at the requested granularity, then from Fallback at daily granularity.
type Intraday struct {
	Primary  provider.IntradayProvider // nil when no credential is configured
	Fallback provider.HistoryProvider
	Log      zerolog.Logger
}

func (h *Intraday) Run(ctx context.Context, symbol, interval, lookback string) (IntradayResult, error) {
	if interval == "" { interval = DefaultInterval }
	if lookback == "" { lookback = DefaultLookback }

	state := tryPrimary
	if h.Primary == nil {
		state = tryFallback
	}

	var (
		candles []candle.Candle
		source  string
		err     error
	)
	for state != done {
		switch state {
		case tryPrimary:
			candles, err = h.Primary.Intraday(ctx, symbol, interval, lookback)
			source = h.Primary.Name()
			state = tryFallback
		case tryFallback:
			candles, err = h.Fallback.History(ctx, symbol, provider.HistoryQuery{Interval: interval, Period: lookback})
			source = h.Fallback.Name()
			state = tryCoarse
		case tryCoarse:
			candles, err = h.Fallback.History(ctx, symbol, provider.HistoryQuery{Interval: "1d", Period: "1d"})
			source = h.Fallback.Name()
			state = done
		}
		if err == nil && len(candles) > 0 {
			return IntradayResult{Symbol: symbol, Interval: interval, Candles: candles, Source: source}, nil
		}
		h.Log.Warn().Err(err).Str("symbol", symbol).Str("provider", source).Stringer("next", state).Msg("intraday stage produced no candles")
	}
	return IntradayResult{}, failf("Failed to fetch intraday data for %s", symbol)
}
