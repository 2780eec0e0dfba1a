package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/guregu/null/v6"

	"marketfetch/internal/candle"
)

// AssetType tags a PricePoint.
type AssetType string

const (
	AssetEquity AssetType = "equity"
	AssetCrypto AssetType = "crypto"
)

// PricePoint is the normalized last-close shape returned by the
// equity and crypto adapters.
type PricePoint struct {
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"assetType"`
	Close     float64   `json:"close"`
	Date      string    `json:"date"`
	Source    string    `json:"source"`
}

// Profile is display metadata for a ticker.
type Profile struct {
	Name      string
	MarketCap null.Float
}

// HistoryQuery selects bar granularity and the lookback period, using the
// Yahoo notation ("1m", "1d", "7d", "1mo", ...).
type HistoryQuery struct {
	Interval string
	Period   string
}

var (
	// ErrNoData means the provider answered but had nothing for the request.
	ErrNoData = errors.New("no data")
	// ErrStatus means the provider answered with a non-OK status flag.
	ErrStatus = errors.New("provider status not ok")
)

// Error is a provider fault: transport, HTTP status or decoding.
type Error struct {
	Provider string
	Op       string
	Err      error
}

func (e *Error) Error() string { return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Errorf wraps a provider fault.
func Errorf(providerName, op string, format string, args ...any) error {
	return &Error{Provider: providerName, Op: op, Err: fmt.Errorf(format, args...)}
}

// EquityProvider returns the latest daily close for a ticker.
//
//go:generate mockgen -package=handler_test -destination=../handler/mock_provider_test.go -source=provider.go
type EquityProvider interface {
	LatestClose(ctx context.Context, symbol string) (PricePoint, error)
}

// CryptoProvider returns a USD spot price for a provider identifier.
type CryptoProvider interface {
	SpotPrice(ctx context.Context, id string) (PricePoint, error)
}

// HistoryProvider returns ordered historical bars and display metadata.
type HistoryProvider interface {
	Name() string
	History(ctx context.Context, symbol string, q HistoryQuery) ([]candle.Candle, error)
	Profile(ctx context.Context, symbol string) (Profile, error)
}

// IntradayProvider returns recent intraday bars for a ticker.
type IntradayProvider interface {
	Name() string
	Intraday(ctx context.Context, symbol, interval, lookback string) ([]candle.Candle, error)
}
