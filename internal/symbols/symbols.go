package symbols

import "strings"

// Map is an immutable bidirectional table between internal tickers
// (e.g. "BTC-USD") and CoinGecko identifiers (e.g. "bitcoin").
type Map struct {
	idByTicker map[string]string
	tickerByID map[string]string
}

// New builds a Map from ticker -> provider id pairs. The input is copied.
func New(pairs map[string]string) *Map {
	m := &Map{
		idByTicker: make(map[string]string, len(pairs)),
		tickerByID: make(map[string]string, len(pairs)),
	}
	for ticker, id := range pairs {
		m.idByTicker[ticker] = id
		m.tickerByID[id] = ticker
	}
	return m
}

// Default returns the crypto symbols known at build time.
func Default() *Map {
	return New(map[string]string{
		"BTC-USD": "bitcoin",
		"ETH-USD": "ethereum",
		"ADA-USD": "cardano",
		"SOL-USD": "solana",
	})
}

// ID returns the provider identifier for a ticker.
func (m *Map) ID(ticker string) (string, bool) {
	id, ok := m.idByTicker[strings.ToUpper(strings.TrimSpace(ticker))]
	return id, ok
}

// Ticker returns the internal ticker for a provider identifier.
func (m *Map) Ticker(id string) (string, bool) {
	t, ok := m.tickerByID[id]
	return t, ok
}

// TickerFor resolves id to a ticker, synthesizing "<ID>-USD" when unmapped.
func (m *Map) TickerFor(id string) string {
	if t, ok := m.Ticker(id); ok {
		return t
	}
	return strings.ToUpper(id) + "-USD"
}

// Resolve accepts either a ticker or a provider id and returns the id.
func (m *Map) Resolve(s string) string {
	if id, ok := m.ID(s); ok {
		return id
	}
	return strings.TrimSpace(s)
}

// Len reports the number of pairs.
func (m *Map) Len() int { return len(m.idByTicker) }
