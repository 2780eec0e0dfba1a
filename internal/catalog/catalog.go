package catalog

import "strings"

// Type classifies a catalog entry.
type Type string

const (
	Equity Type = "equity"
	ETF    Type = "etf"
)

// DefaultLimit caps search results when the caller gives no positive limit.
const DefaultLimit = 10

// Entry is one searchable instrument.
type Entry struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     Type   `json:"type"`
}

// Catalog is a fixed, read-only list of instruments.
type Catalog struct {
	entries []Entry
}

// New copies entries into a Catalog.
func New(entries []Entry) *Catalog {
	return &Catalog{entries: append([]Entry(nil), entries...)}
}

// Default returns the built-in catalog. This is a static stand-in for a
// live symbol lookup.
func Default() *Catalog {
	return New([]Entry{
		{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "GOOGL", Name: "Alphabet Inc. Class A", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "TSLA", Name: "Tesla Inc.", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "META", Name: "Meta Platforms Inc.", Exchange: "NASDAQ", Type: Equity},
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Exchange: "NYSE", Type: Equity},
		{Symbol: "V", Name: "Visa Inc.", Exchange: "NYSE", Type: Equity},
		{Symbol: "SPY", Name: "SPDR S&P 500 Trust", Exchange: "NYSE Arca", Type: ETF},
		{Symbol: "VOO", Name: "Vanguard S&P 500 Index Fund", Exchange: "NYSE Arca", Type: ETF},
		{Symbol: "IVV", Name: "iShares Core S&P 500", Exchange: "NYSE Arca", Type: ETF},
		{Symbol: "QQQ", Name: "Invesco QQQ Trust", Exchange: "NASDAQ", Type: ETF},
		{Symbol: "VTI", Name: "Vanguard Total Stock Market Index Fund", Exchange: "NYSE Arca", Type: ETF},
		{Symbol: "DIA", Name: "SPDR Dow Jones Industrial Average Trust", Exchange: "NYSE Arca", Type: ETF},
	})
}

// Entries returns a copy of the catalog contents.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Search returns entries whose symbol or name contains query,
// case-insensitively, in catalog order. The result is never nil.
func (c *Catalog) Search(query string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Entry, 0, limit)
	for _, e := range c.entries {
		if len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Symbol), q) || strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}
