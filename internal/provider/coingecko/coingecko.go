package coingecko

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"marketfetch/internal/provider"
	"marketfetch/internal/symbols"
)

const DefaultEndpoint = "https://api.coingecko.com/api/v3"

type Config struct {
	Name     string // result source, default: coingecko
	Endpoint string
	APIKey   string // optional demo key, sent as x-cg-demo-api-key
	Currency string // vs currency, default: usd
}

// Provider fetches spot prices from CoinGecko /simple/price.
type Provider struct {
	cfg     Config
	client  *resty.Client
	symbols *symbols.Map
	now     func() time.Time
}

// New wires rc (see httpx.Client.Resty) with the configured endpoint.
func New(cfg Config, rc *resty.Client, m *symbols.Map) *Provider {
	if cfg.Name == "" { cfg.Name = "coingecko" }
	if cfg.Endpoint == "" { cfg.Endpoint = DefaultEndpoint }
	if cfg.Currency == "" { cfg.Currency = "usd" }
	rc.SetBaseURL(strings.TrimRight(cfg.Endpoint, "/"))
	rc.SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		rc.SetHeader("x-cg-demo-api-key", cfg.APIKey)
	}
	return &Provider{cfg: cfg, client: rc, symbols: m, now: time.Now}
}

func (p *Provider) Name() string { return p.cfg.Name }

// SpotPrice returns the current price of a CoinGecko id (a known ticker such
// as "BTC-USD" is accepted too). The PricePoint is dated today since the
// endpoint carries no trade date.
func (p *Provider) SpotPrice(ctx context.Context, id string) (provider.PricePoint, error) {
	id = strings.ToLower(p.symbols.Resolve(id))
	if id == "" {
		return provider.PricePoint{}, provider.ErrNoData
	}

	// Response shape: {"bitcoin": {"usd": 97000}}
	var body map[string]map[string]float64
	res, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":           id,
			"vs_currencies": p.cfg.Currency,
		}).
		SetResult(&body).
		Get("/simple/price")
	if err != nil {
		return provider.PricePoint{}, &provider.Error{Provider: p.cfg.Name, Op: "simple/price", Err: err}
	}
	if res.IsError() {
		return provider.PricePoint{}, provider.Errorf(p.cfg.Name, "simple/price", "status %d: %s", res.StatusCode(), truncate(res.String(), 256))
	}

	quotes, ok := body[id]
	if !ok {
		return provider.PricePoint{}, fmt.Errorf("%s: %w for %q", p.cfg.Name, provider.ErrNoData, id)
	}
	price, ok := quotes[p.cfg.Currency]
	if !ok {
		return provider.PricePoint{}, fmt.Errorf("%s: %w: no %s price for %q", p.cfg.Name, provider.ErrNoData, p.cfg.Currency, id)
	}

	return provider.PricePoint{
		Symbol:    p.symbols.TickerFor(id),
		AssetType: provider.AssetCrypto,
		Close:     price,
		Date:      p.now().UTC().Format(time.DateOnly),
		Source:    p.cfg.Name,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
