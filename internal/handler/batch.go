package handler

import (
	"context"

	"github.com/rs/zerolog"

	"marketfetch/internal/provider"
)

// Batch looks up last closes for equities and spot prices for cryptos.
type Batch struct {
	Equities provider.EquityProvider
	Cryptos  provider.CryptoProvider
	Log      zerolog.Logger
}

// Run returns equities first, then cryptos, each in input order. Failed
// lookups are logged and omitted. The result is never nil.
func (h *Batch) Run(ctx context.Context, equities, cryptos []string) []provider.PricePoint {
	out := make([]provider.PricePoint, 0, len(equities)+len(cryptos))
	for _, sym := range equities {
		pp, err := h.Equities.LatestClose(ctx, sym)
		if err != nil {
			h.Log.Warn().Err(err).Str("symbol", sym).Str("asset", string(provider.AssetEquity)).Msg("equity lookup failed")
			continue
		}
		out = append(out, pp)
	}
	for _, id := range cryptos {
		pp, err := h.Cryptos.SpotPrice(ctx, id)
		if err != nil {
			h.Log.Warn().Err(err).Str("symbol", id).Str("asset", string(provider.AssetCrypto)).Msg("crypto lookup failed")
			continue
		}
		out = append(out, pp)
	}
	return out
}
