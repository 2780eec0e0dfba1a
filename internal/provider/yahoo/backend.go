package yahoo

import (
	"context"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/equity"
)

// Backend is the slice of Yahoo Finance the client reads.
//
//go:generate mockgen -package=yahoo -destination=mock_backend_test.go -source=backend.go Backend
type Backend interface {
	Chart(ctx context.Context, p *chart.Params) ([]*finance.ChartBar, error)
	Equity(ctx context.Context, symbol string) (*finance.Equity, error)
}

// FinanceBackend calls Yahoo through github.com/piquette/finance-go. The
// library takes no context per call; ctx is only checked up front.
type FinanceBackend struct{}

func (FinanceBackend) Chart(ctx context.Context, p *chart.Params) ([]*finance.ChartBar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iter := chart.Get(p)
	var bars []*finance.ChartBar
	for iter.Next() {
		bars = append(bars, iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return bars, nil
}

func (FinanceBackend) Equity(ctx context.Context, symbol string) (*finance.Equity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return equity.Get(symbol)
}
