package aggregate

import (
	"github.com/shopspring/decimal"

	"marketfetch/internal/candle"
)

// Change is the move between the last two closes of a series.
type Change struct {
	Abs     float64
	Percent float64
}

// Point is one entry of a mini chart.
type Point struct {
	TS    int64   `json:"ts"`
	Close float64 `json:"close"`
}

var hundred = decimal.NewFromInt(100)

// DayOverDay compares the last close with the one before it.
// Rules:
// - fewer than two candles: zero change
// - previous close <= 0: Abs is computed, Percent stays 0
func DayOverDay(cs []candle.Candle) Change {
	if len(cs) < 2 {
		return Change{}
	}
	last := decimal.NewFromFloat(cs[len(cs)-1].Close)
	prev := decimal.NewFromFloat(cs[len(cs)-2].Close)

	diff := last.Sub(prev)
	out := Change{Abs: diff.InexactFloat64()}
	if prev.IsPositive() {
		out.Percent = diff.Div(prev).Mul(hundred).InexactFloat64()
	}
	return out
}

// MiniChart projects candles to (ts, close) pairs in input order.
func MiniChart(cs []candle.Candle) []Point {
	out := make([]Point, 0, len(cs))
	for _, c := range cs {
		out = append(out, Point{TS: c.TS, Close: c.Close})
	}
	return out
}
