package candle

import "math"

// Candle is the canonical OHLCV bar emitted by every intraday path.
type Candle struct {
	TS     int64   `json:"ts"` // epoch milliseconds
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Raw is a provider bar before normalization. Timestamp may be epoch
// seconds or epoch milliseconds.
type Raw struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// msThreshold separates second and millisecond epochs; 1e12 ms is 2001-09-09.
const msThreshold = 1_000_000_000_000

// EpochMillis returns v as epoch milliseconds.
func EpochMillis(v int64) int64 {
	if v <= 0 {
		return 0
	}
	if v > msThreshold {
		return v
	}
	return v * 1000
}

// Normalize converts one provider bar to a Candle.
func Normalize(r Raw) Candle {
	return Candle{
		TS:     EpochMillis(r.Timestamp),
		Open:   r.Open,
		High:   r.High,
		Low:    r.Low,
		Close:  r.Close,
		Volume: int64(math.Round(r.Volume)),
	}
}

// NormalizeAll converts bars in input order. The result is never nil.
func NormalizeAll(rs []Raw) []Candle {
	out := make([]Candle, 0, len(rs))
	for _, r := range rs {
		out = append(out, Normalize(r))
	}
	return out
}

// Tail keeps the n most recent candles. n <= 0 keeps everything.
func Tail(cs []Candle, n int) []Candle {
	if n <= 0 || len(cs) <= n {
		return cs
	}
	return cs[len(cs)-n:]
}
