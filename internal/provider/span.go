package provider

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit is the unit part of an interval or lookback such as "5m" or "1mo".
type Unit string

const (
	Minute Unit = "m"
	Hour   Unit = "h"
	Day    Unit = "d"
	Week   Unit = "wk"
	Month  Unit = "mo"
	Year   Unit = "y"
)

// Span is a count of units, e.g. {5, Minute} for "5m".
type Span struct {
	N    int
	Unit Unit
}

// units is ordered so that "mo" is tried before "m".
var units = []Unit{Month, Week, Minute, Hour, Day, Year}

// ParseSpan parses the Yahoo-style notation used by requests.
func ParseSpan(s string) (Span, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, u := range units {
		num, ok := strings.CutSuffix(s, string(u))
		if !ok {
			continue
		}
		n, err := strconv.Atoi(num)
		if err != nil || n <= 0 {
			return Span{}, fmt.Errorf("invalid span %q", s)
		}
		return Span{N: n, Unit: u}, nil
	}
	return Span{}, fmt.Errorf("invalid span %q", s)
}

func (s Span) String() string { return strconv.Itoa(s.N) + string(s.Unit) }

// Duration approximates months as 30 days and years as 365 days.
func (s Span) Duration() time.Duration {
	n := time.Duration(s.N)
	switch s.Unit {
	case Minute:
		return n * time.Minute
	case Hour:
		return n * time.Hour
	case Day:
		return n * 24 * time.Hour
	case Week:
		return n * 7 * 24 * time.Hour
	case Month:
		return n * 30 * 24 * time.Hour
	case Year:
		return n * 365 * 24 * time.Hour
	}
	return 0
}
