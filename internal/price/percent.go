// Package price normalizes the upstream provider's heterogeneous price
// encodings into a single comparable 0-100 integer percent.
package price

import (
	"math"

	"github.com/rickgao/market-pulse/internal/model"
)

// ToPercent converts a raw quote's price fields to an integer percent in
// [0,100]. The boolean reports whether any usable field was present; a
// missing price is never defaulted to 0 because "unknown" must remain
// distinguishable from "trading at zero" in ranking and display.
//
// Precedence, matching the encodings observed from the provider:
//  1. last_price (already 0-100, or fractional 0-1)
//  2. yes_bid/yes_ask midpoint (single side used directly)
//  3. no_bid/no_ask inverted (100 - midpoint)
func ToPercent(q model.RawMarket) (int, bool) {
	if q.LastPrice != nil {
		return clamp(scale(*q.LastPrice)), true
	}

	if q.YesBid != nil || q.YesAsk != nil {
		return clamp(pair(q.YesBid, q.YesAsk)), true
	}

	if q.NoBid != nil || q.NoAsk != nil {
		return clamp(100 - pair(q.NoBid, q.NoAsk)), true
	}

	return 0, false
}

// scale maps fractional probabilities onto the percent scale. Values at or
// below 1 are treated as 0-1 probabilities, anything larger as percent.
func scale(v float64) float64 {
	if v <= 1 {
		return v * 100
	}
	return v
}

// pair returns the midpoint when both sides are quoted, or the quoted side
// alone when only one is present. At least one of a, b must be non-nil.
func pair(a, b *float64) float64 {
	switch {
	case a != nil && b != nil:
		return (scale(*a) + scale(*b)) / 2
	case a != nil:
		return scale(*a)
	default:
		return scale(*b)
	}
}

func clamp(v float64) int {
	p := int(math.Round(v))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
