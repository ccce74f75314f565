// Package classify provides heuristic topical tagging for events and series.
//
// Classification is keyword matching, not a guarantee: occasional false
// positives and negatives on free-form titles are expected and tolerated.
package classify

import (
	"regexp"
	"strings"

	"github.com/rickgao/market-pulse/internal/model"
)

// cryptoPattern is the fixed vocabulary for the crypto subset. Word-bounded
// so tickers like "SOLDIER" do not match "sol".
var cryptoPattern = regexp.MustCompile(`(?i)\b(bitcoin|btc|ethereum|eth|solana|sol|dogecoin|doge|xrp|ripple|cardano|ada|litecoin|crypto|cryptocurrency|stablecoin|blockchain|defi|nft|binance|coinbase|tether|memecoin|altcoin|satoshi)\b`)

// Crypto matches free text against the crypto vocabulary.
func Crypto(text string) bool {
	return cryptoPattern.MatchString(text)
}

// CryptoMarket matches a raw quote by its combined title and ticker text.
// Used on the fallback path when the series prefilter comes up short.
func CryptoMarket(q model.RawMarket) bool {
	return Crypto(q.Title + " " + q.Ticker)
}

// CryptoEvent matches an aggregated event by title and ticker.
func CryptoEvent(e model.Event) bool {
	return Crypto(e.Title + " " + e.Ticker)
}

// CryptoSeries matches a series by its title, category, and tags. This
// drives the prefilter that decides which series are worth paging through.
func CryptoSeries(s model.SeriesMeta) bool {
	parts := []string{s.Title, s.Category}
	parts = append(parts, s.Tags...)
	return Crypto(strings.Join(parts, " "))
}
