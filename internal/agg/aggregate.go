// Package agg groups raw per-contract quotes into display events.
package agg

import (
	"sort"
	"strings"

	"github.com/rickgao/market-pulse/internal/model"
	"github.com/rickgao/market-pulse/internal/price"
)

// MaxOutcomes is the number of outcomes retained per event after ranking.
const MaxOutcomes = 3

// Options controls record filtering before grouping.
type Options struct {
	// ExcludeCategory drops records whose category matches exactly.
	ExcludeCategory string
	// ExcludeSubstrings drops records whose title+ticker text contains any
	// token, case-insensitively. Used to strip sports fixtures from the
	// general feed.
	ExcludeSubstrings []string
}

// nameRules is the ordered fallback chain for deriving an outcome's display
// name. The order is the contract: subtitle, then the yes-side subtitle, then
// the literal "Yes" so a contract is never displayed nameless.
var nameRules = []func(model.RawMarket) string{
	func(q model.RawMarket) string { return q.Subtitle },
	func(q model.RawMarket) string { return q.YesSubTitle },
	func(model.RawMarket) string { return "Yes" },
}

// OutcomeName applies the name fallback chain to a raw quote.
func OutcomeName(q model.RawMarket) string {
	for _, rule := range nameRules {
		if name := rule(q); name != "" {
			return name
		}
	}
	return "Yes"
}

// Aggregate groups records by parent event ticker and builds ranked events.
//
// Records excluded by Options, and orphan records without an event ticker,
// are skipped record-locally; a malformed record never aborts the batch.
// Event volume sums every grouped record, including outcomes later truncated
// from the retained top three. Output ordering is deterministic: events by
// descending volume, ties by ticker.
func Aggregate(records []model.RawMarket, opts Options) []model.Event {
	byTicker := make(map[string]*model.Event)
	var order []string

	for _, rec := range records {
		if excluded(rec, opts) {
			continue
		}
		if rec.EventTicker == "" {
			// An event cannot be synthesized from an orphan record.
			continue
		}

		e, ok := byTicker[rec.EventTicker]
		if !ok {
			e = &model.Event{
				Ticker: rec.EventTicker,
				Title:  rec.Title,
			}
			byTicker[rec.EventTicker] = e
			order = append(order, rec.EventTicker)
		}

		e.Volume += rec.Volume

		out := model.Outcome{
			Name:   OutcomeName(rec),
			Volume: rec.Volume,
			Ticker: rec.Ticker,
		}
		if p, ok := price.ToPercent(rec); ok {
			out.Price = model.PricePtr(p)
		}
		e.Outcomes = append(e.Outcomes, out)
	}

	events := make([]model.Event, 0, len(order))
	for _, ticker := range order {
		e := byTicker[ticker]
		if len(e.Outcomes) == 0 {
			continue
		}
		sortOutcomes(e.Outcomes)
		if len(e.Outcomes) > MaxOutcomes {
			e.Outcomes = e.Outcomes[:MaxOutcomes]
		}
		events = append(events, *e)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Volume != events[j].Volume {
			return events[i].Volume > events[j].Volume
		}
		return events[i].Ticker < events[j].Ticker
	})

	return events
}

// Top returns at most n leading events.
func Top(events []model.Event, n int) []model.Event {
	if len(events) > n {
		return events[:n]
	}
	return events
}

// sortOutcomes orders outcomes by descending price with unpriced outcomes
// last; ties break by ticker so reruns on identical input are identical.
func sortOutcomes(outcomes []model.Outcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		pi, pj := outcomes[i].Price, outcomes[j].Price
		switch {
		case pi == nil && pj == nil:
			return outcomes[i].Ticker < outcomes[j].Ticker
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi > *pj
		default:
			return outcomes[i].Ticker < outcomes[j].Ticker
		}
	})
}

func excluded(rec model.RawMarket, opts Options) bool {
	if opts.ExcludeCategory != "" && rec.Category == opts.ExcludeCategory {
		return true
	}
	if len(opts.ExcludeSubstrings) > 0 {
		text := strings.ToLower(rec.Title + " " + rec.Ticker)
		for _, token := range opts.ExcludeSubstrings {
			if token != "" && strings.Contains(text, strings.ToLower(token)) {
				return true
			}
		}
	}
	return false
}
