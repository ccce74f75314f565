package model

// -----------------------------------------------------------------------------
// Upstream Types
// -----------------------------------------------------------------------------

// RawMarket is a single per-contract quote as returned by the upstream
// listing endpoint. It only lives for the duration of one aggregation pass.
//
// Price fields are pointers because absence is meaningful: a market with no
// last trade must not be confused with one trading at zero.
type RawMarket struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	YesSubTitle string `json:"yes_sub_title"`
	Category    string `json:"category"`

	// Prices, either cents (0-100) or fractional (0-1) depending on endpoint vintage.
	LastPrice *float64 `json:"last_price"`
	YesBid    *float64 `json:"yes_bid"`
	YesAsk    *float64 `json:"yes_ask"`
	NoBid     *float64 `json:"no_bid"`
	NoAsk     *float64 `json:"no_ask"`

	Volume int64 `json:"volume"`
}

// SeriesMeta identifies a series well enough to classify it. It is used to
// pre-select which series to page through and is not part of the output payload.
type SeriesMeta struct {
	Ticker   string   `json:"ticker"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// -----------------------------------------------------------------------------
// Aggregated Types
// -----------------------------------------------------------------------------

// Outcome is one priced, tradeable contract within an event.
type Outcome struct {
	Name      string `json:"name"`
	Price     *int   `json:"price,omitempty"` // integer percent in [0,100]; nil = unknown
	Volume    int64  `json:"volume"`
	Ticker    string `json:"ticker"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ColorCode string `json:"colorCode,omitempty"`
}

// Event is an aggregated market question composed of mutually exclusive outcomes.
//
// Invariants:
//   - Outcomes are sorted by descending price, nil-price outcomes last, and
//     capped at three entries.
//   - Volume is the sum over all constituent raw records, including outcomes
//     truncated from the displayed top three.
type Event struct {
	Ticker   string    `json:"ticker"`
	Title    string    `json:"title"`
	Volume   int64     `json:"volume"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Outcomes []Outcome `json:"outcomes"`
}

// -----------------------------------------------------------------------------
// Enrichment Types
// -----------------------------------------------------------------------------

// OutcomeMetadata is per-contract branding from the metadata endpoint.
type OutcomeMetadata struct {
	ImageURL  string
	ColorCode string
}

// EventMetadata is the secondary enrichment record for one event,
// keyed by event ticker and cached independently of the event itself.
type EventMetadata struct {
	ImageURL string
	Outcomes map[string]OutcomeMetadata // keyed by outcome (market) ticker
}

// -----------------------------------------------------------------------------
// Output Payload
// -----------------------------------------------------------------------------

// RankingPayload is the body served by the read endpoint. Consumers treat a
// missing or empty slice as "no data"; there is no partial-success shape.
type RankingPayload struct {
	Markets []Event `json:"markets"`
	Crypto  []Event `json:"crypto"`
}

// PricePtr is a convenience for constructing optional prices in literals.
func PricePtr(p int) *int { return &p }
