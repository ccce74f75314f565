package api

import "github.com/rickgao/market-pulse/internal/model"

// MarketsResponse from GET /markets
type MarketsResponse struct {
	Markets []model.RawMarket `json:"markets"`
	Cursor  string            `json:"cursor"`
}

// SeriesListResponse from GET /series
type SeriesListResponse struct {
	Series []model.SeriesMeta `json:"series"`
	Cursor string             `json:"cursor"`
}

// EventMetadataResponse from GET /events/{event_ticker}/metadata
type EventMetadataResponse struct {
	ImageURL        string               `json:"image_url"`
	MarketsMetadata []MarketMetadataItem `json:"markets_metadata"`
}

// MarketMetadataItem is the per-contract branding entry within an
// EventMetadataResponse.
type MarketMetadataItem struct {
	MarketTicker string `json:"market_ticker"`
	ImageURL     string `json:"image_url"`
	ColorCode    string `json:"color_code"`
}

// ToModel converts the wire metadata shape to the domain record.
func (r *EventMetadataResponse) ToModel() model.EventMetadata {
	meta := model.EventMetadata{
		ImageURL: r.ImageURL,
		Outcomes: make(map[string]model.OutcomeMetadata, len(r.MarketsMetadata)),
	}
	for _, m := range r.MarketsMetadata {
		meta.Outcomes[m.MarketTicker] = model.OutcomeMetadata{
			ImageURL:  m.ImageURL,
			ColorCode: m.ColorCode,
		}
	}
	return meta
}

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	SeriesTicker string
	Status       string
}

// GetSeriesOptions configures a GetSeriesList request.
type GetSeriesOptions struct {
	Limit    int
	Cursor   string
	Category string
}
