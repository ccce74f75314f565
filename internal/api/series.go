package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rickgao/market-pulse/internal/model"
)

// GetSeriesList fetches a page of the series catalog.
func (c *Client) GetSeriesList(ctx context.Context, opts GetSeriesOptions) (*SeriesListResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}

	var resp SeriesListResponse
	if err := c.get(ctx, "/series", query, &resp); err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}

	return &resp, nil
}

// GetAllSeries fetches the series catalog by paginating through results,
// bounded by maxPages exactly like GetAllMarkets.
func (c *Client) GetAllSeries(ctx context.Context, opts GetSeriesOptions, maxPages int) ([]model.SeriesMeta, error) {
	var all []model.SeriesMeta

	for page := 0; page < maxPages; page++ {
		resp, err := c.GetSeriesList(ctx, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Series...)

		if resp.Cursor == "" {
			return all, nil
		}
		opts.Cursor = resp.Cursor
	}

	return all, nil
}
