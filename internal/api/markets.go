package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rickgao/market-pulse/internal/model"
)

// GetMarkets fetches a page of markets.
func (c *Client) GetMarkets(ctx context.Context, opts GetMarketsOptions) (*MarketsResponse, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	if opts.SeriesTicker != "" {
		query.Set("series_ticker", opts.SeriesTicker)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}

	var resp MarketsResponse
	if err := c.get(ctx, "/markets", query, &resp); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}

	return &resp, nil
}

// GetAllMarkets fetches markets by paginating through results, stopping when
// the provider stops returning a cursor or after maxPages pages. The page
// bound is a hard limit: it protects against a provider that returns a
// cursor on every page. Any page failure aborts the whole fetch and the
// partial accumulation is discarded.
func (c *Client) GetAllMarkets(ctx context.Context, opts GetMarketsOptions, maxPages int) ([]model.RawMarket, error) {
	var all []model.RawMarket

	for page := 0; page < maxPages; page++ {
		resp, err := c.GetMarkets(ctx, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Markets...)

		if resp.Cursor == "" {
			return all, nil
		}
		opts.Cursor = resp.Cursor
	}

	c.logger.Debug("market pagination stopped at page bound",
		"max_pages", maxPages,
		"records", len(all),
	)
	return all, nil
}
