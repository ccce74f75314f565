package api

import (
	"context"
	"fmt"

	"github.com/rickgao/market-pulse/internal/model"
)

// GetEventMetadata fetches the image/branding record for a single event.
func (c *Client) GetEventMetadata(ctx context.Context, eventTicker string) (model.EventMetadata, error) {
	var resp EventMetadataResponse
	if err := c.get(ctx, "/events/"+eventTicker+"/metadata", nil, &resp); err != nil {
		return model.EventMetadata{}, fmt.Errorf("get event metadata %s: %w", eventTicker, err)
	}
	return resp.ToModel(), nil
}
