package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *ServiceConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}

	if c.Fetch.PageSize < 1 {
		return errors.New("fetch.page_size must be >= 1")
	}
	if c.Fetch.MaxPages < 1 {
		return errors.New("fetch.max_pages must be >= 1")
	}

	if c.Ranking.TopMarkets < 1 {
		return errors.New("ranking.top_markets must be >= 1")
	}
	if c.Ranking.TopCrypto < 1 {
		return errors.New("ranking.top_crypto must be >= 1")
	}
	if c.Ranking.HydrateConcurrency < 1 {
		return errors.New("ranking.hydrate_concurrency must be >= 1")
	}

	if c.Cache.HeroTTL <= 0 {
		return errors.New("cache.hero_ttl must be positive")
	}
	if c.Cache.CryptoTTL <= 0 {
		return errors.New("cache.crypto_ttl must be positive")
	}
	if c.Cache.SeriesTTL <= 0 {
		return errors.New("cache.series_ttl must be positive")
	}
	if c.Cache.MetadataTTL <= 0 {
		return errors.New("cache.metadata_ttl must be positive")
	}

	return nil
}
