package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultPort         = 8080
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second

	DefaultBaseURL    = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultAPITimeout = 15 * time.Second

	DefaultPageSize = 1000
	DefaultMaxPages = 10

	DefaultTopMarkets         = 10
	DefaultTopCrypto          = 3
	DefaultExcludeCategory    = "Sports"
	DefaultMinCryptoRecords   = 5
	DefaultHydrateConcurrency = 8

	// Hero and crypto carry near-real-time prices; series identity is
	// near-static; branding changes rarely.
	DefaultHeroTTL     = time.Minute
	DefaultCryptoTTL   = time.Minute
	DefaultSeriesTTL   = 6 * time.Hour
	DefaultMetadataTTL = 30 * time.Minute
)

// DefaultExcludeSubstrings strips sports fixtures that slip past the
// category filter in the general feed.
var DefaultExcludeSubstrings = []string{"nfl", "nba", "mlb", "nhl", "ncaa"}

func (c *ServiceConfig) applyDefaults() {
	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}

	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Fetch defaults
	if c.Fetch.PageSize == 0 {
		c.Fetch.PageSize = DefaultPageSize
	}
	if c.Fetch.MaxPages == 0 {
		c.Fetch.MaxPages = DefaultMaxPages
	}

	// Ranking defaults
	if c.Ranking.TopMarkets == 0 {
		c.Ranking.TopMarkets = DefaultTopMarkets
	}
	if c.Ranking.TopCrypto == 0 {
		c.Ranking.TopCrypto = DefaultTopCrypto
	}
	if c.Ranking.ExcludeCategory == "" {
		c.Ranking.ExcludeCategory = DefaultExcludeCategory
	}
	if c.Ranking.ExcludeSubstrings == nil {
		c.Ranking.ExcludeSubstrings = DefaultExcludeSubstrings
	}
	if c.Ranking.MinCryptoRecords == 0 {
		c.Ranking.MinCryptoRecords = DefaultMinCryptoRecords
	}
	if c.Ranking.HydrateConcurrency == 0 {
		c.Ranking.HydrateConcurrency = DefaultHydrateConcurrency
	}

	// Cache defaults
	if c.Cache.HeroTTL == 0 {
		c.Cache.HeroTTL = DefaultHeroTTL
	}
	if c.Cache.CryptoTTL == 0 {
		c.Cache.CryptoTTL = DefaultCryptoTTL
	}
	if c.Cache.SeriesTTL == 0 {
		c.Cache.SeriesTTL = DefaultSeriesTTL
	}
	if c.Cache.MetadataTTL == 0 {
		c.Cache.MetadataTTL = DefaultMetadataTTL
	}
}
