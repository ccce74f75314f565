package config

import "time"

// ServiceConfig is the root configuration for a ranker instance.
type ServiceConfig struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Ranking RankingConfig `yaml:"ranking"`
	Cache   CacheConfig   `yaml:"cache"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// APIConfig holds upstream provider settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// FetchConfig holds pagination settings.
type FetchConfig struct {
	PageSize int `yaml:"page_size"`
	MaxPages int `yaml:"max_pages"` // hard bound per listing fetch
}

// RankingConfig holds aggregation and classification settings.
type RankingConfig struct {
	TopMarkets         int      `yaml:"top_markets"`
	TopCrypto          int      `yaml:"top_crypto"`
	ExcludeCategory    string   `yaml:"exclude_category"`
	ExcludeSubstrings  []string `yaml:"exclude_substrings"`
	MinCryptoRecords   int      `yaml:"min_crypto_records"` // below this, fall back to the general listing
	HydrateConcurrency int      `yaml:"hydrate_concurrency"`
}

// CacheConfig holds the per-class TTLs.
type CacheConfig struct {
	HeroTTL     time.Duration `yaml:"hero_ttl"`
	CryptoTTL   time.Duration `yaml:"crypto_ttl"`
	SeriesTTL   time.Duration `yaml:"series_ttl"`
	MetadataTTL time.Duration `yaml:"metadata_ttl"`
}
