// Package ranking orchestrates the refresh pipeline behind the read
// endpoint: paginated fetch, aggregation, classification, hydration, and
// the per-class TTL caches.
package ranking

import (
	"context"
	"log/slog"
	"time"

	"github.com/rickgao/market-pulse/internal/agg"
	"github.com/rickgao/market-pulse/internal/api"
	"github.com/rickgao/market-pulse/internal/cache"
	"github.com/rickgao/market-pulse/internal/classify"
	"github.com/rickgao/market-pulse/internal/config"
	"github.com/rickgao/market-pulse/internal/hydrate"
	"github.com/rickgao/market-pulse/internal/model"
)

// Service owns the four cache classes and the refresh pipelines that fill
// them. It is constructed once at process start; all access goes through
// its methods, and cache entries are replaced wholesale on refresh.
type Service struct {
	cfg      *config.ServiceConfig
	client   *api.Client
	hydrator *hydrate.Hydrator
	logger   *slog.Logger

	hero   *cache.Cache[[]model.Event]
	crypto *cache.Cache[[]model.Event]
	series *cache.Cache[[]model.SeriesMeta]
	meta   *cache.Keyed[model.EventMetadata]
}

// New creates the ranking service.
func New(cfg *config.ServiceConfig, client *api.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		cfg:    cfg,
		client: client,
		logger: logger,
		hero:   cache.New[[]model.Event](cfg.Cache.HeroTTL),
		crypto: cache.New[[]model.Event](cfg.Cache.CryptoTTL),
		series: cache.New[[]model.SeriesMeta](cfg.Cache.SeriesTTL),
		meta:   cache.NewKeyed[model.EventMetadata](cfg.Cache.MetadataTTL),
	}

	s.hydrator = hydrate.New(
		hydrate.Config{Concurrency: cfg.Ranking.HydrateConcurrency},
		s.eventMetadata,
		logger,
	)

	return s
}

// Payload assembles the full read-endpoint body. Either subset failing
// fails the whole payload: the endpoint never serves a partially
// aggregated result labeled as complete.
func (s *Service) Payload(ctx context.Context) (model.RankingPayload, error) {
	hero, err := s.hero.Get(ctx, s.refreshHero)
	if err != nil {
		return model.RankingPayload{}, err
	}

	crypto, err := s.crypto.Get(ctx, s.refreshCrypto)
	if err != nil {
		return model.RankingPayload{}, err
	}

	return model.RankingPayload{Markets: hero, Crypto: crypto}, nil
}

// CacheAges reports per-class cache ages for the health endpoint.
func (s *Service) CacheAges() map[string]string {
	ages := make(map[string]string, 3)
	for name, c := range map[string]interface{ Age() (time.Duration, bool) }{
		"hero":   s.hero,
		"crypto": s.crypto,
		"series": s.series,
	} {
		if age, ok := c.Age(); ok {
			ages[name] = age.Round(time.Second).String()
		} else {
			ages[name] = "empty"
		}
	}
	return ages
}

// refreshHero rebuilds the general feed: full open-market listing,
// aggregation with the sports exclusions, top N by volume, then artwork.
func (s *Service) refreshHero(ctx context.Context) ([]model.Event, error) {
	start := time.Now()

	records, err := s.client.GetAllMarkets(ctx, api.GetMarketsOptions{
		Limit:  s.cfg.Fetch.PageSize,
		Status: "open",
	}, s.cfg.Fetch.MaxPages)
	if err != nil {
		return nil, err
	}

	events := agg.Aggregate(records, agg.Options{
		ExcludeCategory:   s.cfg.Ranking.ExcludeCategory,
		ExcludeSubstrings: s.cfg.Ranking.ExcludeSubstrings,
	})
	events = agg.Top(events, s.cfg.Ranking.TopMarkets)
	events = s.hydrator.Hydrate(ctx, events)

	s.logger.Info("hero feed refreshed",
		"records", len(records),
		"events", len(events),
		"duration", time.Since(start),
	)

	return events, nil
}

// refreshCrypto rebuilds the classified subset.
func (s *Service) refreshCrypto(ctx context.Context) ([]model.Event, error) {
	start := time.Now()

	records, err := s.cryptoRecords(ctx)
	if err != nil {
		return nil, err
	}

	events := agg.Aggregate(records, agg.Options{})

	// The series prefilter admits whole series, so re-check each aggregated
	// event before ranking.
	kept := events[:0]
	for _, e := range events {
		if classify.CryptoEvent(e) {
			kept = append(kept, e)
		}
	}
	events = agg.Top(kept, s.cfg.Ranking.TopCrypto)
	events = s.hydrator.Hydrate(ctx, events)

	s.logger.Info("crypto feed refreshed",
		"records", len(records),
		"events", len(events),
		"duration", time.Since(start),
	)

	return events, nil
}

// cryptoRecords gathers the raw quotes for the crypto subset. The series
// prefilter keeps paging cheap; it is an optimization, not a correctness
// gate, so when it yields too few records the general listing is scanned
// and classified record by record instead.
func (s *Service) cryptoRecords(ctx context.Context) ([]model.RawMarket, error) {
	catalog, err := s.series.Get(ctx, s.refreshSeries)
	if err != nil {
		return nil, err
	}

	var records []model.RawMarket
	for _, sm := range catalog {
		if !classify.CryptoSeries(sm) {
			continue
		}
		page, err := s.client.GetAllMarkets(ctx, api.GetMarketsOptions{
			Limit:        s.cfg.Fetch.PageSize,
			SeriesTicker: sm.Ticker,
			Status:       "open",
		}, s.cfg.Fetch.MaxPages)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
	}

	if len(records) >= s.cfg.Ranking.MinCryptoRecords {
		return records, nil
	}

	s.logger.Debug("series prefilter came up short, scanning general listing",
		"prefiltered", len(records),
		"min", s.cfg.Ranking.MinCryptoRecords,
	)

	all, err := s.client.GetAllMarkets(ctx, api.GetMarketsOptions{
		Limit:  s.cfg.Fetch.PageSize,
		Status: "open",
	}, s.cfg.Fetch.MaxPages)
	if err != nil {
		return nil, err
	}

	records = records[:0]
	for _, rec := range all {
		if classify.CryptoMarket(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// refreshSeries reloads the series catalog.
func (s *Service) refreshSeries(ctx context.Context) ([]model.SeriesMeta, error) {
	catalog, err := s.client.GetAllSeries(ctx, api.GetSeriesOptions{
		Limit: s.cfg.Fetch.PageSize,
	}, s.cfg.Fetch.MaxPages)
	if err != nil {
		return nil, err
	}

	s.logger.Info("series catalog refreshed", "series", len(catalog))
	return catalog, nil
}

// eventMetadata is the hydrator's lookup, routed through the per-ticker
// metadata cache.
func (s *Service) eventMetadata(ctx context.Context, eventTicker string) (model.EventMetadata, error) {
	return s.meta.Get(ctx, eventTicker, func(ctx context.Context) (model.EventMetadata, error) {
		return s.client.GetEventMetadata(ctx, eventTicker)
	})
}
