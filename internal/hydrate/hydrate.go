// Package hydrate merges per-event image/branding metadata into aggregated
// events.
//
// Lookups fan out concurrently with bounded parallelism and settle
// independently: a failed or timed-out lookup leaves that event without
// artwork, it never removes the event or aborts the batch.
package hydrate

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickgao/market-pulse/internal/model"
)

// Lookup resolves the metadata record for one event ticker.
type Lookup func(ctx context.Context, eventTicker string) (model.EventMetadata, error)

// Config holds hydrator settings.
type Config struct {
	Concurrency int           // max in-flight lookups (default: 8)
	Timeout     time.Duration // per-lookup timeout (default: 5s)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 8,
		Timeout:     5 * time.Second,
	}
}

// Hydrator enriches events through a metadata Lookup.
type Hydrator struct {
	cfg    Config
	lookup Lookup
	logger *slog.Logger
}

// New creates a Hydrator.
func New(cfg Config, lookup Lookup, logger *slog.Logger) *Hydrator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hydrator{cfg: cfg, lookup: lookup, logger: logger}
}

// Hydrate returns a copy of events with metadata merged in. Results are
// merged back by index under a per-slot assignment, so completion order
// does not affect the output. Failed lookups are logged and skipped.
func (h *Hydrator) Hydrate(ctx context.Context, events []model.Event) []model.Event {
	if len(events) == 0 {
		return events
	}

	start := time.Now()
	out := make([]model.Event, len(events))
	copy(out, events)

	sem := make(chan struct{}, h.cfg.Concurrency)
	var wg sync.WaitGroup
	var hydrated, failed atomic.Int64

	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			lookupCtx, cancel := context.WithTimeout(ctx, h.cfg.Timeout)
			defer cancel()

			meta, err := h.lookup(lookupCtx, out[i].Ticker)
			if err != nil {
				h.logger.Warn("metadata lookup failed",
					"event", out[i].Ticker,
					"err", err,
				)
				failed.Add(1)
				return
			}

			out[i] = merge(out[i], meta)
			hydrated.Add(1)
		}(i)
	}

	wg.Wait()

	h.logger.Debug("hydration complete",
		"events", len(out),
		"hydrated", hydrated.Load(),
		"failed", failed.Load(),
		"duration", time.Since(start),
	)

	return out
}

// merge applies one metadata record to one event. The event image only
// changes when the metadata provides one, and outcomes with no matching
// entry keep their prior values.
func merge(e model.Event, meta model.EventMetadata) model.Event {
	if meta.ImageURL != "" {
		e.ImageURL = meta.ImageURL
	}

	if len(meta.Outcomes) == 0 {
		return e
	}

	outcomes := make([]model.Outcome, len(e.Outcomes))
	copy(outcomes, e.Outcomes)
	for i, o := range outcomes {
		om, ok := meta.Outcomes[o.Ticker]
		if !ok {
			continue
		}
		if om.ImageURL != "" {
			outcomes[i].ImageURL = om.ImageURL
		}
		if om.ColorCode != "" {
			outcomes[i].ColorCode = om.ColorCode
		}
	}
	e.Outcomes = outcomes
	return e
}
