package hydrate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rickgao/market-pulse/internal/model"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sample() []model.Event {
	return []model.Event{
		{
			Ticker: "E1",
			Title:  "First",
			Volume: 100,
			Outcomes: []model.Outcome{
				{Name: "Yes", Ticker: "E1-YES", Volume: 60},
				{Name: "No", Ticker: "E1-NO", Volume: 40},
			},
		},
		{
			Ticker:   "E2",
			Title:    "Second",
			Volume:   50,
			ImageURL: "https://img.example.com/old.png",
			Outcomes: []model.Outcome{
				{Name: "Yes", Ticker: "E2-YES", Volume: 50},
			},
		},
	}
}

// TestHydrateMerge tests event and outcome merging by ticker.
func TestHydrateMerge(t *testing.T) {
	lookup := func(ctx context.Context, ticker string) (model.EventMetadata, error) {
		switch ticker {
		case "E1":
			return model.EventMetadata{
				ImageURL: "https://img.example.com/e1.png",
				Outcomes: map[string]model.OutcomeMetadata{
					"E1-YES": {ImageURL: "https://img.example.com/yes.png", ColorCode: "#00ff00"},
				},
			}, nil
		case "E2":
			// No image in metadata: the existing value must survive.
			return model.EventMetadata{}, nil
		}
		return model.EventMetadata{}, errors.New("unknown event")
	}

	h := New(DefaultConfig(), lookup, discard())
	got := h.Hydrate(context.Background(), sample())

	if got[0].ImageURL != "https://img.example.com/e1.png" {
		t.Errorf("E1 ImageURL = %q", got[0].ImageURL)
	}
	if got[0].Outcomes[0].ImageURL != "https://img.example.com/yes.png" {
		t.Errorf("E1-YES ImageURL = %q", got[0].Outcomes[0].ImageURL)
	}
	if got[0].Outcomes[0].ColorCode != "#00ff00" {
		t.Errorf("E1-YES ColorCode = %q", got[0].Outcomes[0].ColorCode)
	}
	// Outcome with no metadata match keeps prior values.
	if got[0].Outcomes[1].ImageURL != "" || got[0].Outcomes[1].ColorCode != "" {
		t.Errorf("E1-NO should be untouched, got %+v", got[0].Outcomes[1])
	}
	// Event-level fallback to existing image.
	if got[1].ImageURL != "https://img.example.com/old.png" {
		t.Errorf("E2 ImageURL = %q, want prior value retained", got[1].ImageURL)
	}
}

// TestHydratePartialFailure checks that one failing lookup does not remove
// or corrupt the other events.
func TestHydratePartialFailure(t *testing.T) {
	lookup := func(ctx context.Context, ticker string) (model.EventMetadata, error) {
		if ticker == "E1" {
			return model.EventMetadata{}, errors.New("boom")
		}
		return model.EventMetadata{ImageURL: "https://img.example.com/e2.png"}, nil
	}

	in := sample()
	h := New(DefaultConfig(), lookup, discard())
	got := h.Hydrate(context.Background(), in)

	if len(got) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(got))
	}
	// Failed event survives with its original content.
	if !reflect.DeepEqual(got[0], in[0]) {
		t.Errorf("E1 changed on failed hydration: %+v", got[0])
	}
	if got[1].ImageURL != "https://img.example.com/e2.png" {
		t.Errorf("E2 ImageURL = %q, want hydrated value", got[1].ImageURL)
	}
}

// TestHydrateAllFail checks graceful degradation to missing artwork.
func TestHydrateAllFail(t *testing.T) {
	lookup := func(ctx context.Context, ticker string) (model.EventMetadata, error) {
		return model.EventMetadata{}, errors.New("metadata service down")
	}

	in := sample()
	h := New(DefaultConfig(), lookup, discard())
	got := h.Hydrate(context.Background(), in)

	if !reflect.DeepEqual(got, in) {
		t.Errorf("events should be returned unchanged, got %+v", got)
	}
}

// TestHydrateBoundedConcurrency checks the semaphore limit is honored.
func TestHydrateBoundedConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int64
	lookup := func(ctx context.Context, ticker string) (model.EventMetadata, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return model.EventMetadata{}, nil
	}

	events := make([]model.Event, 20)
	for i := range events {
		events[i] = model.Event{Ticker: string(rune('A' + i))}
	}

	h := New(Config{Concurrency: 3, Timeout: time.Second}, lookup, discard())
	h.Hydrate(context.Background(), events)

	if peak.Load() > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak.Load())
	}
}

// TestHydrateEmpty checks the no-op path.
func TestHydrateEmpty(t *testing.T) {
	h := New(DefaultConfig(), func(ctx context.Context, ticker string) (model.EventMetadata, error) {
		t.Error("lookup should not be called for empty input")
		return model.EventMetadata{}, nil
	}, discard())

	if got := h.Hydrate(context.Background(), nil); len(got) != 0 {
		t.Errorf("Hydrate(nil) = %+v, want empty", got)
	}
}
