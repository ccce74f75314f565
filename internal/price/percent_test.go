package price

import (
	"testing"

	"github.com/rickgao/market-pulse/internal/model"
)

func f(v float64) *float64 { return &v }

// TestToPercent tests each encoding and the precedence between them.
func TestToPercent(t *testing.T) {
	tests := []struct {
		name   string
		quote  model.RawMarket
		want   int
		wantOK bool
	}{
		{
			name:   "last price in cents",
			quote:  model.RawMarket{LastPrice: f(83)},
			want:   83,
			wantOK: true,
		},
		{
			name:   "last price fractional",
			quote:  model.RawMarket{LastPrice: f(0.5)},
			want:   50,
			wantOK: true,
		},
		{
			name:   "fractional rounds to nearest",
			quote:  model.RawMarket{LastPrice: f(0.678)},
			want:   68,
			wantOK: true,
		},
		{
			name:   "last price clamps above 100",
			quote:  model.RawMarket{LastPrice: f(250)},
			want:   100,
			wantOK: true,
		},
		{
			name:   "yes bid/ask midpoint",
			quote:  model.RawMarket{YesBid: f(40), YesAsk: f(50)},
			want:   45,
			wantOK: true,
		},
		{
			name:   "yes bid alone",
			quote:  model.RawMarket{YesBid: f(62)},
			want:   62,
			wantOK: true,
		},
		{
			name:   "yes ask alone",
			quote:  model.RawMarket{YesAsk: f(0.3)},
			want:   30,
			wantOK: true,
		},
		{
			name:   "no pair inverted midpoint",
			quote:  model.RawMarket{NoBid: f(20), NoAsk: f(30)},
			want:   75,
			wantOK: true,
		},
		{
			name:   "no bid alone inverted",
			quote:  model.RawMarket{NoBid: f(90)},
			want:   10,
			wantOK: true,
		},
		{
			name:   "last price wins over yes pair",
			quote:  model.RawMarket{LastPrice: f(10), YesBid: f(80), YesAsk: f(90)},
			want:   10,
			wantOK: true,
		},
		{
			name:   "yes pair wins over no pair",
			quote:  model.RawMarket{YesBid: f(70), NoBid: f(10)},
			want:   70,
			wantOK: true,
		},
		{
			name:   "no usable field is absent, not zero",
			quote:  model.RawMarket{},
			want:   0,
			wantOK: false,
		},
		{
			name:   "explicit zero last price is present",
			quote:  model.RawMarket{LastPrice: f(0)},
			want:   0,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToPercent(tt.quote)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ToPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestToPercentRange checks the [0,100] bound across a sweep of inputs.
func TestToPercentRange(t *testing.T) {
	for _, v := range []float64{-50, -1, 0, 0.001, 0.999, 1, 1.5, 50, 99.4, 100, 100.6, 1e6} {
		for _, q := range []model.RawMarket{
			{LastPrice: f(v)},
			{YesBid: f(v)},
			{NoAsk: f(v)},
		} {
			got, ok := ToPercent(q)
			if !ok {
				t.Fatalf("value %v should be present", v)
			}
			if got < 0 || got > 100 {
				t.Errorf("ToPercent(%v) = %d, outside [0,100]", v, got)
			}
		}
	}
}
