package domain

import (
	"errors"
	"testing"
)

func TestCost(t *testing.T) {
	tests := []struct {
		model PricingModel
		bid   int64
		units int64
		want  int64
	}{
		{PricingCPM, 5000, 2500, 12500},
		{PricingCPM, 5000, 1, 5},
		{PricingCPM, 999, 1, 0},
		{PricingCPC, 1000, 50, 50000},
		{PricingCPA, 10000, 5, 50000},
	}
	for _, tt := range tests {
		got, err := Cost(tt.model, tt.bid, tt.units)
		if err != nil {
			t.Fatalf("Cost(%s, %d, %d): %v", tt.model, tt.bid, tt.units, err)
		}
		if got != tt.want {
			t.Fatalf("Cost(%s, %d, %d) = %d, want %d", tt.model, tt.bid, tt.units, got, tt.want)
		}
	}
}

func TestCostZeroUnits(t *testing.T) {
	for _, m := range []PricingModel{PricingCPM, PricingCPC, PricingCPA, "BOGUS"} {
		for _, bid := range []int64{-1, 0, 1000} {
			got, err := Cost(m, bid, 0)
			if err != nil || got != 0 {
				t.Fatalf("Cost(%s, %d, 0) = %d, %v", m, bid, got, err)
			}
		}
	}
}

func TestCostErrors(t *testing.T) {
	if _, err := Cost(PricingCPC, 0, 1); !errors.Is(err, ErrInvalidBid) {
		t.Fatalf("zero bid: got %v", err)
	}
	if _, err := Cost(PricingCPM, -5, 10); !errors.Is(err, ErrInvalidBid) {
		t.Fatalf("negative bid: got %v", err)
	}
	if _, err := Cost(PricingCPA, 10, -1); !errors.Is(err, ErrInvalidBid) {
		t.Fatalf("negative units: got %v", err)
	}
	if _, err := Cost("CPV", 10, 1); !errors.Is(err, ErrUnknownPricingModel) {
		t.Fatalf("unknown model: got %v", err)
	}
}

func TestParsePricingModel(t *testing.T) {
	m, err := ParsePricingModel(" cpc ")
	if err != nil || m != PricingCPC {
		t.Fatalf("got %q, %v", m, err)
	}
	if _, err := ParsePricingModel("flat"); !errors.Is(err, ErrUnknownPricingModel) {
		t.Fatalf("got %v", err)
	}
}
