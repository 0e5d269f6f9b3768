package domain

import (
	"fmt"
	"strings"
)

// PricingModel determines how a bid translates into cost.
type PricingModel string

const (
	// PricingCPM bids are per thousand impressions.
	PricingCPM PricingModel = "CPM"
	// PricingCPC bids are per click.
	PricingCPC PricingModel = "CPC"
	// PricingCPA bids are per conversion.
	PricingCPA PricingModel = "CPA"
)

// ParsePricingModel normalises s into a PricingModel.
func ParsePricingModel(s string) (PricingModel, error) {
	switch m := PricingModel(strings.ToUpper(strings.TrimSpace(s))); m {
	case PricingCPM, PricingCPC, PricingCPA:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPricingModel, s)
	}
}

// Cost returns the cost of units billable events at bidPerUnit. Zero units
// always cost nothing; otherwise the bid must be positive.
func Cost(model PricingModel, bidPerUnit, units int64) (int64, error) {
	if units == 0 {
		return 0, nil
	}
	if units < 0 {
		return 0, fmt.Errorf("%w: negative unit count %d", ErrInvalidBid, units)
	}
	if bidPerUnit <= 0 {
		return 0, fmt.Errorf("%w: bid %d must be positive", ErrInvalidBid, bidPerUnit)
	}
	switch model {
	case PricingCPM:
		return bidPerUnit * units / 1000, nil
	case PricingCPC, PricingCPA:
		return bidPerUnit * units, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPricingModel, model)
	}
}
