package port

import (
	"context"

	"adbroker/internal/core/domain"
)

// PlacementLookup resolves placements by id. found is false when no
// placement exists; err is reserved for I/O failures.
type PlacementLookup interface {
	GetPlacement(ctx context.Context, id string) (placement domain.Placement, found bool, err error)
}

// CampaignDirectory lists the campaigns currently eligible to serve along
// with their bids.
type CampaignDirectory interface {
	ActiveCampaigns(ctx context.Context) ([]domain.ActiveCampaign, error)
}

// TargetingMatcher scores one campaign's targeting against a viewer.
type TargetingMatcher interface {
	Match(ctx context.Context, campaignID string, user domain.UserContext) (domain.MatchResult, error)
}

// TargetingRuleStore is the read side of targeting rule storage.
type TargetingRuleStore interface {
	// RuleForCampaign returns the campaign's rule, or nil when it has none.
	RuleForCampaign(ctx context.Context, campaignID string) (*domain.TargetingRule, error)
	// Rules returns every stored rule. Selection never calls it; it serves
	// rule administration and cache warm-up callers.
	Rules(ctx context.Context) ([]domain.TargetingRule, error)
}
