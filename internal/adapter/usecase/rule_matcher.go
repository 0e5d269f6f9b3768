package usecase

import (
	"context"
	"fmt"

	"adbroker/internal/core/domain"
	"adbroker/internal/core/port"
)

// RuleMatcher implements port.TargetingMatcher by scoring the campaign's
// stored targeting rule. A campaign without a rule matches everyone.
type RuleMatcher struct {
	rules port.TargetingRuleStore
}

// NewRuleMatcher returns a matcher backed by the given rule store.
func NewRuleMatcher(rules port.TargetingRuleStore) *RuleMatcher {
	return &RuleMatcher{rules: rules}
}

// Match scores campaignID's rule against user.
func (m *RuleMatcher) Match(ctx context.Context, campaignID string, user domain.UserContext) (domain.MatchResult, error) {
	rule, err := m.rules.RuleForCampaign(ctx, campaignID)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("load targeting rule for campaign %q: %w", campaignID, err)
	}
	if rule == nil {
		rule = &domain.TargetingRule{CampaignID: campaignID}
	}
	score := domain.Score(*rule, &user)
	return domain.MatchResult{Score: score, Matched: score > 0}, nil
}
