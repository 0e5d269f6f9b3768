package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adbroker/internal/core/domain"
	"adbroker/internal/core/port/mocks"
)

func TestRuleMatcher(t *testing.T) {
	store := mocks.NewMockTargetingRuleStore(t)
	store.EXPECT().RuleForCampaign(mock.Anything, "geo").
		Return(&domain.TargetingRule{CampaignID: "geo", GeoTargets: []string{"KR"}}, nil)
	store.EXPECT().RuleForCampaign(mock.Anything, "open").Return(nil, nil)
	store.EXPECT().RuleForCampaign(mock.Anything, "keywords").
		Return(&domain.TargetingRule{CampaignID: "keywords", Keywords: []string{"tech", "gaming", "mobile", "cloud"}}, nil)

	m := NewRuleMatcher(store)
	user := domain.UserContext{Country: "US", Keywords: []string{"tech", "gaming"}}

	res, err := m.Match(context.Background(), "geo", user)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchResult{Score: 0, Matched: false}, res)

	res, err = m.Match(context.Background(), "open", user)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchResult{Score: 100, Matched: true}, res)

	res, err = m.Match(context.Background(), "keywords", user)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchResult{Score: 48, Matched: true}, res)
}

func TestRuleMatcher_StoreError(t *testing.T) {
	boom := errors.New("connection refused")
	store := mocks.NewMockTargetingRuleStore(t)
	store.EXPECT().RuleForCampaign(mock.Anything, "c1").Return(nil, boom)

	_, err := NewRuleMatcher(store).Match(context.Background(), "c1", domain.UserContext{})
	require.ErrorIs(t, err, boom)
}
