package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adbroker/internal/core/domain"
	"adbroker/internal/core/port/mocks"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		s.Close()
	})
	return s, client
}

func TestCachedRuleStore_ReadThrough(t *testing.T) {
	s, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)

	rule := &domain.TargetingRule{
		ID:          "r1",
		CampaignID:  "c1",
		GeoTargets:  []string{"KR"},
		DeviceTypes: []domain.DeviceType{domain.DeviceMobile},
		Keywords:    []string{"tech"},
	}
	next.EXPECT().RuleForCampaign(mock.Anything, "c1").Return(rule, nil).Once()

	store := NewCachedRuleStore(client, next, time.Minute, nil)
	ctx := context.Background()

	got, err := store.RuleForCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, rule, got)
	assert.True(t, s.Exists("targeting:campaign:c1"))

	// second read is served from redis; the mock allows only one call
	got, err = store.RuleForCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, rule, got)
}

func TestCachedRuleStore_CachesMissingRule(t *testing.T) {
	s, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)
	next.EXPECT().RuleForCampaign(mock.Anything, "c2").Return(nil, nil).Once()

	store := NewCachedRuleStore(client, next, time.Minute, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := store.RuleForCampaign(ctx, "c2")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	v, err := s.Get("targeting:campaign:c2")
	require.NoError(t, err)
	assert.Equal(t, "null", v)
}

func TestCachedRuleStore_EntriesExpire(t *testing.T) {
	s, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)
	next.EXPECT().RuleForCampaign(mock.Anything, "c3").Return(nil, nil).Twice()

	store := NewCachedRuleStore(client, next, time.Minute, nil)
	ctx := context.Background()

	_, err := store.RuleForCampaign(ctx, "c3")
	require.NoError(t, err)
	s.FastForward(2 * time.Minute)
	_, err = store.RuleForCampaign(ctx, "c3")
	require.NoError(t, err)
}

func TestCachedRuleStore_BackingStoreErrorNotCached(t *testing.T) {
	s, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)
	boom := errors.New("db down")
	next.EXPECT().RuleForCampaign(mock.Anything, "c4").Return(nil, boom).Once()

	store := NewCachedRuleStore(client, next, time.Minute, nil)

	_, err := store.RuleForCampaign(context.Background(), "c4")
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Exists("targeting:campaign:c4"))
}

func TestCachedRuleStore_RedisDownFallsThrough(t *testing.T) {
	s, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)
	rule := &domain.TargetingRule{ID: "r5", CampaignID: "c5"}
	next.EXPECT().RuleForCampaign(mock.Anything, "c5").Return(rule, nil).Once()

	store := NewCachedRuleStore(client, next, time.Minute, nil)
	s.Close()

	got, err := store.RuleForCampaign(context.Background(), "c5")
	require.NoError(t, err)
	assert.Equal(t, rule, got)
}

func TestCachedRuleStore_Invalidate(t *testing.T) {
	s, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)
	store := NewCachedRuleStore(client, next, time.Minute, nil)

	require.NoError(t, s.Set("targeting:campaign:c6", "null"))
	require.NoError(t, store.Invalidate(context.Background(), "c6"))
	assert.False(t, s.Exists("targeting:campaign:c6"))
}

func TestCachedRuleStore_RulesPassThrough(t *testing.T) {
	_, client := setupTestRedis(t)
	next := mocks.NewMockTargetingRuleStore(t)
	rules := []domain.TargetingRule{{ID: "r1", CampaignID: "c1"}}
	next.EXPECT().Rules(mock.Anything).Return(rules, nil).Once()

	store := NewCachedRuleStore(client, next, time.Minute, nil)
	got, err := store.Rules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rules, got)
}
