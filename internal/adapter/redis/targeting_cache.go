package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adbroker/internal/core/domain"
	"adbroker/internal/core/port"
)

const (
	ruleKeyPrefix = "targeting:campaign:"
	// noRule marks campaigns known to have no targeting rule.
	noRule = "null"
)

// CachedRuleStore is a read-through cache in front of a port.TargetingRuleStore.
// Per-campaign lookups are cached, including the absence of a rule. Redis
// failures are logged and the lookup falls through to the backing store.
type CachedRuleStore struct {
	client *goredis.Client
	next   port.TargetingRuleStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRuleStore wraps next with a Redis cache whose entries live for ttl.
func NewCachedRuleStore(client *goredis.Client, next port.TargetingRuleStore, ttl time.Duration, logger *slog.Logger) *CachedRuleStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedRuleStore{client: client, next: next, ttl: ttl, logger: logger}
}

// RuleForCampaign returns the cached rule or loads it from the backing store.
func (s *CachedRuleStore) RuleForCampaign(ctx context.Context, campaignID string) (*domain.TargetingRule, error) {
	key := ruleKeyPrefix + campaignID

	raw, err := s.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		rule, decodeErr := decodeRule(raw)
		if decodeErr == nil {
			return rule, nil
		}
		s.logger.Warn("drop undecodable cached rule", slog.String("key", key), slog.Any("error", decodeErr))
	case errors.Is(err, goredis.Nil):
	default:
		s.logger.Warn("rule cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	rule, err := s.next.RuleForCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, rule)
	return rule, nil
}

// Rules is not cached; it goes straight to the backing store for rule
// administration callers.
func (s *CachedRuleStore) Rules(ctx context.Context) ([]domain.TargetingRule, error) {
	return s.next.Rules(ctx)
}

// Invalidate drops the cached entry for campaignID. Rule administration
// calls it after editing a campaign's rule.
func (s *CachedRuleStore) Invalidate(ctx context.Context, campaignID string) error {
	return s.client.Del(ctx, ruleKeyPrefix+campaignID).Err()
}

func (s *CachedRuleStore) store(ctx context.Context, key string, rule *domain.TargetingRule) {
	value := noRule
	if rule != nil {
		data, err := json.Marshal(rule)
		if err != nil {
			s.logger.Warn("encode rule for cache", slog.String("key", key), slog.Any("error", err))
			return
		}
		value = string(data)
	}
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		s.logger.Warn("rule cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func decodeRule(raw string) (*domain.TargetingRule, error) {
	if raw == noRule {
		return nil, nil
	}
	var rule domain.TargetingRule
	if err := json.Unmarshal([]byte(raw), &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}
