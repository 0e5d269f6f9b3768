package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adbroker/internal/core/domain"
)

const selectRules = `
        SELECT id, campaign_id, age_min, age_max, gender, geo_targets, device_types, keywords
        FROM targeting_rules`

// TargetingRepository implements port.TargetingRuleStore using pgxpool.
type TargetingRepository struct {
	pool *pgxpool.Pool
}

// NewTargetingRepository returns a new repository instance.
func NewTargetingRepository(pool *pgxpool.Pool) *TargetingRepository {
	return &TargetingRepository{pool: pool}
}

// RuleForCampaign returns the campaign's rule or nil when none is stored. If
// several rows exist for a campaign the one with the smallest id wins.
func (r *TargetingRepository) RuleForCampaign(ctx context.Context, campaignID string) (*domain.TargetingRule, error) {
	rows, err := r.pool.Query(ctx, selectRules+` WHERE campaign_id = $1 ORDER BY id LIMIT 1`, campaignID)
	if err != nil {
		return nil, err
	}
	rules, err := pgx.CollectRows(rows, scanRule)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return &rules[0], nil
}

// Rules returns every stored targeting rule.
func (r *TargetingRepository) Rules(ctx context.Context) ([]domain.TargetingRule, error) {
	rows, err := r.pool.Query(ctx, selectRules+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRule)
}

func scanRule(row pgx.CollectableRow) (domain.TargetingRule, error) {
	var (
		rule           domain.TargetingRule
		ageMin, ageMax *int
		gender         string
		devices        []string
	)
	err := row.Scan(
		&rule.ID,
		&rule.CampaignID,
		&ageMin,
		&ageMax,
		&gender,
		&rule.GeoTargets,
		&devices,
		&rule.Keywords,
	)
	if err != nil {
		return rule, err
	}

	g, err := domain.ParseGender(gender)
	if err != nil {
		return rule, fmt.Errorf("targeting rule %q: %w", rule.ID, err)
	}
	if ageMin != nil || ageMax != nil || g != domain.GenderAny {
		demo, err := domain.NewDemographics(ageMin, ageMax, g)
		if err != nil {
			return rule, fmt.Errorf("targeting rule %q: %w", rule.ID, err)
		}
		rule.Demographics = &demo
	}
	for _, d := range devices {
		dt, err := domain.ParseDeviceType(d)
		if err != nil {
			return rule, fmt.Errorf("targeting rule %q: %w", rule.ID, err)
		}
		if dt != "" {
			rule.DeviceTypes = append(rule.DeviceTypes, dt)
		}
	}
	return rule, rule.Validate()
}
