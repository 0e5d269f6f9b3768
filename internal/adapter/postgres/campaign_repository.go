package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adbroker/internal/core/domain"
)

// CampaignRepository implements port.CampaignDirectory using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ActiveCampaigns lists active campaigns that still have budget, each with
// its first active ad group and ad.
func (r *CampaignRepository) ActiveCampaigns(ctx context.Context) ([]domain.ActiveCampaign, error) {
	query := `
        SELECT DISTINCT ON (c.id)
            c.id,
            g.id,
            a.id,
            c.bid_amount
        FROM campaigns c
        JOIN ad_groups g ON g.campaign_id = c.id AND g.status = 'ACTIVE'
        JOIN ads a ON a.ad_group_id = g.id AND a.status = 'ACTIVE'
        WHERE c.status = 'ACTIVE'
          AND (c.start_date IS NULL OR c.start_date <= now())
          AND (c.end_date IS NULL OR now() < c.end_date)
          AND c.remaining_daily_budget > 0
          AND c.remaining_total_budget > 0
        ORDER BY c.id, g.id, a.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ActiveCampaign])
}
