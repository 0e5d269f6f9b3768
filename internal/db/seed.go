package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	seedGeos     = [][]string{{"KR", "Seoul"}, {"US"}, {"DE", "Berlin"}, {}, {"JP", "Tokyo"}}
	seedDevices  = [][]string{{"MOBILE"}, {"DESKTOP", "TABLET"}, {}, {"MOBILE", "TABLET"}, {"SMART_TV"}}
	seedKeywords = [][]string{{"tech", "gaming"}, {"sports"}, {"travel", "food"}, {"cloud", "mobile"}, {}}
)

// Seed inserts demo placements, campaigns, ads and targeting rules. Existing
// rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		placements := []struct{ id, status, model string }{
			{"home-top", "ACTIVE", "CPM"},
			{"article-side", "ACTIVE", "CPC"},
			{"checkout", "ACTIVE", "CPA"},
			{"legacy-footer", "PAUSED", "CPM"},
		}
		for _, p := range placements {
			_, err := tx.Exec(ctx, `INSERT INTO placements (id, name, status, pricing_model)
VALUES ($1, $1, $2, $3) ON CONFLICT DO NOTHING`, p.id, p.status, p.model)
			if err != nil {
				return err
			}
		}

		for i := 0; i < 5; i++ {
			campaignID := fmt.Sprintf("campaign-%d", i+1)
			groupID := fmt.Sprintf("group-%d", i+1)
			budget := int64(500000)
			bid := int64(1000 + r.Intn(9000))
			_, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, name, status, bid_amount, start_date, end_date, daily_budget, total_budget,
     remaining_daily_budget, remaining_total_budget)
VALUES ($1, $2, 'ACTIVE', $3, now() - interval '1 day', now() + interval '30 days', $4, $5, $4, $5)
ON CONFLICT DO NOTHING`,
				campaignID, fmt.Sprintf("Campaign %d", i+1), bid, budget/5, budget)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `INSERT INTO ad_groups (id, campaign_id, name)
VALUES ($1, $2, $1) ON CONFLICT DO NOTHING`, groupID, campaignID)
			if err != nil {
				return err
			}
			for j := 0; j < 3; j++ {
				adID := fmt.Sprintf("ad-%d-%d", i+1, j+1)
				_, err = tx.Exec(ctx, `INSERT INTO ads (id, ad_group_id, title, landing_url)
VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
					adID, groupID, fmt.Sprintf("Ad %d for campaign %d", j+1, i+1),
					fmt.Sprintf("https://example.com/landing/%s", adID))
				if err != nil {
					return err
				}
			}

			var ageMin, ageMax *int
			gender := "ANY"
			if i%2 == 0 {
				lo, hi := 18+r.Intn(10), 35+r.Intn(20)
				ageMin, ageMax = &lo, &hi
			}
			if i == 3 {
				gender = "FEMALE"
			}
			_, err = tx.Exec(ctx, `INSERT INTO targeting_rules
    (id, campaign_id, age_min, age_max, gender, geo_targets, device_types, keywords)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT DO NOTHING`,
				fmt.Sprintf("rule-%d", i+1), campaignID, ageMin, ageMax, gender,
				seedGeos[i], seedDevices[i], seedKeywords[i])
			if err != nil {
				return err
			}
		}
		return nil
	})
}
