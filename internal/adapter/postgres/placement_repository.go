package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adbroker/internal/core/domain"
)

// PlacementRepository implements port.PlacementLookup using pgxpool.
type PlacementRepository struct {
	pool *pgxpool.Pool
}

// NewPlacementRepository returns a new repository instance.
func NewPlacementRepository(pool *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{pool: pool}
}

// GetPlacement returns the placement by id. found is false when the row does
// not exist.
func (r *PlacementRepository) GetPlacement(ctx context.Context, id string) (domain.Placement, bool, error) {
	var (
		p             domain.Placement
		status, model string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, name, status, pricing_model FROM placements WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &status, &model)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Placement{}, false, nil
	}
	if err != nil {
		return domain.Placement{}, false, err
	}
	if p.Status, err = domain.ParsePlacementStatus(status); err != nil {
		return domain.Placement{}, false, fmt.Errorf("placement %q: %w", id, err)
	}
	if p.PricingModel, err = domain.ParsePricingModel(model); err != nil {
		return domain.Placement{}, false, fmt.Errorf("placement %q: %w", id, err)
	}
	return p, true, nil
}
