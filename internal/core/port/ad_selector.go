package port

import (
	"context"

	"adbroker/internal/core/domain"
)

// AdSelector is the primary port into the selection engine. Mock
// implementations are generated from this interface for adapter tests.
type AdSelector interface {
	// SelectAd picks the best ad for the placement and viewer. Expected
	// failures are *domain.PlacementNotFoundError,
	// *domain.InactivePlacementError and *domain.NoAdsAvailableError; any
	// other error is internal.
	SelectAd(ctx context.Context, placementID string, user domain.UserContext) (domain.AdSelection, error)
}
