package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPlacementNotFound    = errors.New("placement not found")
	ErrInactivePlacement    = errors.New("placement cannot serve ads")
	ErrNoAdsAvailable       = errors.New("no ads available")
	ErrInvalidSelection     = errors.New("invalid ad selection")
	ErrInvalidTargetingRule = errors.New("invalid targeting rule")
	ErrInvalidBid           = errors.New("invalid bid")
	ErrUnknownPricingModel  = errors.New("unknown pricing model")
)

// PlacementNotFoundError is returned when no placement has the requested id.
type PlacementNotFoundError struct {
	PlacementID string
}

func (e *PlacementNotFoundError) Error() string {
	return fmt.Sprintf("placement %q not found", e.PlacementID)
}

func (e *PlacementNotFoundError) Unwrap() error { return ErrPlacementNotFound }

// InactivePlacementError is returned when a placement exists but its status
// does not allow serving.
type InactivePlacementError struct {
	PlacementID string
	Status      PlacementStatus
}

func (e *InactivePlacementError) Error() string {
	return fmt.Sprintf("placement %q is %s and cannot serve ads", e.PlacementID, e.Status)
}

func (e *InactivePlacementError) Unwrap() error { return ErrInactivePlacement }

// NoAdsAvailableError is the normal low-fill outcome.
type NoAdsAvailableError struct {
	PlacementID string
	Reason      string
}

func (e *NoAdsAvailableError) Error() string {
	return fmt.Sprintf("no ads available for placement %q: %s", e.PlacementID, e.Reason)
}

func (e *NoAdsAvailableError) Unwrap() error { return ErrNoAdsAvailable }

// InvalidSelectionError signals a broken invariant while assembling a
// selection. It indicates a bug, not a client problem.
type InvalidSelectionError struct {
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return "invalid ad selection: " + e.Reason
}

func (e *InvalidSelectionError) Unwrap() error { return ErrInvalidSelection }
