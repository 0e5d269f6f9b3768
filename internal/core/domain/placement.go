package domain

import (
	"fmt"
	"strings"
)

// PlacementStatus is the lifecycle state of a placement.
type PlacementStatus string

const (
	PlacementActive  PlacementStatus = "ACTIVE"
	PlacementPaused  PlacementStatus = "PAUSED"
	PlacementDeleted PlacementStatus = "DELETED"
)

// ParsePlacementStatus normalises s into a PlacementStatus.
func ParsePlacementStatus(s string) (PlacementStatus, error) {
	switch st := PlacementStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case PlacementActive, PlacementPaused, PlacementDeleted:
		return st, nil
	default:
		return "", fmt.Errorf("unknown placement status %q", s)
	}
}

// Placement is a slot on a publisher surface. Only its status and pricing
// model matter to ad selection.
type Placement struct {
	ID           string
	Name         string
	Status       PlacementStatus
	PricingModel PricingModel
}

// CanServeAds reports whether the placement may be filled.
func (p Placement) CanServeAds() bool {
	return p.Status == PlacementActive
}
