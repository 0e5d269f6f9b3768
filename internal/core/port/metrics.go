package port

import "time"

// Selection outcomes reported to SelectionMetrics.
const (
	OutcomeSelected          = "selected"
	OutcomeNoAds             = "no_ads"
	OutcomePlacementNotFound = "placement_not_found"
	OutcomeInactivePlacement = "inactive_placement"
	OutcomeInvalidSelection  = "invalid_selection"
	OutcomeCanceled          = "canceled"
	OutcomeError             = "error"
)

// SelectionMetrics records selection engine telemetry.
type SelectionMetrics interface {
	ObserveSelection(outcome string, elapsed time.Duration)
	ObserveCandidates(evaluated, matched int)
	IncCollaboratorFailures(collaborator string)
}
