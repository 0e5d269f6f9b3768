package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"adbroker/internal/core/port"
)

var _ port.SelectionMetrics = (*Prometheus)(nil)

func TestPrometheus_RecordsSelections(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	m.ObserveSelection(port.OutcomeSelected, 5*time.Millisecond)
	m.ObserveSelection(port.OutcomeSelected, 7*time.Millisecond)
	m.ObserveSelection(port.OutcomeNoAds, time.Millisecond)
	m.IncCollaboratorFailures("targeting_matcher")
	m.ObserveCandidates(4, 2)
	m.ObserveRequest("/api/v1/placements/{placementID}/select", "POST", "200", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.selections.WithLabelValues(port.OutcomeSelected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selections.WithLabelValues(port.OutcomeNoAds)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.collaboratorFailures.WithLabelValues("targeting_matcher")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/placements/{placementID}/select", "POST", "200")))

	n, err := testutil.GatherAndCount(reg, "adbroker_candidates_evaluated", "adbroker_candidates_matched")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
