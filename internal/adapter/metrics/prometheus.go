package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements port.SelectionMetrics and the HTTP request metrics
// on top of client_golang collectors.
type Prometheus struct {
	selections           *prometheus.CounterVec
	selectionLatency     *prometheus.HistogramVec
	candidatesEvaluated  prometheus.Histogram
	candidatesMatched    prometheus.Histogram
	collaboratorFailures *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpLatency          *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		selections: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbroker_selections_total",
				Help: "Ad selection requests by outcome",
			},
			[]string{"outcome"},
		),
		selectionLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adbroker_selection_duration_seconds",
				Help:    "Ad selection latency by outcome",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		candidatesEvaluated: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "adbroker_candidates_evaluated",
				Help:    "Active campaigns scored per selection",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		candidatesMatched: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "adbroker_candidates_matched",
				Help:    "Campaigns that cleared the match filter per selection",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		collaboratorFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbroker_collaborator_failures_total",
				Help: "Failed collaborator calls during selection",
			},
			[]string{"collaborator"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adbroker_http_requests_total",
				Help: "HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		httpLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adbroker_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

func (p *Prometheus) ObserveSelection(outcome string, elapsed time.Duration) {
	p.selections.WithLabelValues(outcome).Inc()
	p.selectionLatency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (p *Prometheus) ObserveCandidates(evaluated, matched int) {
	p.candidatesEvaluated.Observe(float64(evaluated))
	p.candidatesMatched.Observe(float64(matched))
}

func (p *Prometheus) IncCollaboratorFailures(collaborator string) {
	p.collaboratorFailures.WithLabelValues(collaborator).Inc()
}

// ObserveRequest records one served HTTP request.
func (p *Prometheus) ObserveRequest(route, method, status string, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(route, method, status).Inc()
	p.httpLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
