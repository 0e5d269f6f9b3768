package httpadapter

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adbroker/internal/core/port"
)

// GeoResolver maps a client address to a country code and city.
type GeoResolver interface {
	Country(ip net.IP) string
	City(ip net.IP) string
}

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(route, method, status string, elapsed time.Duration)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds an AdSelector to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.AdSelector
	logger   *slog.Logger
	geo      GeoResolver
	observer RequestObserver
	metrics  http.Handler
	router   chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithGeoResolver fills missing viewer country and city from the client IP.
func WithGeoResolver(g GeoResolver) Option {
	return func(h *Handler) { h.geo = g }
}

// WithRequestObserver records every request served by the router.
func WithRequestObserver(o RequestObserver) Option {
	return func(h *Handler) { h.observer = o }
}

// WithMetricsHandler exposes m on GET /metrics.
func WithMetricsHandler(m http.Handler) Option {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdSelector, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, h.observe)

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/placements/{placementID}/select", h.handleSelectAd)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// observe reports status and latency per route pattern.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.observer == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.observer.ObserveRequest(route, r.Method, strconv.Itoa(status), time.Since(start))
	})
}
