package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adbroker/internal/core/domain"
)

const maxRequestBody = 64 << 10

// selectRequest is the wire form of domain.UserContext.
type selectRequest struct {
	Age        *int     `json:"age"`
	Gender     string   `json:"gender"`
	Country    string   `json:"country"`
	City       string   `json:"city"`
	DeviceType string   `json:"device_type"`
	Keywords   []string `json:"keywords"`
}

func (req selectRequest) userContext() (domain.UserContext, error) {
	if req.Age != nil && *req.Age < 0 {
		return domain.UserContext{}, fmt.Errorf("age %d is negative", *req.Age)
	}
	gender, err := domain.ParseGender(req.Gender)
	if err != nil {
		return domain.UserContext{}, err
	}
	device, err := domain.ParseDeviceType(req.DeviceType)
	if err != nil {
		return domain.UserContext{}, err
	}
	return domain.UserContext{
		Age:        req.Age,
		Gender:     gender,
		Country:    req.Country,
		City:       req.City,
		DeviceType: device,
		Keywords:   req.Keywords,
	}, nil
}

type selectResponse struct {
	CampaignID      string `json:"campaign_id"`
	AdGroupID       string `json:"ad_group_id"`
	AdID            string `json:"ad_id"`
	MatchScore      int    `json:"match_score"`
	Bid             int64  `json:"bid"`
	EstimatedCost   int64  `json:"estimated_cost"`
	RankingScore    int64  `json:"ranking_score"`
	ImpressionToken string `json:"impression_token"`
}

func newSelectResponse(sel domain.AdSelection) selectResponse {
	ad := sel.Ad()
	return selectResponse{
		CampaignID:      ad.CampaignID,
		AdGroupID:       ad.AdGroupID,
		AdID:            ad.AdID,
		MatchScore:      sel.MatchScore(),
		Bid:             sel.Bid(),
		EstimatedCost:   sel.EstimatedCost(),
		RankingScore:    sel.RankingScore(),
		ImpressionToken: sel.ImpressionToken(),
	}
}

type errorResponse struct {
	Error       string `json:"error"`
	PlacementID string `json:"placement_id,omitempty"`
	Status      string `json:"status,omitempty"`
}

// handleSelectAd selects an ad for the {placementID} path parameter. The
// optional JSON body describes the viewer; missing device type, country and
// city are derived from the request. Responses: 200 with the selection, 204
// when no ad is available, 404 for unknown placements, 400 for inactive
// placements or malformed input, 500 otherwise.
func (h *Handler) handleSelectAd(w http.ResponseWriter, r *http.Request) {
	placementID := chi.URLParam(r, "placementID")

	var req selectRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}
	user, err := req.userContext()
	if err != nil {
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.enrich(r, &user)

	sel, err := h.svc.SelectAd(r.Context(), placementID, user)
	if err != nil {
		h.writeSelectError(w, placementID, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, newSelectResponse(sel))
}

// enrich fills the device type from the User-Agent and the location from
// the client address, without overriding what the caller sent.
func (h *Handler) enrich(r *http.Request, user *domain.UserContext) {
	if user.DeviceType == "" {
		user.DeviceType = deviceFromUserAgent(r.UserAgent())
	}
	if h.geo == nil || (user.Country != "" && user.City != "") {
		return
	}
	ip := clientIP(r)
	if ip == nil {
		return
	}
	if user.Country == "" {
		user.Country = h.geo.Country(ip)
	}
	if user.City == "" {
		user.City = h.geo.City(ip)
	}
}

func (h *Handler) writeSelectError(w http.ResponseWriter, placementID string, err error) {
	var (
		notFound *domain.PlacementNotFoundError
		inactive *domain.InactivePlacementError
	)
	switch {
	case errors.Is(err, domain.ErrNoAdsAvailable):
		h.logger.Debug("no ad available", slog.String("placement_id", placementID), slog.Any("reason", err))
		w.WriteHeader(http.StatusNoContent)
	case errors.As(err, &notFound):
		writeJSON(w, h.logger, http.StatusNotFound, errorResponse{Error: "placement not found", PlacementID: notFound.PlacementID})
	case errors.As(err, &inactive):
		writeJSON(w, h.logger, http.StatusBadRequest, errorResponse{
			Error:       "placement cannot serve ads",
			PlacementID: inactive.PlacementID,
			Status:      string(inactive.Status),
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("select ad aborted", slog.String("placement_id", placementID), slog.Any("error", err))
		writeJSON(w, h.logger, http.StatusServiceUnavailable, errorResponse{Error: "request aborted"})
	default:
		h.logger.Error("select ad error", slog.String("placement_id", placementID), slog.Any("error", err))
		writeJSON(w, h.logger, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// clientIP parses r.RemoteAddr, which the RealIP middleware has already
// rewritten from proxy headers when present.
func clientIP(r *http.Request) net.IP {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return net.ParseIP(host)
}
