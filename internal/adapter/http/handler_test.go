package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adbroker/internal/core/domain"
	"adbroker/internal/core/port/mocks"
)

const iPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Mobile/15E148 Safari/605.1.15"

type fakeGeo struct{ country, city string }

func (g fakeGeo) Country(net.IP) string { return g.country }
func (g fakeGeo) City(net.IP) string    { return g.city }

type recordedRequest struct{ route, method, status string }

type fakeObserver struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (o *fakeObserver) ObserveRequest(route, method, status string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, recordedRequest{route, method, status})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSelection(t *testing.T) domain.AdSelection {
	t.Helper()
	sel, err := domain.NewAdSelection(
		domain.SelectedAd{CampaignID: "c1", AdGroupID: "g1", AdID: "a1"},
		80, 5000, 5, "tok-1",
	)
	require.NoError(t, err)
	return sel
}

func doSelect(h *Handler, placementID, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/placements/"+placementID+"/select", strings.NewReader(body))
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestSelectAd_Success(t *testing.T) {
	svc := mocks.NewMockAdSelector(t)
	age := 30
	want := domain.UserContext{
		Age:        &age,
		Gender:     domain.GenderFemale,
		Country:    "KR",
		City:       "Seoul",
		DeviceType: domain.DeviceMobile,
		Keywords:   []string{"tech"},
	}
	svc.EXPECT().SelectAd(mock.Anything, "p1", want).Return(testSelection(t), nil)

	h := NewHandler(svc, testLogger())
	rec := doSelect(h, "p1", `{"age":30,"gender":"female","country":"KR","city":"Seoul","device_type":"mobile","keywords":["tech"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp selectResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, selectResponse{
		CampaignID:      "c1",
		AdGroupID:       "g1",
		AdID:            "a1",
		MatchScore:      80,
		Bid:             5000,
		EstimatedCost:   5,
		RankingScore:    4000,
		ImpressionToken: "tok-1",
	}, resp)
}

func TestSelectAd_EnrichesFromRequest(t *testing.T) {
	svc := mocks.NewMockAdSelector(t)
	want := domain.UserContext{
		Gender:     domain.GenderAny,
		Country:    "KR",
		City:       "Seoul",
		DeviceType: domain.DeviceMobile,
	}
	svc.EXPECT().SelectAd(mock.Anything, "p1", want).Return(testSelection(t), nil)

	h := NewHandler(svc, testLogger(), WithGeoResolver(fakeGeo{country: "KR", city: "Seoul"}))
	rec := doSelect(h, "p1", "", func(r *http.Request) {
		r.Header.Set("User-Agent", iPhoneUA)
		r.RemoteAddr = "203.0.113.7:4321"
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSelectAd_KeepsCallerLocation(t *testing.T) {
	svc := mocks.NewMockAdSelector(t)
	want := domain.UserContext{
		Gender:     domain.GenderAny,
		Country:    "US",
		City:       "Seoul",
		DeviceType: domain.DeviceDesktop,
	}
	svc.EXPECT().SelectAd(mock.Anything, "p1", want).Return(testSelection(t), nil)

	h := NewHandler(svc, testLogger(), WithGeoResolver(fakeGeo{country: "KR", city: "Seoul"}))
	rec := doSelect(h, "p1", `{"country":"US","device_type":"DESKTOP"}`, func(r *http.Request) {
		r.Header.Set("User-Agent", iPhoneUA)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSelectAd_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody *errorResponse
	}{
		{
			name:     "no ads",
			err:      &domain.NoAdsAvailableError{PlacementID: "p1", Reason: "no active campaigns"},
			wantCode: http.StatusNoContent,
		},
		{
			name:     "placement not found",
			err:      &domain.PlacementNotFoundError{PlacementID: "p1"},
			wantCode: http.StatusNotFound,
			wantBody: &errorResponse{Error: "placement not found", PlacementID: "p1"},
		},
		{
			name:     "inactive placement",
			err:      &domain.InactivePlacementError{PlacementID: "p1", Status: domain.PlacementPaused},
			wantCode: http.StatusBadRequest,
			wantBody: &errorResponse{Error: "placement cannot serve ads", PlacementID: "p1", Status: "PAUSED"},
		},
		{
			name:     "invalid selection",
			err:      &domain.InvalidSelectionError{Reason: "match score 120 out of range"},
			wantCode: http.StatusInternalServerError,
			wantBody: &errorResponse{Error: "internal error"},
		},
		{
			name:     "deadline",
			err:      context.DeadlineExceeded,
			wantCode: http.StatusServiceUnavailable,
			wantBody: &errorResponse{Error: "request aborted"},
		},
		{
			name:     "storage failure",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: &errorResponse{Error: "internal error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAdSelector(t)
			svc.EXPECT().SelectAd(mock.Anything, "p1", mock.Anything).Return(domain.AdSelection{}, tt.err)

			rec := doSelect(NewHandler(svc, testLogger()), "p1", "{}")
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody == nil {
				assert.Zero(t, rec.Body.Len())
				return
			}
			var got errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, *tt.wantBody, got)
		})
	}
}

func TestSelectAd_BadInput(t *testing.T) {
	for name, body := range map[string]string{
		"malformed json": `{"age":`,
		"negative age":   `{"age":-1}`,
		"bad gender":     `{"gender":"robot"}`,
		"bad device":     `{"device_type":"fridge"}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := mocks.NewMockAdSelector(t)
			rec := doSelect(NewHandler(svc, testLogger()), "p1", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	svc := mocks.NewMockAdSelector(t)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	h := NewHandler(svc, testLogger(), WithMetricsHandler(metrics))

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "# metrics", rec.Body.String())
}

func TestObserverSeesRoutePattern(t *testing.T) {
	svc := mocks.NewMockAdSelector(t)
	svc.EXPECT().SelectAd(mock.Anything, "p9", mock.Anything).
		Return(domain.AdSelection{}, &domain.NoAdsAvailableError{PlacementID: "p9"})

	obs := &fakeObserver{}
	h := NewHandler(svc, testLogger(), WithRequestObserver(obs))
	doSelect(h, "p9", "")

	require.Len(t, obs.seen, 1)
	assert.Equal(t, recordedRequest{"/api/v1/placements/{placementID}/select", http.MethodPost, "204"}, obs.seen[0])
}

func TestDeviceFromUserAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want domain.DeviceType
	}{
		{iPhoneUA, domain.DeviceMobile},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.75 Safari/537.36", domain.DeviceDesktop},
		{"Mozilla/5.0 (iPad; CPU OS 15_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Mobile/15E148 Safari/605.1.15", domain.DeviceTablet},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deviceFromUserAgent(tt.ua), tt.ua)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:4321"
	assert.Equal(t, "203.0.113.7", clientIP(r).String())

	r.RemoteAddr = "198.51.100.2"
	assert.Equal(t, "198.51.100.2", clientIP(r).String())

	r.RemoteAddr = "garbage"
	assert.Nil(t, clientIP(r))
}
