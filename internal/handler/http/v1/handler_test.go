package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/broadcast"
	"github.com/PreciousMuemi/forest-link/internal/config"
	"github.com/PreciousMuemi/forest-link/internal/dispatch"
	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/PreciousMuemi/forest-link/internal/lifecycle"
	"github.com/PreciousMuemi/forest-link/internal/models"
	"github.com/PreciousMuemi/forest-link/internal/repository"
	"github.com/PreciousMuemi/forest-link/internal/service"
	"github.com/PreciousMuemi/forest-link/internal/service/mocks"
	"github.com/PreciousMuemi/forest-link/internal/ussd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var withKey = map[string]string{"X-API-Key": testAPIKey}

// stubMenu records the last USSD request and answers with a fixed reply.
type stubMenu struct {
	reply string
	err   error
	got   ussd.Request
}

func (s *stubMenu) Handle(_ context.Context, req ussd.Request) (string, error) {
	s.got = req
	return s.reply, s.err
}

type handlerMocks struct {
	incidents  *mocks.MockIncidentService
	rangers    *mocks.MockRangerService
	broadcasts *mocks.MockBroadcastService
	responses  *mocks.MockResponseService
	hotspots   *mocks.MockHotspotService
	menu       *stubMenu
}

// newTestHandler builds a router over mocked services.
func newTestHandler(t *testing.T) (*gin.Engine, handlerMocks) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		incidents:  mocks.NewMockIncidentService(ctrl),
		rangers:    mocks.NewMockRangerService(ctrl),
		broadcasts: mocks.NewMockBroadcastService(ctrl),
		responses:  mocks.NewMockResponseService(ctrl),
		hotspots:   mocks.NewMockHotspotService(ctrl),
		menu:       &stubMenu{},
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{APIKeys: []string{testAPIKey}}

	handler := NewHandler(Services{
		Incidents:  m.incidents,
		Rangers:    m.rangers,
		Broadcasts: m.broadcasts,
		Responses:  m.responses,
		Hotspots:   m.hotspots,
		USSD:       m.menu,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return router, m
}

func makeRequest(router *gin.Engine, method, target string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func makeFormRequest(router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func floatPtr(v float64) *float64 { return &v }

func sampleIncident() *models.Incident {
	return &models.Incident{
		ID:         uuid.New(),
		Location:   geo.Point{Lat: -0.39, Lon: 36.96},
		ThreatType: models.ThreatFire,
		Severity:   models.SeverityCritical,
		Source:     models.SourceApp,
		Status:     models.StatusReported,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
}

func TestCreateIncident_Success(t *testing.T) {
	router, m := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Latitude:    floatPtr(-0.39),
		Longitude:   floatPtr(36.96),
		ThreatType:  "fire",
		Severity:    "critical",
		Description: "Smoke near the ridge",
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.SourceApp, inc.Source)
			assert.Equal(t, geo.Point{Lat: -0.39, Lon: 36.96}, inc.Location)
			inc.ID = incidentID
			inc.Status = models.StatusReported
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "reported", resp.Status)
	assert.Equal(t, "fire", resp.ThreatType)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	router, m := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"latitude": 1`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name     string
		body     CreateIncidentRequest
		wantBody string
	}{
		{
			name:     "missing latitude",
			body:     CreateIncidentRequest{Longitude: floatPtr(36.9), ThreatType: "fire", Severity: "low"},
			wantBody: "Field validation for 'Latitude'",
		},
		{
			name:     "latitude out of range",
			body:     CreateIncidentRequest{Latitude: floatPtr(91), Longitude: floatPtr(36.9), ThreatType: "fire", Severity: "low"},
			wantBody: "Field validation for 'Latitude'",
		},
		{
			name:     "unknown threat",
			body:     CreateIncidentRequest{Latitude: floatPtr(-1), Longitude: floatPtr(36.9), ThreatType: "flood", Severity: "low"},
			wantBody: `unknown threat type \"flood\"`,
		},
		{
			name:     "unknown severity",
			body:     CreateIncidentRequest{Latitude: floatPtr(-1), Longitude: floatPtr(36.9), ThreatType: "fire", Severity: "extreme"},
			wantBody: `unknown severity \"extreme\"`,
		},
		{
			name:     "satellite source is internal",
			body:     CreateIncidentRequest{Latitude: floatPtr(-1), Longitude: floatPtr(36.9), ThreatType: "fire", Severity: "low", Source: "satellite"},
			wantBody: "Field validation for 'Source'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestCreateIncident_NormalizesEnums(t *testing.T) {
	router, m := newTestHandler(t)

	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inc *models.Incident) error {
		assert.Equal(t, models.ThreatIllegalLogging, inc.ThreatType)
		assert.Equal(t, models.SeverityHigh, inc.Severity)
		inc.ID = uuid.New()
		inc.Status = models.StatusReported
		return nil
	})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{
		Latitude: floatPtr(-1), Longitude: floatPtr(36.9), ThreatType: "ILLEGAL_LOGGING", Severity: " High ",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"threat_type":"illegal_logging"`)
}

func TestCreateIncident_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", fmt.Errorf("%w: description too long", service.ErrValidation), http.StatusBadRequest, "description too long"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestHandler(t)
			m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(tt.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{
				Latitude: floatPtr(-1), Longitude: floatPtr(36.9), ThreatType: "poaching", Severity: "high",
			}))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestListIncidents_RequiresAPIKey(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestListIncidents_BearerToken(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), 1, 20, gomock.Nil()).Return([]models.Incident{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListIncidents_StatusFilter(t *testing.T) {
	router, m := newTestHandler(t)
	first, second := sampleIncident(), sampleIncident()

	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), 2, 5, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int, status *models.IncidentStatus) ([]models.Incident, error) {
			require.NotNil(t, status)
			assert.Equal(t, models.StatusReported, *status)
			return []models.Incident{*first, *second}, nil
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?page=2&pageSize=5&status=reported", nil, withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, first.ID, resp[0].ID)
}

func TestListNearbyIncidents(t *testing.T) {
	router, m := newTestHandler(t)
	inc := sampleIncident()

	m.incidents.EXPECT().ListNearby(gomock.Any(), geo.Point{Lat: -0.4, Lon: 36.95}, 5.0).Return([]models.Incident{*inc}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=-0.4&lon=36.95&radius_km=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), inc.ID.String())
}

func TestListNearbyIncidents_BadQuery(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().ListNearby(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=abc&lon=36.95", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNearbyIncidents_InvalidCoordinate(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().ListNearby(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", geo.ErrInvalidCoordinate))

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=120&lon=36.95", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident(t *testing.T) {
	router, m := newTestHandler(t)
	inc := sampleIncident()

	m.incidents.EXPECT().GetIncident(gomock.Any(), inc.ID).Return(inc, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+inc.ID.String(), nil, withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, inc.ID, resp.ID)
	assert.InDelta(t, -0.39, resp.Latitude, 1e-9)
}

func TestGetIncident_InvalidID(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/invalid-uuid", nil, withKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	router, m := newTestHandler(t)
	id := uuid.New()

	m.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(nil, fmt.Errorf("service: %w", repository.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+id.String(), nil, withKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	router, m := newTestHandler(t)

	m.incidents.EXPECT().GetStats(gomock.Any()).Return(&models.IncidentStats{
		ByStatus: map[models.IncidentStatus]int{models.StatusReported: 2, models.StatusResolved: 1},
		Open:     2,
		Total:    3,
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/stats", nil, withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"by_status":{"reported":2,"resolved":1},"open":2,"total":3}`, w.Body.String())
}

func TestVerifyIncident(t *testing.T) {
	router, m := newTestHandler(t)
	inc := sampleIncident()
	inc.Verified = true

	m.incidents.EXPECT().VerifyIncident(gomock.Any(), inc.ID, true).Return(inc, nil)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/"+inc.ID.String()+"/verify", bytes.NewBufferString(`{"verified":true}`), withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
}

func TestVerifyIncident_MissingFlag(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().VerifyIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/"+uuid.NewString()+"/verify", bytes.NewBufferString(`{}`), withKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDispatchRanger_Success(t *testing.T) {
	router, m := newTestHandler(t)
	inc := sampleIncident()
	rangerID := uuid.New()
	eta := 8
	inc.Status = models.StatusAssigned
	inc.AssignedRangerID = &rangerID
	inc.ETAMinutes = &eta

	m.incidents.EXPECT().DispatchRanger(gomock.Any(), inc.ID).Return(&models.DispatchResult{
		Incident:   inc,
		Ranger:     models.Ranger{ID: rangerID, Name: "Wanjiru", PhoneNumber: "+254700111222", Status: models.RangerEnRoute},
		DistanceKm: 5.2,
		ETAMinutes: eta,
	}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+inc.ID.String()+"/dispatch", nil, withKey)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, rangerID, resp.Ranger.ID)
	assert.Equal(t, "assigned", resp.Incident.Status)
	assert.Equal(t, 8, resp.ETAMinutes)
}

func TestDispatchRanger_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantReason string
	}{
		{"no ranger", fmt.Errorf("service: %w", dispatch.ErrNoRangerAvailable), "no_ranger_available"},
		{"already assigned", fmt.Errorf("service: %w", repository.ErrAssignmentConflict), "already_assigned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestHandler(t)
			id := uuid.New()
			m.incidents.EXPECT().DispatchRanger(gomock.Any(), id).Return(nil, tt.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+id.String()+"/dispatch", nil, withKey)

			assert.Equal(t, http.StatusConflict, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantReason, resp["reason"])
		})
	}
}

func TestTransitionIncident(t *testing.T) {
	router, m := newTestHandler(t)
	inc := sampleIncident()
	inc.Status = models.StatusOnScene

	m.incidents.EXPECT().TransitionIncident(gomock.Any(), inc.ID, models.StatusOnScene).Return(inc, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+inc.ID.String()+"/transitions", bytes.NewBufferString(`{"status":"on_scene"}`), withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"on_scene"`)
}

func TestTransitionIncident_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid transition", fmt.Errorf("service: %w", lifecycle.ErrInvalidTransition), http.StatusUnprocessableEntity},
		{"ranger missing", fmt.Errorf("service: %w", lifecycle.ErrRangerNotAssigned), http.StatusUnprocessableEntity},
		{"concurrent change", fmt.Errorf("service: %w", repository.ErrStatusConflict), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestHandler(t)
			id := uuid.New()
			m.incidents.EXPECT().TransitionIncident(gomock.Any(), id, models.StatusResolved).Return(nil, tt.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+id.String()+"/transitions", bytes.NewBufferString(`{"status":"resolved"}`), withKey)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestTransitionIncident_UnknownStatus(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().TransitionIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+uuid.NewString()+"/transitions", bytes.NewBufferString(`{"status":"closed"}`), withKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown incident status")
}

func TestTransitionIncident_StatusIsCaseInsensitive(t *testing.T) {
	router, m := newTestHandler(t)
	inc := sampleIncident()
	inc.Status = models.StatusFalseAlarm

	m.incidents.EXPECT().TransitionIncident(gomock.Any(), inc.ID, models.StatusFalseAlarm).Return(inc, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+inc.ID.String()+"/transitions", bytes.NewBufferString(`{"status":"FALSE_ALARM"}`), withKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_UnknownStatus(t *testing.T) {
	router, m := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?status=open", nil, withKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown incident status")
}

func TestBroadcastAlert(t *testing.T) {
	router, m := newTestHandler(t)
	id := uuid.New()

	m.broadcasts.EXPECT().BroadcastAlert(gomock.Any(), id, 5.0, "").Return(&broadcast.Result{
		Broadcast: models.AlertBroadcast{ID: uuid.New(), IncidentID: id, Message: "ALERT", RadiusKm: 5},
		Attempted: 2,
		Sent:      0,
		Failed:    2,
	}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+id.String()+"/broadcast", bytes.NewBufferString(`{"radius_km":5}`), withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp BroadcastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{}, resp.Recipients)
	assert.Equal(t, 2, resp.Failed)
}

func TestBroadcastAlert_RadiusTooLarge(t *testing.T) {
	router, m := newTestHandler(t)
	id := uuid.New()

	m.broadcasts.EXPECT().BroadcastAlert(gomock.Any(), id, 500.0, "").
		Return(nil, fmt.Errorf("service: %w: 500 km", broadcast.ErrInvalidRadius))

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+id.String()+"/broadcast", bytes.NewBufferString(`{"radius_km":500}`), withKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListResponses(t *testing.T) {
	router, m := newTestHandler(t)
	id := uuid.New()

	m.responses.EXPECT().ListResponses(gomock.Any(), id).Return([]models.CommunityResponse{
		{ID: uuid.New(), IncidentID: id, PhoneNumber: "+254700000001", Response: models.ResponseSafe, Channel: models.ChannelSMS},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+id.String()+"/responses", nil, withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"response":"SAFE"`)
}

func TestCreateRanger(t *testing.T) {
	router, m := newTestHandler(t)

	m.rangers.EXPECT().RegisterRanger(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.Ranger) error {
		assert.Equal(t, "Otieno", r.Name)
		r.ID = uuid.New()
		r.Status = models.RangerAvailable
		return nil
	})

	w := makeRequest(router, http.MethodPost, "/api/v1/rangers", jsonBody(t, CreateRangerRequest{
		Name:        "Otieno",
		PhoneNumber: "+254722000333",
		Latitude:    floatPtr(-0.42),
		Longitude:   floatPtr(36.94),
	}), withKey)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"available"`)
}

func TestCreateRanger_RejectsLocalPhoneFormat(t *testing.T) {
	router, m := newTestHandler(t)
	m.rangers.EXPECT().RegisterRanger(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/rangers", jsonBody(t, CreateRangerRequest{
		Name:        "Otieno",
		PhoneNumber: "0722000333",
		Latitude:    floatPtr(-0.42),
		Longitude:   floatPtr(36.94),
	}), withKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetRangerStatus_Busy(t *testing.T) {
	router, m := newTestHandler(t)
	id := uuid.New()

	m.rangers.EXPECT().SetRangerStatus(gomock.Any(), id, models.RangerOffDuty).Return(fmt.Errorf("service: %w", repository.ErrRangerBusy))

	w := makeRequest(router, http.MethodPut, "/api/v1/rangers/"+id.String()+"/status", bytes.NewBufferString(`{"status":"off_duty"}`), withKey)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ranger_busy")
}

func TestUpdateRangerLocation(t *testing.T) {
	router, m := newTestHandler(t)
	id := uuid.New()

	m.rangers.EXPECT().UpdateRangerLocation(gomock.Any(), id, geo.Point{Lat: -0.5, Lon: 37}).Return(nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/rangers/"+id.String()+"/location", bytes.NewBufferString(`{"latitude":-0.5,"longitude":37}`), withKey)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegisterSubscriber_IsPublic(t *testing.T) {
	router, m := newTestHandler(t)

	m.broadcasts.EXPECT().RegisterSubscriber(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sub *models.CommunitySubscriber) error {
		assert.Equal(t, "+254700000009", sub.PhoneNumber)
		return nil
	})

	w := makeRequest(router, http.MethodPost, "/api/v1/subscribers", bytes.NewBufferString(`{"phone_number":"+254700000009","latitude":-0.4,"longitude":36.9}`))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetSubscriber_NotFound(t *testing.T) {
	router, m := newTestHandler(t)

	m.broadcasts.EXPECT().GetSubscriber(gomock.Any(), "+254700000009").Return(nil, repository.ErrNotFound)

	w := makeRequest(router, http.MethodGet, "/api/v1/subscribers/+254700000009", nil, withKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInboundSMS_Form(t *testing.T) {
	router, m := newTestHandler(t)
	incidentID := uuid.New()

	m.responses.EXPECT().HandleInbound(gomock.Any(), models.InboundMessage{
		From:    "+254700000001",
		Body:    "HELP #AB12CD34",
		Channel: models.ChannelSMS,
	}).Return(&models.CommunityResponse{
		ID:          uuid.New(),
		IncidentID:  incidentID,
		PhoneNumber: "+254700000001",
		Response:    models.ResponseNeedHelp,
		Channel:     models.ChannelSMS,
	}, nil)

	w := makeFormRequest(router, "/api/v1/webhooks/sms", url.Values{"from": {"+254700000001"}, "body": {"HELP #AB12CD34"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), incidentID.String())
}

func TestInboundSMS_NoIncidentIsIgnored(t *testing.T) {
	router, m := newTestHandler(t)

	m.responses.EXPECT().HandleInbound(gomock.Any(), gomock.Any()).Return(nil, service.ErrNoTargetIncident)

	w := makeRequest(router, http.MethodPost, "/api/v1/webhooks/sms", bytes.NewBufferString(`{"from":"+254700000001","body":"SAFE"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, w.Body.String())
}

func TestInboundSMS_MissingSender(t *testing.T) {
	router, m := newTestHandler(t)
	m.responses.EXPECT().HandleInbound(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/webhooks/sms", bytes.NewBufferString(`{"body":"SAFE"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUSSDCallback(t *testing.T) {
	router, m := newTestHandler(t)
	m.menu.reply = "CON Select threat:"

	w := makeFormRequest(router, "/api/v1/webhooks/ussd", url.Values{
		"sessionId":   {"ATUid_9"},
		"serviceCode": {"*384*123#"},
		"phoneNumber": {"+254733000123"},
		"text":        {"1"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CON Select threat:", w.Body.String())
	assert.Equal(t, ussd.Request{SessionID: "ATUid_9", ServiceCode: "*384*123#", PhoneNumber: "+254733000123", Text: "1"}, m.menu.got)
}

func TestUSSDCallback_InfrastructureError(t *testing.T) {
	router, m := newTestHandler(t)
	m.menu.err = errors.New("redis: connection refused")

	w := makeFormRequest(router, "/api/v1/webhooks/ussd", url.Values{"sessionId": {"s"}, "phoneNumber": {"+254733000123"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ussdUnavailable, w.Body.String())
}

func TestUSSDCallback_MissingSession(t *testing.T) {
	router, _ := newTestHandler(t)

	w := makeFormRequest(router, "/api/v1/webhooks/ussd", url.Values{"phoneNumber": {"+254733000123"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHotspots(t *testing.T) {
	router, m := newTestHandler(t)

	m.hotspots.EXPECT().SyncHotspots(gomock.Any()).Return(&models.HotspotSyncResult{Fetched: 3, Accepted: 1, Dropped: 2, Created: []uuid.UUID{uuid.New()}}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/hotspots/sync", nil, withKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fetched":3`)
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
