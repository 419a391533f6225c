package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pix-notify/internal/core/domain"
	"pix-notify/internal/core/ports"
	"pix-notify/internal/core/ports/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerFixture struct {
	pipeline *mocks.MockIngestionPipeline
	registry *mocks.MockDeviceRegistry
	router   *gin.Engine
}

func newRouter(t *testing.T, sharedSecret string) routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := routerFixture{
		pipeline: mocks.NewMockIngestionPipeline(ctrl),
		registry: mocks.NewMockDeviceRegistry(ctrl),
	}
	f.router = SetupRouter(RouterDeps{
		Pipeline:     f.pipeline,
		Registry:     f.registry,
		SharedSecret: sharedSecret,
		Logger:       zerolog.Nop(),
	})
	return f
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWebhook_Notified(t *testing.T) {
	f := newRouter(t, "")
	payload := `{"data": {"id": 123}}`

	f.pipeline.EXPECT().
		HandleWebhook(gomock.Any(), []byte(payload), "").
		Return(ports.PipelineResult{Code: ports.OutcomeNotified, PaymentID: "123"})

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "123", body["payment_id"])
}

func TestWebhook_QueryIDForwarded(t *testing.T) {
	f := newRouter(t, "")

	f.pipeline.EXPECT().
		HandleWebhook(gomock.Any(), gomock.Any(), "456").
		Return(ports.PipelineResult{Code: ports.OutcomeNotified, PaymentID: "456"})

	req := httptest.NewRequest(http.MethodPost, "/webhook?id=456", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhook_OutcomeStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		result     ports.PipelineResult
		wantStatus int
		wantOK     bool
		wantField  string
		wantValue  string
	}{
		{
			"no payment id",
			ports.PipelineResult{Code: ports.OutcomeNoPaymentID},
			http.StatusBadRequest, false, "reason", "no_payment_id",
		},
		{
			"confirm failed",
			ports.PipelineResult{Code: ports.OutcomeConfirmFailed, PaymentID: "1", Err: errors.New("timeout")},
			http.StatusBadGateway, false, "reason", "mp_fetch_failed",
		},
		{
			"not approved",
			ports.PipelineResult{Code: ports.OutcomeNotApproved, PaymentID: "1", Status: "pending"},
			http.StatusOK, false, "status", "pending",
		},
		{
			"not pix",
			ports.PipelineResult{Code: ports.OutcomeNotPix, PaymentID: "1", PaymentMethod: "visa"},
			http.StatusOK, false, "payment_method", "visa",
		},
		{
			"already processed",
			ports.PipelineResult{Code: ports.OutcomeAlreadyProcessed, PaymentID: "1"},
			http.StatusOK, true, "note", "already_processed",
		},
		{
			"notify failed",
			ports.PipelineResult{Code: ports.OutcomeNotifyFailed, PaymentID: "1", Err: errors.New("device unreachable")},
			http.StatusBadGateway, false, "reason", "esp_notify_failed",
		},
		{
			"internal error",
			ports.PipelineResult{Code: ports.OutcomeInternalError, PaymentID: "1", Err: errors.New("store down")},
			http.StatusInternalServerError, false, "reason", "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouter(t, "")
			f.pipeline.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.result)

			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{}"))
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.wantOK, body["ok"])
			assert.Equal(t, tt.wantValue, body[tt.wantField])
		})
	}
}

func TestHeartbeat_RequiresSecret(t *testing.T) {
	f := newRouter(t, "hunter2")

	req := httptest.NewRequest(http.MethodPost, "/devices/heartbeat",
		strings.NewReader(`{"device_id": "esp32-01"}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHeartbeat_OK(t *testing.T) {
	f := newRouter(t, "hunter2")

	f.registry.EXPECT().
		RecordHeartbeat(gomock.Any(), "esp32-01", gomock.Any()).
		DoAndReturn(func(_ any, _ string, hb domain.Heartbeat) error {
			assert.Equal(t, "10.0.0.7", hb.ReportedIP)
			require.NotNil(t, hb.SignalStrength)
			assert.Equal(t, -50.0, *hb.SignalStrength)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/devices/heartbeat",
		strings.NewReader(`{"device_id": "esp32-01", "ip": "10.0.0.7", "signal_strength": -50}`))
	req.Header.Set("X-Device-Secret", "hunter2")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHeartbeat_MissingDeviceID(t *testing.T) {
	f := newRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/devices/heartbeat",
		strings.NewReader(`{"ip": "10.0.0.7"}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DEV_001")
}

func TestDeviceEvent_OK(t *testing.T) {
	f := newRouter(t, "")

	f.registry.EXPECT().
		RecordEvent(gomock.Any(), "esp32-01", gomock.Any()).
		DoAndReturn(func(_ any, _ string, ev domain.DeviceEvent) error {
			assert.Equal(t, "played", ev.Type)
			assert.Equal(t, "123", ev.PaymentID)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/devices/events",
		strings.NewReader(`{"device_id": "esp32-01", "type": "played", "payment_id": "123"}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeviceLog_MissingLine(t *testing.T) {
	f := newRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/devices/logs",
		strings.NewReader(`{"device_id": "esp32-01"}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDevices(t *testing.T) {
	f := newRouter(t, "")

	f.registry.EXPECT().ListStatuses(gomock.Any()).Return([]domain.DeviceStatus{
		{DeviceID: "alpha", Online: true, LastSeenAt: time.Now()},
		{DeviceID: "bravo", Online: false, LastSeenAt: time.Now().Add(-time.Hour)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/devices", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["count"])
}

func TestGetDevice_NotFound(t *testing.T) {
	f := newRouter(t, "")

	f.registry.EXPECT().GetStatus(gomock.Any(), "ghost").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/devices/ghost", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DEV_002")
}

func TestGetDevice_OK(t *testing.T) {
	f := newRouter(t, "")

	f.registry.EXPECT().GetStatus(gomock.Any(), "esp32-01").Return(&domain.DeviceStatus{
		DeviceID:   "esp32-01",
		Online:     true,
		LastSeenAt: time.Now(),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/devices/esp32-01", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, "esp32-01", data["device_id"])
	assert.Equal(t, true, data["online"])
}

func TestHealth_NoCheckers(t *testing.T) {
	f := newRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
