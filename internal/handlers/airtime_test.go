package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"xpressairtime/internal/config"
	"xpressairtime/internal/models"
	"xpressairtime/internal/services/airtime"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const purchaseBody = `{"requestId":"REQ-1","uniqueCode":"MTN_24207","details":{"phoneNumber":"08033333333","amount":100}}`

func TestAirtimeHandler_Purchase(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockAirtimeService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "provider success",
			body: purchaseBody,
			setup: func(m *MockAirtimeService) {
				m.On("PurchaseAirtime", mock.Anything, mock.MatchedBy(func(r *models.AirtimeRequest) bool {
					return r.RequestID == "REQ-1" && r.Details.PhoneNumber == "08033333333"
				})).Return(&models.AirtimeResponse{ResponseCode: models.ProviderSuccessCode, ResponseMessage: "Successful"}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   models.ProviderSuccessCode,
		},
		{
			name: "provider rejection is still 200",
			body: purchaseBody,
			setup: func(m *MockAirtimeService) {
				m.On("PurchaseAirtime", mock.Anything, mock.Anything).
					Return(&models.AirtimeResponse{ResponseCode: models.FailedTransactionCode, ResponseMessage: models.FailedTransactionMessage}, nil)
			},
			wantStatus: http.StatusOK,
			wantCode:   models.FailedTransactionCode,
		},
		{
			name:       "non positive amount",
			body:       `{"requestId":"REQ-1","uniqueCode":"MTN_24207","details":{"phoneNumber":"08033333333","amount":0}}`,
			setup:      func(*MockAirtimeService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing request id",
			body:       `{"uniqueCode":"MTN_24207","details":{"phoneNumber":"08033333333","amount":10}}`,
			setup:      func(*MockAirtimeService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "request could not be built",
			body: purchaseBody,
			setup: func(m *MockAirtimeService) {
				m.On("PurchaseAirtime", mock.Anything, mock.Anything).Return(nil, airtime.ErrSerialization)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAirtimeService)
			tt.setup(svc)
			app := fiber.New()
			app.Post("/api/airtime/purchase", NewAirtimeHandler(svc, nil).Purchase)

			status, body := doJSON(t, app, fiber.MethodPost, "/api/airtime/purchase", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["responseCode"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAirtimeHandler_ProviderDownMapsToError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer provider.Close()

	svc := airtime.NewService(config.AirtimeConfig{
		APIURL:     provider.URL,
		PublicKey:  "pub",
		PrivateKey: "priv",
	}, airtime.NewClient(5*time.Second), nil, nil)

	app := fiber.New()
	app.Post("/api/airtime/purchase", NewAirtimeHandler(svc, nil).Purchase)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/airtime/purchase", purchaseBody)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.TransportErrorCode, body["responseCode"])
	assert.Contains(t, body["responseMessage"], "502")
}

func TestHealthHandler(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheckFunc
		wantStatus int
		wantState  string
	}{
		{name: "all up", checks: map[string]HealthCheckFunc{"database": healthy, "redis": healthy}, wantStatus: http.StatusOK, wantState: "ok"},
		{name: "redis down", checks: map[string]HealthCheckFunc{"database": healthy, "redis": broken}, wantStatus: http.StatusServiceUnavailable, wantState: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler("test", tt.checks).HealthCheck)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body struct {
				Status   string            `json:"status"`
				Services map[string]string `json:"services"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantState, body.Status)
			assert.Equal(t, "connected", body.Services["database"])
		})
	}
}
