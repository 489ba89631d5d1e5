package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"condopay/internal/adapter/http/handlers/mocks"
	"condopay/internal/domain/entities"
	"condopay/internal/usecase"
)

func TestWebhookDeliveryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookRetryUseCase(ctrl)
		h := NewWebhookDeliveryHandler(uc)

		r := gin.New()
		r.GET("/v1/webhook-deliveries", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhook-deliveries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lists by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookRetryUseCase(ctrl)
		h := NewWebhookDeliveryHandler(uc)

		next := time.Date(2025, 3, 10, 12, 4, 0, 0, time.UTC)
		uc.EXPECT().ListByStatus(gomock.Any(), entities.DeliveryStatusFalhaPermanente).Return([]entities.WebhookDelivery{{
			ID:            "d-1",
			Provider:      "mercadopago",
			Attempts:      5,
			MaxAttempts:   5,
			Status:        entities.DeliveryStatusFalhaPermanente,
			NextAttemptAt: &next,
		}}, nil)

		r := gin.New()
		r.GET("/v1/webhook-deliveries", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/webhook-deliveries?status=falha_permanente", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "d-1" || body[0]["status"] != "falha_permanente" {
			t.Fatalf("body = %v", body)
		}
	})
}

func TestWebhookDeliveryHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookRetryUseCase(ctrl)
		h := NewWebhookDeliveryHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "d-404").Return(entities.WebhookDelivery{}, usecase.ErrDeliveryNotFound)

		r := gin.New()
		r.POST("/v1/webhook-deliveries/:id/cancel", h.Cancel)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook-deliveries/d-404/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already terminal maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookRetryUseCase(ctrl)
		h := NewWebhookDeliveryHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "d-1").Return(entities.WebhookDelivery{}, entities.ErrDeliveryNotPending)

		r := gin.New()
		r.POST("/v1/webhook-deliveries/:id/cancel", h.Cancel)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook-deliveries/d-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookRetryUseCase(ctrl)
		h := NewWebhookDeliveryHandler(uc)

		uc.EXPECT().Cancel(gomock.Any(), "d-1").Return(entities.WebhookDelivery{ID: "d-1", Status: entities.DeliveryStatusCancelado}, nil)

		r := gin.New()
		r.POST("/v1/webhook-deliveries/:id/cancel", h.Cancel)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhook-deliveries/d-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "cancelado" {
			t.Fatalf("body = %v", body)
		}
	})
}
