package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"condopay/internal/adapter/http/handlers/mocks"
	"condopay/internal/domain/entities"
	"condopay/internal/usecase"
)

func TestTransactionHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.POST("/v1/transactions", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrTransactionAlreadyExists)

		r := gin.New()
		r.POST("/v1/transactions", h.Register)

		body := `{"gateway_payment_id":"123","method":"pix","amount":"450.00","account_id":"acc-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		uc.EXPECT().Register(gomock.Any(), gomock.AssignableToTypeOf(usecase.RegisterTransactionInput{})).DoAndReturn(
			func(_ any, in usecase.RegisterTransactionInput) (entities.Transaction, error) {
				if in.GatewayPaymentID != "123" || in.Method != entities.PaymentMethodPix {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Amount.Equal(decimal.RequireFromString("450.00")) {
					t.Fatalf("amount = %s", in.Amount)
				}
				return entities.Transaction{ID: "tx-1", GatewayPaymentID: in.GatewayPaymentID, Status: entities.PaymentStatusPendente, Amount: in.Amount}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/transactions", h.Register)

		body := `{"gateway_payment_id":"123","method":"pix","amount":"450.00","account_id":"acc-1","identifier_ref":"E2E123"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "tx-1" || resp["status"] != "pendente" {
			t.Fatalf("body = %v", resp)
		}
	})
}

func TestTransactionHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "tx-404").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		r := gin.New()
		r.GET("/v1/transactions/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/tx-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found with event log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{
			ID:     "tx-1",
			Status: entities.PaymentStatusAprovado,
			EventLog: []entities.GatewayEvent{
				{GatewayStatus: "pending", MappedStatus: entities.PaymentStatusPendente, Source: entities.EventSourceWebhook},
				{GatewayStatus: "approved", MappedStatus: entities.PaymentStatusAprovado, Source: entities.EventSourceRetry},
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/transactions/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			ID       string `json:"id"`
			EventLog []struct {
				GatewayStatus string `json:"gateway_status"`
				Source        string `json:"source"`
			} `json:"event_log"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.EventLog) != 2 || resp.EventLog[1].Source != "retry" {
			t.Fatalf("event log = %+v", resp.EventLog)
		}
	})
}
