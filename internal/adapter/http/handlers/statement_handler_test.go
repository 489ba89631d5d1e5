package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"condopay/internal/adapter/http/handlers/mocks"
	"condopay/internal/domain/entities"
	"condopay/internal/infrastructure/statement"
	"condopay/internal/usecase"
)

func multipartStatement(t *testing.T, accountID, format, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if accountID != "" {
		if err := mw.WriteField("account_id", accountID); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if format != "" {
		if err := mw.WriteField("format", format); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestStatementHandler_Import(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importUC := mocks.NewMockIStatementImportUseCase(ctrl)
		h := NewStatementHandler(importUC, nil)

		r := gin.New()
		r.POST("/v1/statements/import", h.Import)

		body, contentType := multipartStatement(t, "acc-1", "csv", "", "")
		req := httptest.NewRequest(http.MethodPost, "/v1/statements/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("import summary returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importUC := mocks.NewMockIStatementImportUseCase(ctrl)
		h := NewStatementHandler(importUC, nil)

		fileContent := "Data;Historico;Valor\n10/03/2025;PIX RECEBIDO;450,00\n"
		importUC.EXPECT().ImportStatement(gomock.Any(), "acc-1", []byte(fileContent), statement.FormatCSV).Return(usecase.ImportResult{Imported: 1}, nil)

		r := gin.New()
		r.POST("/v1/statements/import", h.Import)

		body, contentType := multipartStatement(t, "acc-1", "csv", "extrato.csv", fileContent)
		req := httptest.NewRequest(http.MethodPost, "/v1/statements/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var result usecase.ImportResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if result.Imported != 1 {
			t.Fatalf("imported = %d", result.Imported)
		}
	})

	t.Run("usecase validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importUC := mocks.NewMockIStatementImportUseCase(ctrl)
		h := NewStatementHandler(importUC, nil)

		importUC.EXPECT().ImportStatement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ImportResult{}, usecase.ErrInvalidAccountID)

		r := gin.New()
		r.POST("/v1/statements/import", h.Import)

		body, contentType := multipartStatement(t, "", "csv", "extrato.csv", "Data;Historico;Valor\n")
		req := httptest.NewRequest(http.MethodPost, "/v1/statements/import", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestStatementHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	importUC := mocks.NewMockIStatementImportUseCase(ctrl)
	h := NewStatementHandler(importUC, nil)

	entries := []entities.StatementEntry{{
		ID:          "e-1",
		AccountID:   "acc-1",
		Amount:      decimal.RequireFromString("450.00"),
		Direction:   entities.EntryDirectionCredito,
		Category:    entities.EntryCategoryPix,
		ReconStatus: entities.ReconciliationStatusPendente,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}}
	importUC.EXPECT().ListEntries(gomock.Any(), "acc-1", entities.ReconciliationStatusPendente).Return(entries, nil)

	r := gin.New()
	r.GET("/v1/statements", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/statements?account_id=acc-1&reconciliation_status=pendente", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "e-1" {
		t.Fatalf("body = %v", body)
	}
}

func TestStatementHandler_Reconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("entry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconUC := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewStatementHandler(nil, reconUC)

		reconUC.EXPECT().ReconcileByID(gomock.Any(), "e-404").Return(entities.StatementEntry{}, usecase.ErrStatementEntryNotFound)

		r := gin.New()
		r.POST("/v1/statements/:id/reconcile", h.Reconcile)

		req := httptest.NewRequest(http.MethodPost, "/v1/statements/e-404/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("reconciled entry returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconUC := mocks.NewMockIReconciliationUseCase(ctrl)
		h := NewStatementHandler(nil, reconUC)

		reconUC.EXPECT().ReconcileByID(gomock.Any(), "e-1").DoAndReturn(
			func(_ context.Context, id string) (entities.StatementEntry, error) {
				return entities.StatementEntry{ID: id, ReconStatus: entities.ReconciliationStatusConciliado, TransactionID: "tx-1", Confidence: 85}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/statements/:id/reconcile", h.Reconcile)

		req := httptest.NewRequest(http.MethodPost, "/v1/statements/e-1/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["recon_status"] != "conciliado" {
			t.Fatalf("body = %v", body)
		}
	})
}
