package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"condopay/internal/adapter/http/dto/response"
	"condopay/internal/domain/entities"
	"condopay/internal/infrastructure/statement"
	"condopay/internal/usecase"
	"condopay/pkg"
)

type StatementHandler struct {
	importUsecase    usecase.IStatementImportUseCase
	reconcileUsecase usecase.IReconciliationUseCase
}

func NewStatementHandler(importUC usecase.IStatementImportUseCase, reconcileUC usecase.IReconciliationUseCase) *StatementHandler {
	return &StatementHandler{importUsecase: importUC, reconcileUsecase: reconcileUC}
}

// maxStatementSize caps uploads; bank statements are far smaller than this.
const maxStatementSize = 10 << 20

// Import processes POST /v1/statements/import.
//
// Accepts a multipart form with the statement under "file", plus "account_id"
// and "format" (ofx or csv) fields.
//
// @Summary      Import a bank statement file
// @Tags         statements
// @Accept       multipart/form-data
// @Produce      json
// @Param        account_id formData string true "Condominium account id"
// @Param        format     formData string true "Statement format (ofx or csv)"
// @Param        file       formData file   true "Statement file"
// @Success      200 {object} usecase.ImportResult
// @Failure      400 {object} pkg.HTTPError
// @Router       /statements/import [post]
func (h *StatementHandler) Import(c *gin.Context) {
	accountID := c.PostForm("account_id")
	format := statement.Format(c.PostForm("format"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_STATEMENT_FILE", "Statement file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fileHeader.Size > maxStatementSize {
		appErr := pkg.NewDomainErrorSimple("STATEMENT_TOO_LARGE", "Statement file exceeds the size limit", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("STATEMENT_READ_FAILED", "Could not open statement file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxStatementSize))
	if err != nil {
		appErr := pkg.NewDomainError("STATEMENT_READ_FAILED", "Could not read statement file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[statement][handler] import requested account_id=%s format=%s size=%d", accountID, format, len(data))

	result, err := h.importUsecase.ImportStatement(c.Request.Context(), accountID, data, format)
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

// List processes GET /v1/statements.
//
// @Summary      List statement entries for an account
// @Tags         statements
// @Produce      json
// @Param        account_id            query string true  "Condominium account id"
// @Param        reconciliation_status query string false "Filter by reconciliation status"
// @Success      200 {array} response.StatementEntryResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /statements [get]
func (h *StatementHandler) List(c *gin.Context) {
	accountID := c.Query("account_id")
	reconStatus := entities.ReconciliationStatus(c.Query("reconciliation_status"))

	entries, err := h.importUsecase.ListEntries(c.Request.Context(), accountID, reconStatus)
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatementEntries(entries))
}

// Reconcile processes POST /v1/statements/:id/reconcile.
//
// @Summary      Reconcile a statement entry against registered transactions
// @Tags         statements
// @Produce      json
// @Param        id path string true "Statement entry id"
// @Success      200 {object} response.StatementEntryResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /statements/{id}/reconcile [post]
func (h *StatementHandler) Reconcile(c *gin.Context) {
	id := c.Param("id")

	entry, err := h.reconcileUsecase.ReconcileByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapStatementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStatementEntry(entry))
}

func mapStatementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountID):
		return pkg.NewDomainError("INVALID_ACCOUNT_ID", "A valid account id is required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyStatementFile):
		return pkg.NewDomainError("EMPTY_STATEMENT_FILE", "Statement file has no content", err, http.StatusBadRequest)
	case errors.Is(err, statement.ErrUnsupportedFormat):
		return pkg.NewDomainError("UNSUPPORTED_FORMAT", "Statement format must be ofx or csv", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatementEntryNotFound):
		return pkg.NewDomainError("STATEMENT_ENTRY_NOT_FOUND", "Statement entry not found", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("STATEMENT_OPERATION_FAILED", "Could not complete statement operation", err, http.StatusInternalServerError)
	}
}
