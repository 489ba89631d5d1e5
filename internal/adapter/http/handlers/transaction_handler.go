package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"condopay/internal/adapter/http/dto/request"
	"condopay/internal/adapter/http/dto/response"
	"condopay/internal/usecase"
	"condopay/pkg"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// Register processes POST /v1/transactions.
//
// @Summary      Register an expected payment transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction body request.RegisterTransactionRequest true "Transaction data"
// @Success      201 {object} response.TransactionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /transactions [post]
func (h *TransactionHandler) Register(c *gin.Context) {
	var req request.RegisterTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST_BODY", "Invalid transaction payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.usecase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] transaction registered id=%s gateway_payment_id=%s", tx.ID, tx.GatewayPaymentID)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// GetByID processes GET /v1/transactions/:id.
//
// @Summary      Fetch a transaction with its event log
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction id"
// @Success      200 {object} response.TransactionResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	tx, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainError("TRANSACTION_NOT_FOUND", "Transaction not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionAlreadyExists):
		return pkg.NewDomainError("TRANSACTION_ALREADY_EXISTS", "A transaction for this gateway payment already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransactionAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGatewayPaymentRef):
		return pkg.NewDomainError("INVALID_GATEWAY_PAYMENT_ID", "Gateway payment id is required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be pix, boleto or cartao", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("TRANSACTION_OPERATION_FAILED", "Could not complete transaction operation", err, http.StatusInternalServerError)
	}
}
