package request

import (
	"github.com/shopspring/decimal"

	"condopay/internal/domain/entities"
	"condopay/internal/usecase"
)

// RegisterTransactionRequest is sent by the condominium CRUD layer when a
// payment attempt is initiated against a receivable.
type RegisterTransactionRequest struct {
	GatewayPaymentID string          `json:"gateway_payment_id" binding:"required"`
	Method           string          `json:"method" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	ReceivableID     string          `json:"receivable_id"`
	AccountID        string          `json:"account_id" binding:"required"`
	IdentifierRef    string          `json:"identifier_ref"`
}

func (r RegisterTransactionRequest) ToInput() usecase.RegisterTransactionInput {
	return usecase.RegisterTransactionInput{
		GatewayPaymentID: r.GatewayPaymentID,
		Method:           entities.PaymentMethod(r.Method),
		Amount:           r.Amount,
		ReceivableID:     r.ReceivableID,
		AccountID:        r.AccountID,
		IdentifierRef:    r.IdentifierRef,
	}
}
