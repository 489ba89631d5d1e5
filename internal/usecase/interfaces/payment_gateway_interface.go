package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// GatewayPayment is the authoritative payment detail re-fetched from the
// provider. Webhook bodies are only a trigger; amount/status decisions are
// always taken from this structure.
type GatewayPayment struct {
	ID                string
	Status            string
	StatusDetail      string
	TransactionAmount decimal.Decimal
	PayerEmail        string

	// Raw is the full provider response, kept for the transaction event log.
	Raw json.RawMessage
}

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
type IPaymentGateway interface {
	GetPayment(ctx context.Context, gatewayPaymentID string) (GatewayPayment, error)
}
