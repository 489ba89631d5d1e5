package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the internal lifecycle of a payment attempt.
//
// Gateway statuses are mapped onto this enum by the webhook usecase; the
// gateway vocabulary is never persisted as-is.

type PaymentStatus string

const (
	PaymentStatusPendente    PaymentStatus = "pendente"
	PaymentStatusAprovado    PaymentStatus = "aprovado"
	PaymentStatusProcessando PaymentStatus = "processando"
	PaymentStatusRejeitado   PaymentStatus = "rejeitado"
	PaymentStatusCancelado   PaymentStatus = "cancelado"
	PaymentStatusEstornado   PaymentStatus = "estornado"
)

// MapGatewayStatus converts a Mercado Pago payment status into the internal
// enum. Unrecognized values stay pendente so the polling fallback keeps
// re-checking them instead of parking the transaction in a dead state.
func MapGatewayStatus(gatewayStatus string) PaymentStatus {
	switch gatewayStatus {
	case "pending":
		return PaymentStatusPendente
	case "approved", "authorized":
		return PaymentStatusAprovado
	case "in_process", "in_mediation":
		return PaymentStatusProcessando
	case "rejected":
		return PaymentStatusRejeitado
	case "cancelled":
		return PaymentStatusCancelado
	case "refunded", "charged_back":
		return PaymentStatusEstornado
	default:
		return PaymentStatusPendente
	}
}

// IsTerminal reports whether the status never changes again on its own.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusAprovado, PaymentStatusRejeitado, PaymentStatusCancelado, PaymentStatusEstornado:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodBoleto PaymentMethod = "boleto"
	PaymentMethodCartao PaymentMethod = "cartao"
)

// GatewayEvent is one entry of a transaction's append-only event log.
//
// RawPayload keeps the gateway response untouched for audit; business logic
// only reads the fields re-fetched from the gateway, never the raw blob.
type GatewayEvent struct {
	At            time.Time       `json:"at"`
	GatewayStatus string          `json:"gateway_status"`
	StatusDetail  string          `json:"status_detail,omitempty"`
	MappedStatus  PaymentStatus   `json:"mapped_status"`
	Source        string          `json:"source"`
	RawPayload    json.RawMessage `json:"raw_payload,omitempty"`
}

// Event sources recorded on the log.
const (
	EventSourceWebhook = "webhook"
	EventSourceRetry   = "retry"
	EventSourcePolling = "polling"
)

// Transaction is one attempted payment against a Receivable.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (gateway_payment_id-index): gateway_payment_id
//   - GSI2 (status-index): status (used by the polling fallback)
//
// Transactions are never deleted; the event log preserves every gateway
// notification that touched the record.

type Transaction struct {
	ID               string          `json:"id"`
	GatewayPaymentID string          `json:"gateway_payment_id"`
	Method           PaymentMethod   `json:"method"`
	Amount           decimal.Decimal `json:"amount"`
	Status           PaymentStatus   `json:"status"`
	ReceivableID     string          `json:"receivable_id"`
	AccountID        string          `json:"account_id"`

	// IdentifierRef holds the payment-method-specific identifier used by the
	// reconciliation engine: the PIX end-to-end id or the boleto nosso número.
	IdentifierRef string `json:"identifier_ref,omitempty"`

	EventLog    []GatewayEvent `json:"event_log,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ConfirmedAt *time.Time     `json:"confirmed_at,omitempty"`
}
