package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableStatus is the billing state of an expected payment.
//
// Once pago, a receivable never regresses to pendente/atrasado through this
// subsystem; only an administrative action on the CRUD side may reopen it.

type ReceivableStatus string

const (
	ReceivableStatusPendente ReceivableStatus = "pendente"
	ReceivableStatusPago     ReceivableStatus = "pago"
	ReceivableStatusAtrasado ReceivableStatus = "atrasado"
)

// Receivable is an amount a resident/unit owes by a due date.
//
// The record is owned by the condominium CRUD layer; this subsystem only
// mutates status, payment_date, payment_method and transaction_id, and only
// through the idempotent SetPaid contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (account_id-index): account_id

type Receivable struct {
	ID         string           `json:"id"`
	AccountID  string           `json:"account_id"`
	ResidentID string           `json:"resident_id"`
	UnitID     string           `json:"unit_id,omitempty"`
	Amount     decimal.Decimal  `json:"amount"`
	DueDate    time.Time        `json:"due_date"`
	Status     ReceivableStatus `json:"status"`

	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
}
