package response

import (
	"time"

	"condopay/internal/domain/entities"
)

type GatewayEventResponse struct {
	At            time.Time `json:"at"`
	GatewayStatus string    `json:"gateway_status"`
	StatusDetail  string    `json:"status_detail,omitempty"`
	MappedStatus  string    `json:"mapped_status"`
	Source        string    `json:"source"`
}

type TransactionResponse struct {
	ID               string                 `json:"id"`
	GatewayPaymentID string                 `json:"gateway_payment_id"`
	Method           string                 `json:"method"`
	Amount           string                 `json:"amount"`
	Status           string                 `json:"status"`
	ReceivableID     string                 `json:"receivable_id,omitempty"`
	AccountID        string                 `json:"account_id"`
	IdentifierRef    string                 `json:"identifier_ref,omitempty"`
	EventLog         []GatewayEventResponse `json:"event_log,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	ConfirmedAt      *time.Time             `json:"confirmed_at,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	events := make([]GatewayEventResponse, 0, len(t.EventLog))
	for _, ev := range t.EventLog {
		events = append(events, GatewayEventResponse{
			At:            ev.At,
			GatewayStatus: ev.GatewayStatus,
			StatusDetail:  ev.StatusDetail,
			MappedStatus:  string(ev.MappedStatus),
			Source:        ev.Source,
		})
	}
	return TransactionResponse{
		ID:               t.ID,
		GatewayPaymentID: t.GatewayPaymentID,
		Method:           string(t.Method),
		Amount:           t.Amount.String(),
		Status:           string(t.Status),
		ReceivableID:     t.ReceivableID,
		AccountID:        t.AccountID,
		IdentifierRef:    t.IdentifierRef,
		EventLog:         events,
		CreatedAt:        t.CreatedAt,
		ConfirmedAt:      t.ConfirmedAt,
	}
}
