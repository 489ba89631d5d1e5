package response

import (
	"time"

	"condopay/internal/domain/entities"
)

type StatementEntryResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	ExternalDocID string    `json:"external_doc_id"`
	Date          time.Time `json:"date"`
	Amount        string    `json:"amount"`
	Direction     string    `json:"direction"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ReconStatus   string    `json:"recon_status"`
	Confidence    int       `json:"confidence"`
	TransactionID string    `json:"transaction_id,omitempty"`
	ImportedAt    time.Time `json:"imported_at"`
}

func FromStatementEntry(e entities.StatementEntry) StatementEntryResponse {
	return StatementEntryResponse{
		ID:            e.ID,
		AccountID:     e.AccountID,
		ExternalDocID: e.ExternalDocID,
		Date:          e.Date,
		Amount:        e.Amount.String(),
		Direction:     string(e.Direction),
		Description:   e.Description,
		Category:      string(e.Category),
		ReconStatus:   string(e.ReconStatus),
		Confidence:    e.Confidence,
		TransactionID: e.TransactionID,
		ImportedAt:    e.ImportedAt,
	}
}

func FromStatementEntries(entries []entities.StatementEntry) []StatementEntryResponse {
	out := make([]StatementEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromStatementEntry(e))
	}
	return out
}
