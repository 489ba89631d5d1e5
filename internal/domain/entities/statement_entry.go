package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type EntryDirection string

const (
	EntryDirectionCredito EntryDirection = "credito"
	EntryDirectionDebito  EntryDirection = "debito"
)

type EntryCategory string

const (
	EntryCategoryPix           EntryCategory = "pix"
	EntryCategoryBoleto        EntryCategory = "boleto"
	EntryCategoryTransferencia EntryCategory = "transferencia"
	EntryCategoryTarifa        EntryCategory = "tarifa"
	EntryCategoryFolha         EntryCategory = "folha"
	EntryCategoryOutros        EntryCategory = "outros"
)

// categoryKeywords maps description keywords to categories. Order matters:
// the first matching group wins.
var categoryKeywords = []struct {
	category EntryCategory
	keywords []string
}{
	{EntryCategoryPix, []string{"pix"}},
	{EntryCategoryBoleto, []string{"boleto", "bloqueto", "cobranca"}},
	{EntryCategoryTransferencia, []string{"ted", "doc", "transferencia", "transf"}},
	{EntryCategoryTarifa, []string{"tarifa", "taxa", "iof", "cesta"}},
	{EntryCategoryFolha, []string{"folha", "salario", "pagto func"}},
}

// CategorizeDescription assigns an automatic category from the free-text
// statement description. Case-insensitive, first match wins.
func CategorizeDescription(description string) EntryCategory {
	normalized := strings.ToLower(description)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(normalized, kw) {
				return group.category
			}
		}
	}
	return EntryCategoryOutros
}

type ReconciliationStatus string

const (
	ReconciliationStatusPendente   ReconciliationStatus = "pendente"
	ReconciliationStatusConciliado ReconciliationStatus = "conciliado"
)

// StatementEntry is one line of an imported bank statement.
//
// Storage model (DynamoDB):
//   - PK: account_id
//   - SK: external_doc_id
//
// The composite key makes (account, external document id) unique, which is
// what keeps re-imports of the same file from duplicating entries.

type StatementEntry struct {
	ID            string               `json:"id"`
	AccountID     string               `json:"account_id"`
	ExternalDocID string               `json:"external_doc_id"`
	Date          time.Time            `json:"date"`
	Amount        decimal.Decimal      `json:"amount"`
	Direction     EntryDirection       `json:"direction"`
	Description   string               `json:"description"`
	Category      EntryCategory        `json:"category"`
	ReconStatus   ReconciliationStatus `json:"recon_status"`

	// Confidence keeps the best reconciliation score seen for the entry,
	// even when it stayed below the auto-match threshold.
	Confidence    int       `json:"confidence"`
	TransactionID string    `json:"transaction_id,omitempty"`
	ImportedAt    time.Time `json:"imported_at"`
}
