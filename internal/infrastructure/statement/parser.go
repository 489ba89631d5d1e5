package statement

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"condopay/internal/domain/entities"
)

// Format identifies the statement file layout.
type Format string

const (
	FormatOFX Format = "ofx"
	FormatCSV Format = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported statement format")

// EntryDraft is a parsed statement line before persistence. The importer
// turns drafts into StatementEntry records; the parser itself has no side
// effects.
type EntryDraft struct {
	ExternalDocID string
	Date          time.Time
	Amount        decimal.Decimal
	Direction     entities.EntryDirection
	Description   string
}

// RowError is a single unparseable line. Row failures never abort a parse;
// they are collected and reported with the batch result.
type RowError struct {
	Line int
	Err  string
}

// Result is the outcome of parsing one file.
type Result struct {
	Drafts    []EntryDraft
	RowErrors []RowError
}

// Parse converts raw statement bytes into drafts for the declared format.
func Parse(data []byte, format Format) (Result, error) {
	switch format {
	case FormatOFX:
		return parseOFX(data)
	case FormatCSV:
		return parseCSV(data)
	default:
		return Result{}, ErrUnsupportedFormat
	}
}

// parseAmount accepts both "1234.56" and the Brazilian "1.234,56" notation.
func parseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func directionFromAmount(amount decimal.Decimal) entities.EntryDirection {
	if amount.IsNegative() {
		return entities.EntryDirectionDebito
	}
	return entities.EntryDirectionCredito
}
