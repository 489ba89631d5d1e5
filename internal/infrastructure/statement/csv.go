package statement

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"condopay/internal/domain/entities"
)

// Delimited-text statements carry no stable external id, so the dedup key is
// a content hash over date, amount, description and row index. The hash is
// deterministic: re-importing the same file yields the same keys and the
// importer skips every line.

func parseCSV(data []byte) (Result, error) {
	var res Result

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("reading csv header: %w", err)
	}
	cols, err := mapCSVColumns(header)
	if err != nil {
		return Result{}, err
	}

	line := 1
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: err.Error()})
			continue
		}
		row++

		draft, rowErr := buildCSVDraft(record, cols, row)
		if rowErr != "" {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: rowErr})
			continue
		}
		res.Drafts = append(res.Drafts, draft)
	}

	return res, nil
}

type csvColumns struct {
	data      int
	historico int
	valor     int
	tipo      int
}

func mapCSVColumns(header []string) (csvColumns, error) {
	cols := csvColumns{data: -1, historico: -1, valor: -1, tipo: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "data":
			cols.data = i
		case "historico", "histórico", "descricao", "descrição":
			cols.historico = i
		case "valor":
			cols.valor = i
		case "tipo":
			cols.tipo = i
		}
	}
	if cols.data < 0 || cols.historico < 0 || cols.valor < 0 {
		return cols, fmt.Errorf("csv header missing required columns (Data, Historico, Valor): %v", header)
	}
	return cols, nil
}

func buildCSVDraft(record []string, cols csvColumns, row int) (EntryDraft, string) {
	if cols.data >= len(record) || cols.historico >= len(record) || cols.valor >= len(record) {
		return EntryDraft{}, fmt.Sprintf("row has %d fields, expected at least %d", len(record), cols.valor+1)
	}

	date, err := parseCSVDate(record[cols.data])
	if err != nil {
		return EntryDraft{}, fmt.Sprintf("invalid Data %q", record[cols.data])
	}

	amount, err := parseAmount(record[cols.valor])
	if err != nil {
		return EntryDraft{}, fmt.Sprintf("invalid Valor %q", record[cols.valor])
	}

	direction := directionFromAmount(amount)
	if cols.tipo >= 0 && cols.tipo < len(record) {
		switch strings.ToUpper(strings.TrimSpace(record[cols.tipo])) {
		case "C":
			direction = entities.EntryDirectionCredito
		case "D":
			direction = entities.EntryDirectionDebito
		case "":
		default:
			return EntryDraft{}, fmt.Sprintf("invalid Tipo %q", record[cols.tipo])
		}
	}

	description := strings.TrimSpace(record[cols.historico])

	return EntryDraft{
		ExternalDocID: csvDedupKey(date, amount.Abs().String(), description, row),
		Date:          date,
		Amount:        amount.Abs(),
		Direction:     direction,
		Description:   description,
	}, ""
}

func csvDedupKey(date time.Time, amount, description string, row int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d", date.Format("2006-01-02"), amount, description, row)))
	return "csv-" + hex.EncodeToString(sum[:16])
}

func parseCSVDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range []string{"02/01/2006", "2006-01-02", "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func sniffDelimiter(data []byte) rune {
	end := bytes.IndexByte(data, '\n')
	if end < 0 {
		end = len(data)
	}
	if bytes.ContainsRune(data[:end], ';') {
		return ';'
	}
	return ','
}
