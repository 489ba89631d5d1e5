package statement

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"
)

// OFX 1.x is SGML: tags usually have no closing pair and one value per line.
// XML parsers reject most real bank exports, so this is a line-oriented tag
// scanner restricted to the transaction fields we consume: DTPOSTED, TRNAMT,
// FITID, MEMO/NAME and TRNTYPE.

type ofxTransaction struct {
	line    int
	trnType string
	posted  string
	amount  string
	fitID   string
	memo    string
	name    string
}

func parseOFX(data []byte) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *ofxTransaction
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "<STMTTRN>"):
			current = &ofxTransaction{line: lineNo}
		case strings.HasPrefix(upper, "</STMTTRN>"):
			if current != nil {
				finishOFXTransaction(&res, current)
				current = nil
			}
		default:
			if current == nil {
				continue
			}
			tag, value, ok := splitOFXTag(line)
			if !ok {
				continue
			}
			switch tag {
			case "TRNTYPE":
				current.trnType = value
			case "DTPOSTED":
				current.posted = value
			case "TRNAMT":
				current.amount = value
			case "FITID":
				current.fitID = value
			case "MEMO":
				current.memo = value
			case "NAME":
				current.name = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, err
	}
	if current != nil {
		// Unterminated block at EOF; some exports omit the last closing tag.
		finishOFXTransaction(&res, current)
	}

	return res, nil
}

func finishOFXTransaction(res *Result, tx *ofxTransaction) {
	if tx.fitID == "" {
		res.RowErrors = append(res.RowErrors, RowError{Line: tx.line, Err: "missing FITID"})
		return
	}

	date, err := parseOFXDate(tx.posted)
	if err != nil {
		res.RowErrors = append(res.RowErrors, RowError{Line: tx.line, Err: fmt.Sprintf("invalid DTPOSTED %q", tx.posted)})
		return
	}

	amount, err := parseAmount(tx.amount)
	if err != nil {
		res.RowErrors = append(res.RowErrors, RowError{Line: tx.line, Err: fmt.Sprintf("invalid TRNAMT %q", tx.amount)})
		return
	}

	description := tx.memo
	if description == "" {
		description = tx.name
	}

	res.Drafts = append(res.Drafts, EntryDraft{
		ExternalDocID: tx.fitID,
		Date:          date,
		Amount:        amount.Abs(),
		Direction:     directionFromAmount(amount),
		Description:   description,
	})
}

// splitOFXTag parses "<TAG>value". Closing tags and aggregates yield ok=false.
func splitOFXTag(line string) (tag, value string, ok bool) {
	if !strings.HasPrefix(line, "<") {
		return "", "", false
	}
	end := strings.Index(line, ">")
	if end < 0 {
		return "", "", false
	}
	tag = strings.ToUpper(strings.TrimSpace(line[1:end]))
	if tag == "" || strings.HasPrefix(tag, "/") {
		return "", "", false
	}
	value = strings.TrimSpace(line[end+1:])
	// Tolerate exports that do close value tags on the same line.
	if idx := strings.Index(value, "</"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return tag, value, value != ""
}

// parseOFXDate reads DTPOSTED, which may carry time and timezone suffixes
// (e.g. 20250110 or 20250110120000[-3:BRT]). Only the date part matters.
func parseOFXDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 8 {
		return time.Time{}, fmt.Errorf("date too short: %q", raw)
	}
	return time.Parse("20060102", s[:8])
}
