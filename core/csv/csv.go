package csv

import (
	"errors"
	"strings"
)

// ErrMalformedInput is returned when the input has no header row or no data
// rows after blank-line filtering.
var ErrMalformedInput = errors.New("malformed input: need a header row and at least one data row")

// utf8BOM is the byte-order-mark Excel and Sheets prepend to CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a tokenized delimited-text file. Header holds the trimmed
// column names from the first non-empty row; Rows hold the raw field values
// of every following non-empty row, in file order.
type Document struct {
	Header []string
	Rows   [][]string
}

// Parse tokenizes raw file bytes into a header and data rows.
//
// The scan is a single pass with an in-quotes flag, so commas, escaped quotes
// and line breaks inside quoted fields are literal. Rows whose raw text is
// empty after trimming are discarded. Rows are not required to have the same
// field count as the header; the mapping layer treats missing and empty
// fields equivalently.
func Parse(content []byte) (*Document, error) {
	if len(content) >= len(utf8BOM) && string(content[:len(utf8BOM)]) == string(utf8BOM) {
		content = content[len(utf8BOM):]
	}

	var (
		rows     [][]string
		fields   []string
		field    strings.Builder
		raw      strings.Builder
		inQuotes bool
	)

	endRow := func() {
		fields = append(fields, field.String())
		field.Reset()
		// Blank-after-trim lines are noise from trailing newlines and
		// spreadsheet padding; drop them.
		if strings.TrimSpace(raw.String()) != "" {
			rows = append(rows, fields)
		}
		fields = nil
		raw.Reset()
	}

	data := string(content)
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '"':
			raw.WriteByte(c)
			if inQuotes && i+1 < len(data) && data[i+1] == '"' {
				// Escaped literal quote.
				field.WriteByte('"')
				raw.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			raw.WriteByte(c)
			fields = append(fields, field.String())
			field.Reset()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			raw.WriteByte(c)
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(fields) > 0 || raw.Len() > 0 {
		endRow()
	}

	if len(rows) < 2 {
		return nil, ErrMalformedInput
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	return &Document{Header: header, Rows: rows[1:]}, nil
}
