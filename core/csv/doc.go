// Package csv provides a hand-written tokenizer for delimited-text uploads.
//
// It exists instead of encoding/csv because spreadsheet-tool exports need
// a few lenient behaviors the standard reader rejects:
//   - a UTF-8 byte-order-mark at offset 0 is stripped
//   - blank lines anywhere in the file are discarded
//   - rows may carry fewer or more fields than the header; alignment is
//     resolved later by the mapping layer, not here
//
// Quoting follows RFC 4180: fields may be wrapped in double quotes, commas
// inside quotes are literal, and a doubled quote inside a quoted field is an
// escaped literal quote.
//
// # Usage
//
//	doc, err := csv.Parse(content)
//	if err != nil { ... }
//	for _, row := range doc.Rows { ... }
package csv
