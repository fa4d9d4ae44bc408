package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readRecords parses delimited text. A leading byte order mark is honoured,
// so UTF-16 exports from spreadsheets read the same as UTF-8 files.
func readRecords(r io.Reader, delimiter string) ([][]string, error) {
	comma, size := utf8.DecodeRuneInString(delimiter)
	if comma == utf8.RuneError || size != len(delimiter) {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	return rows, nil
}
