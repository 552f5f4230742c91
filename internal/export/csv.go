// Package export renders record sets to the CSV blob consumed by the
// download side of the dashboard.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// Header is the fixed column order of the export format.
const Header = "Date,Description,Amount,Amount (2dp),Category,City,State"

const dateFormat = "2006-01-02"

// WriteRecords renders records as CSV, header first. Descriptions are always
// quoted, with embedded quotes doubled; other fields are quoted only when
// they contain a delimiter.
func WriteRecords(w io.Writer, records []model.Record) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if _, err := fmt.Fprintln(w, MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}

// MarshalRecord formats one record as an export CSV line (no trailing
// newline).
func MarshalRecord(rec model.Record) string {
	fields := []string{
		rec.Date.Format(dateFormat),
		quote(rec.Description),
		rec.Amount.String(),
		rec.Amount.StringFixed(2),
		escape(string(rec.Category)),
		escape(rec.City),
		escape(rec.State),
	}
	return strings.Join(fields, ",")
}

// quote wraps a field in double quotes, doubling embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// escape quotes a field only when it contains a delimiter, quote, or line
// break.
func escape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return quote(s)
	}
	return s
}
