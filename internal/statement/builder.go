// Package statement parses delimited statement exports into Records.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spendview-dev/spendview/internal/category"
	"github.com/spendview-dev/spendview/internal/fieldparse"
	"github.com/spendview-dev/spendview/internal/model"
)

// Recognized header names, matched after trimming surrounding whitespace.
const (
	colDate      = "Date"
	colDesc      = "Description"
	colAmount    = "Amount"
	colCategory  = "Category"
	colCityState = "City/State"
)

// DatePolicy controls what the builder does with a row whose date does not
// parse. Skipping is the default; substituting today keeps the row but
// shifts its month bucket, so totals change with the policy.
type DatePolicy string

const (
	// DateSkip drops rows with unparsable dates.
	DateSkip DatePolicy = "skip"
	// DateToday keeps such rows, dated with the current date.
	DateToday DatePolicy = "today"
)

// Stats summarizes one build: how many data rows were seen and why the
// skipped ones were excluded.
type Stats struct {
	Rows            int
	Imported        int
	MissingRequired int
	BadAmount       int
	NonPositive     int
	BadDate         int
}

// Skipped returns the number of rows excluded from the result.
func (s Stats) Skipped() int {
	return s.Rows - s.Imported
}

// Builder converts raw delimited text into Records for one Document.
type Builder struct {
	datePolicy DatePolicy
	logger     zerolog.Logger
	now        func() time.Time
}

// NewBuilder creates a Builder with the given date-failure policy.
func NewBuilder(datePolicy DatePolicy, logger zerolog.Logger) *Builder {
	if datePolicy == "" {
		datePolicy = DateSkip
	}
	return &Builder{datePolicy: datePolicy, logger: logger, now: time.Now}
}

// Build parses a statement export and returns its Records, most recent
// first. Rows missing a required field, or whose amount is unparsable or
// not strictly positive, are skipped and counted in Stats; only a document
// that is not parseable as delimited text at all is an error.
func (b *Builder) Build(r io.Reader, fileID string) ([]model.Record, Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, Stats{}, nil
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	var stats Stats
	var records []model.Record
	for i, row := range rows[1:] {
		stats.Rows++
		rec, ok := b.buildRow(row, cols, fileID, i+2, &stats)
		if !ok {
			continue
		}
		stats.Imported++
		records = append(records, rec)
	}

	// Most recent first; rows with equal dates keep statement order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, stats, nil
}

func (b *Builder) buildRow(row []string, cols map[string]int, fileID string, line int, stats *Stats) (model.Record, bool) {
	dateStr := field(row, cols, colDate)
	desc := field(row, cols, colDesc)
	amountStr := field(row, cols, colAmount)

	if dateStr == "" || desc == "" || amountStr == "" {
		stats.MissingRequired++
		b.logger.Warn().Int("line", line).Msg("skipping row with missing required field")
		return model.Record{}, false
	}

	amount, err := fieldparse.ParseAmount(amountStr)
	if err != nil {
		stats.BadAmount++
		b.logger.Warn().Int("line", line).Str("amount", amountStr).Msg("skipping row with unparsable amount")
		return model.Record{}, false
	}
	if !amount.IsPositive() {
		// Payments, refunds, and credits are excluded from spend analysis.
		stats.NonPositive++
		return model.Record{}, false
	}

	date, err := fieldparse.ParseDate(dateStr)
	if err != nil {
		if b.datePolicy == DateToday {
			now := b.now()
			date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		} else {
			stats.BadDate++
			b.logger.Warn().Int("line", line).Str("date", dateStr).Msg("skipping row with unparsable date")
			return model.Record{}, false
		}
	}

	label := field(row, cols, colCategory)
	if label == "" {
		label = "Other"
	}

	city, state := splitCityState(field(row, cols, colCityState))

	return model.Record{
		ID:          uuid.NewString(),
		Date:        date,
		Description: desc,
		Amount:      amount,
		Category:    category.Normalize(label),
		City:        city,
		State:       state,
		FileID:      fileID,
	}, true
}

// field returns the trimmed value of a named column, or "" when the column
// is absent or the row is short.
func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// splitCityState splits a combined "City\nState" value on the first line
// break.
func splitCityState(v string) (city, state string) {
	if v == "" {
		return "", ""
	}
	parts := strings.SplitN(v, "\n", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		state = strings.TrimSpace(parts[1])
	}
	return city, state
}
