// Package aggregate computes dashboard views from record sets. All functions
// are pure: inputs are never mutated and results are freshly allocated.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/category"
	"github.com/spendview-dev/spendview/internal/merchant"
	"github.com/spendview-dev/spendview/internal/model"
)

// DefaultMerchantLimit caps TopMerchants output when callers pass no
// explicit limit.
const DefaultMerchantLimit = 10

// CategoryTotals groups records by canonical category, summing amount and
// count per group. Results are sorted by total descending; equal totals
// order by category name ascending so output is reproducible.
func CategoryTotals(records []model.Record) []model.CategoryTotal {
	totals := make(map[model.Category]*model.CategoryTotal)
	for _, rec := range records {
		ct, ok := totals[rec.Category]
		if !ok {
			ct = &model.CategoryTotal{
				Category: rec.Category,
				Color:    category.Color(rec.Category),
			}
			totals[rec.Category] = ct
		}
		ct.Total = ct.Total.Add(rec.Amount)
		ct.Count++
	}

	out := make([]model.CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthlySpending sums record amounts per "YYYY-MM" month key, sorted
// ascending by key. The zero-padded key makes lexicographic order
// chronological.
func MonthlySpending(records []model.Record) []model.MonthlyTotal {
	totals := make(map[string]decimal.Decimal)
	for _, rec := range records {
		key := MonthKey(rec.Date)
		totals[key] = totals[key].Add(rec.Amount)
	}

	out := make([]model.MonthlyTotal, 0, len(totals))
	for key, total := range totals {
		out = append(out, model.MonthlyTotal{Month: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

// MonthKey formats a date as its "YYYY-MM" month bucket.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// TopMerchants buckets records by extracted merchant name, summing amount
// and count, sorted by total descending (name ascending on ties) and
// truncated to limit. A limit of zero or less yields no results.
func TopMerchants(records []model.Record, limit int) []model.MerchantTotal {
	if limit <= 0 {
		return nil
	}

	totals := make(map[string]*model.MerchantTotal)
	for _, rec := range records {
		name := merchant.Extract(rec.Description)
		mt, ok := totals[name]
		if !ok {
			mt = &model.MerchantTotal{Name: name}
			totals[name] = mt
		}
		mt.Total = mt.Total.Add(rec.Amount)
		mt.Count++
	}

	out := make([]model.MerchantTotal, 0, len(totals))
	for _, mt := range totals {
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterByDateRange keeps records whose date falls inside the inclusive
// [from, to] bounds. A nil bound leaves that side unbounded; both nil
// returns a copy of the full input.
func FilterByDateRange(records []model.Record, from, to *time.Time) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if from != nil && rec.Date.Before(*from) {
			continue
		}
		if to != nil && rec.Date.After(*to) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
