package aggregate

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendview-dev/spendview/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func rec(d time.Time, desc, amount string, cat model.Category) model.Record {
	return model.Record{
		ID:          desc,
		Date:        d,
		Description: desc,
		Amount:      dec(amount),
		Category:    cat,
		FileID:      "doc-1",
	}
}

func sample() []model.Record {
	return []model.Record{
		rec(date(2024, 1, 5), "SAFEWAY #210", "30.00", model.CategoryGroceries),
		rec(date(2024, 1, 20), "SAFEWAY #210", "20.50", model.CategoryGroceries),
		rec(date(2024, 2, 2), "STARBUCKS #1234", "12.50", model.CategoryRestaurant),
		rec(date(2024, 2, 14), "SHELL OIL 5720", "40.00", model.CategoryGas),
		rec(date(2024, 3, 1), "NETFLIX.COM", "15.49", model.CategorySubscriptions),
	}
}

func TestCategoryTotals(t *testing.T) {
	got := CategoryTotals(sample())
	require.Len(t, got, 4)

	// Sorted by total descending.
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Total.GreaterThanOrEqual(got[i].Total))
	}

	assert.Equal(t, model.CategoryGroceries, got[0].Category)
	assert.Equal(t, "50.5", got[0].Total.String())
	assert.Equal(t, 2, got[0].Count)
	assert.NotEmpty(t, got[0].Color)
}

func TestCategoryTotalsGrandTotal(t *testing.T) {
	records := sample()
	want := decimal.Zero
	for _, r := range records {
		want = want.Add(r.Amount)
	}

	got := decimal.Zero
	for _, ct := range CategoryTotals(records) {
		got = got.Add(ct.Total)
	}
	assert.True(t, want.Equal(got))
}

func TestCategoryTotalsTieBreak(t *testing.T) {
	records := []model.Record{
		rec(date(2024, 1, 1), "A", "10.00", model.CategoryTravel),
		rec(date(2024, 1, 2), "B", "10.00", model.CategoryFees),
	}
	got := CategoryTotals(records)
	require.Len(t, got, 2)
	assert.Equal(t, model.CategoryFees, got[0].Category)
	assert.Equal(t, model.CategoryTravel, got[1].Category)
}

func TestCategoryTotalsEmpty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
}

func TestMonthlySpending(t *testing.T) {
	got := MonthlySpending(sample())
	require.Len(t, got, 3)

	keyPattern := regexp.MustCompile(`^\d{4}-\d{2}$`)
	for i, mt := range got {
		assert.Regexp(t, keyPattern, mt.Month)
		if i > 0 {
			assert.Less(t, got[i-1].Month, mt.Month)
		}
	}

	assert.Equal(t, "2024-01", got[0].Month)
	assert.Equal(t, "50.5", got[0].Total.String())
}

func TestTopMerchants(t *testing.T) {
	got := TopMerchants(sample(), 5)
	require.Len(t, got, 4)

	assert.Equal(t, "SAFEWAY #", got[0].Name)
	assert.Equal(t, "50.5", got[0].Total.String())
	assert.Equal(t, 2, got[0].Count)

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Total.GreaterThanOrEqual(got[i].Total))
	}

	counts := 0
	for _, mt := range got {
		counts += mt.Count
	}
	assert.Equal(t, len(sample()), counts)
}

func TestTopMerchantsLimit(t *testing.T) {
	assert.Len(t, TopMerchants(sample(), 2), 2)
	assert.Len(t, TopMerchants(sample(), 100), 4)
	assert.Empty(t, TopMerchants(sample(), 0))
	assert.Empty(t, TopMerchants(sample(), -3))
}

func TestFilterByDateRange(t *testing.T) {
	records := sample()
	from := date(2024, 2, 1)
	to := date(2024, 2, 28)

	got := FilterByDateRange(records, &from, &to)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.False(t, r.Date.Before(from))
		assert.False(t, r.Date.After(to))
	}

	// Inclusive bounds.
	exact := date(2024, 2, 2)
	got = FilterByDateRange(records, &exact, &exact)
	require.Len(t, got, 1)
	assert.Equal(t, "STARBUCKS #1234", got[0].Description)
}

func TestFilterByDateRangeUnbounded(t *testing.T) {
	records := sample()
	assert.Len(t, FilterByDateRange(records, nil, nil), len(records))

	from := date(2024, 2, 1)
	assert.Len(t, FilterByDateRange(records, &from, nil), 3)

	to := date(2024, 1, 31)
	assert.Len(t, FilterByDateRange(records, nil, &to), 2)
}

func TestFilterByDateRangeIdempotent(t *testing.T) {
	from := date(2024, 1, 1)
	to := date(2024, 2, 28)

	once := FilterByDateRange(sample(), &from, &to)
	twice := FilterByDateRange(once, &from, &to)
	assert.Equal(t, once, twice)
}

func TestAggregatorsDoNotMutateInput(t *testing.T) {
	records := sample()
	snapshot := make([]model.Record, len(records))
	copy(snapshot, records)

	CategoryTotals(records)
	MonthlySpending(records)
	TopMerchants(records, 3)
	from := date(2024, 1, 1)
	FilterByDateRange(records, &from, nil)

	assert.Equal(t, snapshot, records)
}
