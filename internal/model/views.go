package model

import "github.com/shopspring/decimal"

// CategoryTotal is a per-category spending rollup for the dashboard.
// Not persisted; recomputed on demand.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
	Count    int
	Color    string
}

// MonthlyTotal is total spending for one "YYYY-MM" month key.
type MonthlyTotal struct {
	Month string
	Total decimal.Decimal
}

// MerchantTotal is a per-merchant-bucket spending rollup.
type MerchantTotal struct {
	Name  string
	Total decimal.Decimal
	Count int
}
