package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one normalized spending entry derived from a statement row.
// Records are immutable once built.
type Record struct {
	ID          string
	Date        time.Time // date-only, midnight UTC
	Description string
	Amount      decimal.Decimal // strictly positive; refunds and payments are dropped at import
	Category    Category
	City        string
	State       string
	FileID      string // owning Document ID
}
