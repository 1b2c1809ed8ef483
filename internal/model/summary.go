package model

import "github.com/shopspring/decimal"

// DayTotal is one row of a monthly breakdown.
type DayTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// MonthlySummary aggregates a month of ledger activity.
type MonthlySummary struct {
	Year  string
	Month string
	Total decimal.Decimal
	ByDay []DayTotal
}
