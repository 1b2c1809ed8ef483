package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for all ledger dates.
const DateFormat = "2006-01-02"

// Transaction is one ledger row as the server reports it.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ListPage is the canonical shape of one page of transactions.
// The server may answer with a bare array or an {items,total} envelope;
// the API layer normalizes both into this.
type ListPage struct {
	Items []Transaction
	Total int
}

// Balance is the running total for a single date.
type Balance struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// Sum returns the sum of all transaction amounts on the page.
func (p ListPage) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range p.Items {
		total = total.Add(tx.Amount)
	}
	return total
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// Today returns the current date in wire format.
func Today() string {
	return time.Now().Format(DateFormat)
}

// ParseMonth splits a YYYY-MM month selection into year and month parts.
func ParseMonth(s string) (year, month string, err error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return t.Format("2006"), t.Format("01"), nil
}
