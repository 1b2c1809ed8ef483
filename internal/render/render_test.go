package render

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestTransactions(t *testing.T) {
	out := Transactions([]model.Transaction{
		{ID: 7, Date: "2025-03-01", Description: "groceries", Amount: decimal.RequireFromString("42.1")},
		{ID: 8, Date: "2025-03-01", Description: "refund", Amount: decimal.RequireFromString("-10")},
	})

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "groceries")
	assert.Contains(t, out, "42.10", "amounts show two fraction digits")
	assert.Contains(t, out, "-10.00")
}

func TestTransactions_Empty(t *testing.T) {
	out := Transactions(nil)
	assert.Contains(t, out, "No transactions.")
}

func TestBalance(t *testing.T) {
	out := Balance(model.Balance{Date: "2025-03-01", Total: decimal.RequireFromString("45.755")})
	assert.Contains(t, out, "Balance for 2025-03-01: 45.76")
}

func TestMonthly(t *testing.T) {
	out := Monthly(&model.MonthlySummary{
		Year:  "2024",
		Month: "03",
		Total: decimal.RequireFromString("150.5"),
		ByDay: []model.DayTotal{
			{Date: "2024-03-01", Total: decimal.NewFromInt(50)},
		},
	})

	assert.Contains(t, out, "Total for 2024-03: 150.50")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "50.00")
}

func TestSession(t *testing.T) {
	assert.Equal(t, "Not logged in.\n", Session(model.Session{}))
	assert.Equal(t, "Logged in as alice (admin)\n", Session(model.Session{User: "alice", Role: model.RoleAdmin}))
	assert.Equal(t, "Logged in as alice\n", Session(model.Session{User: "alice"}))
}

func TestPrint_FallsBackToRawMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, "notty", "**Balance for 2025-03-01: 45.76**")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "45.76")
}
