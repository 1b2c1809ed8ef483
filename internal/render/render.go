// Package render turns client results into markdown for the terminal.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/tally-dev/tally/internal/model"
)

// Transactions renders a table of ledger rows. Amounts always show two
// fraction digits.
func Transactions(rows []model.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(rows) == 0 {
		doc.PlainText("No transactions.")
		doc.Build()
		return buf.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Description", "Amount"},
	}
	for _, tx := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Date,
			tx.Description,
			tx.Amount.StringFixed(2),
		})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// Balance renders the running total line for a date.
func Balance(b model.Balance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainText(md.Bold(fmt.Sprintf("Balance for %s: %s", b.Date, b.Total.StringFixed(2))))
	doc.Build()
	return buf.String()
}

// Day renders a day's listing: the rows followed by the balance.
func Day(rows []model.Transaction, b model.Balance) string {
	return Transactions(rows) + "\n" + Balance(b)
}

// Monthly renders the aggregation report: a total line plus a per-day
// breakdown table, all totals with two fraction digits.
func Monthly(s *model.MonthlySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.PlainText(md.Bold(fmt.Sprintf("Total for %s-%s: %s", s.Year, s.Month, s.Total.StringFixed(2))))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Total"},
	}
	for _, day := range s.ByDay {
		table.Rows = append(table.Rows, []string{day.Date, day.Total.StringFixed(2)})
	}
	doc.Table(table)
	doc.Build()
	return buf.String()
}

// Session renders the login state label.
func Session(s model.Session) string {
	if !s.LoggedIn() {
		return "Not logged in.\n"
	}
	if s.Role != model.RoleNone {
		return fmt.Sprintf("Logged in as %s (%s)\n", s.User, s.Role)
	}
	return fmt.Sprintf("Logged in as %s\n", s.User)
}
