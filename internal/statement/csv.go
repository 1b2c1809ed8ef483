// Package statement decodes the CSV statements the server exports.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header of an exported statement.
const Header = "id,date,description,amount"

const (
	numFields = 4
	colID     = 0
	colDate   = 1
	colDesc   = 2
	colAmount = 3
)

// Read reads an exported statement and returns its transactions.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// Write writes transactions as a statement (including header).
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(marshalRow(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Sum returns the total of all statement amounts.
func Sum(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return total
}

func marshalRow(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = strconv.FormatInt(txn.ID, 10)
	row[colDate] = txn.Date
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	return row
}

func unmarshalRow(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.ParseInt(record[colID], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	if !model.ValidDate(record[colDate]) {
		return model.Transaction{}, fmt.Errorf("invalid date %q", record[colDate])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		ID:          id,
		Date:        record[colDate],
		Description: record[colDesc],
		Amount:      amount,
	}, nil
}
