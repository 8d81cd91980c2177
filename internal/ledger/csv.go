package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Header is the CSV header for ledger exports.
const Header = "date,amount,description,type,category"

const (
	numFields   = 5
	dateFormat  = "2006-01-02"
	colDate     = 0
	colAmount   = 1
	colDesc     = 2
	colType     = 3
	colCategory = 4
)

// WriteCSV writes the ledger (header included) in export format.
func WriteCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range l.All() {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadCSV reads a previously exported ledger.
func ReadCSV(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) <= 1 {
		return New(nil), nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return New(txns), nil
}

// MarshalTransaction converts a transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.Format(dateFormat)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colDesc] = t.Description
	row[colType] = t.Type
	row[colCategory] = t.Category
	return row
}

// UnmarshalTransaction converts a CSV row to a transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}
	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		Date:        date.UTC(),
		Amount:      amount,
		Description: record[colDesc],
		Type:        record[colType],
		Category:    record[colCategory],
	}, nil
}
