// Package csvimport parses uploaded bank-statement CSVs into validated
// transaction rows.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

// DefaultMaxRows bounds memory per upload; overridable via CSV_MAX_ROWS.
const DefaultMaxRows = 50000

var (
	// ErrNoValidRows means every row was dropped during validation; the
	// upload must fail without persisting anything.
	ErrNoValidRows = errors.New("no valid rows in CSV")

	// ErrTooManyRows means the file exceeded the configured row ceiling.
	ErrTooManyRows = errors.New("too many rows in CSV")
)

// Header names are matched exactly as received.
const (
	colDate     = "date"
	colCategory = "category"
	colAmount   = "amount"
)

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// Result is one upload's parse outcome: the rows that survived validation
// and the count of rows dropped.
type Result struct {
	Transactions []models.CsvTransaction
	Skipped      int
}

// Parse reads a headered CSV and returns the validated rows. Rows missing
// date, category or amount, or carrying an unparseable date or amount, are
// dropped individually; only a fully-invalid file fails the parse. Type is
// derived from the amount's sign.
func Parse(r io.Reader, maxRows int) (*Result, error) {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoValidRows
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	result := &Result{Transactions: []models.CsvTransaction{}}
	rows := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Ragged or malformed line: drop the row, keep the batch.
			result.Skipped++
			continue
		}

		rows++
		if rows > maxRows {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRows, maxRows)
		}

		tx, ok := parseRow(record, cols)
		if !ok {
			result.Skipped++
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	if len(result.Transactions) == 0 {
		return nil, ErrNoValidRows
	}
	return result, nil
}

func parseRow(record []string, cols map[string]int) (models.CsvTransaction, bool) {
	rawDate, ok := field(record, cols, colDate)
	if !ok {
		return models.CsvTransaction{}, false
	}
	category, ok := field(record, cols, colCategory)
	if !ok {
		return models.CsvTransaction{}, false
	}
	rawAmount, ok := field(record, cols, colAmount)
	if !ok {
		return models.CsvTransaction{}, false
	}

	date, ok := parseDate(rawDate)
	if !ok {
		return models.CsvTransaction{}, false
	}

	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return models.CsvTransaction{}, false
	}

	txType := models.TransactionTypeIncome
	if amount < 0 {
		txType = models.TransactionTypeExpense
	}

	return models.CsvTransaction{
		Date:     date,
		Title:    category + " Transaction",
		Category: category,
		Amount:   amount,
		Type:     txType,
	}, true
}

func field(record []string, cols map[string]int, name string) (string, bool) {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return "", false
	}
	v := strings.TrimSpace(record[i])
	if v == "" {
		return "", false
	}
	return v, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
