package csvimport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

func TestParse_ValidRows(t *testing.T) {
	csv := "date,category,amount\n" +
		"2024-01-05,Food,-200\n" +
		"2024-01-06,Salary,3000\n"

	result, err := Parse(strings.NewReader(csv), 0)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, 0, result.Skipped)

	food := result.Transactions[0]
	assert.Equal(t, "Food", food.Category)
	assert.Equal(t, -200.0, food.Amount)
	assert.Equal(t, models.TransactionTypeExpense, food.Type)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), food.Date)

	salary := result.Transactions[1]
	assert.Equal(t, models.TransactionTypeIncome, salary.Type)
	assert.Equal(t, 3000.0, salary.Amount)
}

func TestParse_DropsInvalidRows(t *testing.T) {
	csv := "date,category,amount\n" +
		"2024-01-05,Food,-200\n" +
		",Rent,1000\n" + // missing date
		"2024-01-07,,50\n" + // missing category
		"2024-01-08,Travel,\n" + // missing amount
		"not-a-date,Misc,10\n" + // unparseable date
		"2024-01-09,Misc,abc\n" // unparseable amount

	result, err := Parse(strings.NewReader(csv), 0)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 5, result.Skipped)
	assert.Equal(t, "Food", result.Transactions[0].Category)
}

func TestParse_NoValidRows(t *testing.T) {
	csv := "date,category,amount\n" +
		",Rent,1000\n" +
		"garbage,Misc,xyz\n"

	_, err := Parse(strings.NewReader(csv), 0)
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrNoValidRows)

	_, err = Parse(strings.NewReader("date,category,amount\n"), 0)
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	csv := "date,description,amount\n" +
		"2024-01-05,Food,-200\n"

	_, err := Parse(strings.NewReader(csv), 0)
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestParse_HeaderIsCaseSensitive(t *testing.T) {
	csv := "Date,Category,Amount\n" +
		"2024-01-05,Food,-200\n"

	_, err := Parse(strings.NewReader(csv), 0)
	assert.ErrorIs(t, err, ErrNoValidRows)
}

func TestParse_RowCeiling(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("date,category,amount\n")
	for range 5 {
		sb.WriteString("2024-01-05,Food,-200\n")
	}

	_, err := Parse(strings.NewReader(sb.String()), 4)
	assert.ErrorIs(t, err, ErrTooManyRows)

	result, err := Parse(strings.NewReader(sb.String()), 5)
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 5)
}

func TestParse_TypeDerivedFromSign(t *testing.T) {
	csv := "date,category,amount\n" +
		"2024-01-05,A,-0.01\n" +
		"2024-01-05,B,0\n" +
		"2024-01-05,C,0.01\n"

	result, err := Parse(strings.NewReader(csv), 0)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)
	assert.Equal(t, models.TransactionTypeExpense, result.Transactions[0].Type)
	assert.Equal(t, models.TransactionTypeIncome, result.Transactions[1].Type)
	assert.Equal(t, models.TransactionTypeIncome, result.Transactions[2].Type)
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	csv := "date,category,amount,notes\n" +
		"2024-01-05,Food,-200,weekly groceries\n"

	result, err := Parse(strings.NewReader(csv), 0)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Food Transaction", result.Transactions[0].Title)
}
