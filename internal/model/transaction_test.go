package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignClassification(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromFloat(-50.00)}
	income := Transaction{Amount: decimal.NewFromFloat(1200.00)}
	zero := Transaction{Amount: decimal.Zero}

	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.False(t, zero.IsExpense())
	assert.False(t, zero.IsIncome())
}

func TestTransaction_Month(t *testing.T) {
	txn := Transaction{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03", txn.Month())
}

func TestTransaction_DayStripsTime(t *testing.T) {
	txn := Transaction{Date: time.Date(2024, 3, 1, 14, 35, 12, 0, time.UTC)}
	day := txn.Day()
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), day)
}
