// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// ParseTransactionType converts a string into a TransactionType, rejecting
// values outside the two-value set.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeExpense, TransactionTypeIncome:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// IsValid reports whether the transaction type is expense or income.
func (t TransactionType) IsValid() bool {
	_, err := ParseTransactionType(string(t))
	return err == nil
}

// Transaction represents a single money movement in the Signance system.
// Amount is the non-negative magnitude of the movement; Type says which
// direction the money went.
type Transaction struct {
	ID          uint
	UserID      uint
	Amount      decimal.Decimal
	Category    Category
	Type        TransactionType
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// store on insert. A zero date defaults to the creation instant.
func NewTransaction(
	userID uint,
	amount decimal.Decimal,
	category Category,
	transactionType TransactionType,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}

	return &Transaction{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Type:        transactionType,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
