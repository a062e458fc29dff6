// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingGoal represents a target amount to be reached by a deadline.
//
// CurrentAmount is explicitly set by the user, not derived from transactions,
// and may exceed TargetAmount: reaching a goal is a threshold check, not a
// cap.
type SavingGoal struct {
	ID            uint
	UserID        uint
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingGoal creates a new SavingGoal entity with a zero current amount.
func NewSavingGoal(userID uint, name string, targetAmount decimal.Decimal, deadline time.Time) *SavingGoal {
	now := time.Now().UTC()

	return &SavingGoal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
