// Package report contains the financial reporting use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/signance/backend/internal/domain/entity"
)

// BudgetProgressResult represents the remaining headroom and consumption of a
// budget ceiling. Remaining goes negative when the category is overspent;
// that is a meaningful result, not an error.
type BudgetProgressResult struct {
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed float64         `json:"percent_used"`
}

// SavingsProgressResult represents how far a saving goal has come.
type SavingsProgressResult struct {
	Percent float64 `json:"percent"`
	Reached bool    `json:"reached"`
}

// BudgetProgress computes the remaining amount and percentage used for a
// budget given the expenses already counted against it. A zero ceiling yields
// zero percent rather than dividing by zero. The division happens once, after
// all decimal accumulation, so float rounding cannot compound.
func BudgetProgress(budget *entity.Budget, spent decimal.Decimal) BudgetProgressResult {
	result := BudgetProgressResult{
		Remaining: budget.Amount.Sub(spent),
	}

	if budget.Amount.IsZero() {
		return result
	}

	result.PercentUsed, _ = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
	return result
}

// SavingsProgress computes the percent-of-target and the reached flag for a
// saving goal. The entity invariant guarantees a positive target, but a
// corrupted record (target <= 0) yields zero percent instead of infinity.
func SavingsProgress(goal *entity.SavingGoal) SavingsProgressResult {
	result := SavingsProgressResult{
		Reached: goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount),
	}

	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return result
	}

	result.Percent, _ = goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return result
}
