// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/signance/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database and assigns its ID.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user, ordered by category.
	FindByUser(ctx context.Context, userID uint) ([]*entity.Budget, error)

	// FindActiveByUser retrieves budgets whose [start, end] range contains at,
	// ordered by category.
	FindActiveByUser(ctx context.Context, userID uint, at time.Time) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uint) error
}
