// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/signance/backend/internal/domain/entity"
)

// SavingRepository defines the interface for saving goal persistence operations.
type SavingRepository interface {
	// Create creates a new saving goal in the database and assigns its ID.
	Create(ctx context.Context, goal *entity.SavingGoal) error

	// FindByID retrieves a saving goal by its ID.
	FindByID(ctx context.Context, id uint) (*entity.SavingGoal, error)

	// FindByUser retrieves all saving goals for a given user, oldest first.
	FindByUser(ctx context.Context, userID uint) ([]*entity.SavingGoal, error)

	// Update updates an existing saving goal in the database.
	Update(ctx context.Context, goal *entity.SavingGoal) error

	// Delete removes a saving goal from the database.
	Delete(ctx context.Context, id uint) error
}
