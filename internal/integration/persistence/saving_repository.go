package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/signance/backend/internal/application/adapter"
	"github.com/signance/backend/internal/domain/entity"
	domainerror "github.com/signance/backend/internal/domain/error"
	"github.com/signance/backend/internal/integration/persistence/model"
)

// savingRepository implements the adapter.SavingRepository interface.
type savingRepository struct {
	db *gorm.DB
}

// NewSavingRepository creates a new saving goal repository instance.
func NewSavingRepository(db *gorm.DB) adapter.SavingRepository {
	return &savingRepository{
		db: db,
	}
}

// Create creates a new saving goal in the database.
func (r *savingRepository) Create(ctx context.Context, goal *entity.SavingGoal) error {
	goalModel := model.SavingGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	goal.ID = goalModel.ID
	return nil
}

// FindByID retrieves a saving goal by its ID.
func (r *savingRepository) FindByID(ctx context.Context, id uint) (*entity.SavingGoal, error) {
	var goalModel model.SavingGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all saving goals for a given user, oldest first.
func (r *savingRepository) FindByUser(ctx context.Context, userID uint) ([]*entity.SavingGoal, error) {
	var goalModels []model.SavingGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingGoal, len(goalModels))
	for i, goalModel := range goalModels {
		goals[i] = goalModel.ToEntity()
	}
	return goals, nil
}

// Update updates an existing saving goal in the database.
func (r *savingRepository) Update(ctx context.Context, goal *entity.SavingGoal) error {
	goal.UpdatedAt = time.Now().UTC()
	goalModel := model.SavingGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a saving goal from the database.
func (r *savingRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SavingGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingGoalNotFound
	}
	return nil
}
