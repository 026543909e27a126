package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

// ProgressRepository defines progress persistence operations.
type ProgressRepository interface {
	ListByUser(ctx context.Context, email string) ([]model.Progress, error)
	Find(ctx context.Context, email, recipeID string) (*model.Progress, error)
	Create(ctx context.Context, progress *model.Progress) error
	Update(ctx context.Context, progress *model.Progress) error
	Delete(ctx context.Context, email, recipeID string) error
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListByUser(ctx context.Context, email string) ([]model.Progress, error) {
	var rows []model.Progress
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Find returns (nil, nil) when no row exists for the key.
func (r *progressRepository) Find(ctx context.Context, email, recipeID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND recipe_id = ?", email, recipeID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) Create(ctx context.Context, progress *model.Progress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) Update(ctx context.Context, progress *model.Progress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

// Delete removes the matching row if present; deleting an absent row is not
// an error.
func (r *progressRepository) Delete(ctx context.Context, email, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_email = ? AND recipe_id = ?", email, recipeID).
		Delete(&model.Progress{}).Error
}
