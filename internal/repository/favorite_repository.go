package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, email string) ([]model.Favorite, error)
	Exists(ctx context.Context, email, recipeID string) (bool, error)
	Create(ctx context.Context, favorite *model.Favorite) error
	Delete(ctx context.Context, email, recipeID string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, email string) ([]model.Favorite, error) {
	var favorites []model.Favorite
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, email, recipeID string) (bool, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND recipe_id = ?", email, recipeID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// Delete removes the matching row if present; deleting an absent row is not
// an error.
func (r *favoriteRepository) Delete(ctx context.Context, email, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_email = ? AND recipe_id = ?", email, recipeID).
		Delete(&model.Favorite{}).Error
}
