package service

import (
	"context"
	"fmt"

	"recipebox/internal/clock"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// FavoriteService manages per-user recipe bookmarks.
type FavoriteService interface {
	List(ctx context.Context, email string) ([]string, error)
	Add(ctx context.Context, email, recipeID string) error
	Remove(ctx context.Context, email, recipeID string) error
}

type favoriteService struct {
	favorites repository.FavoriteRepository
	tx        repository.TxManager
	clock     clock.Clock
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favorites repository.FavoriteRepository, tx repository.TxManager, clk clock.Clock) FavoriteService {
	return &favoriteService{favorites: favorites, tx: tx, clock: clk}
}

func (s *favoriteService) List(ctx context.Context, email string) ([]string, error) {
	rows, err := s.favorites.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RecipeID)
	}
	return ids, nil
}

// Add bookmarks a recipe. Adding an existing bookmark creates no second row,
// but the "added_favorite" activity is recorded on every call: the log tracks
// what the user did, not whether state changed.
func (s *favoriteService) Add(ctx context.Context, email, recipeID string) error {
	if recipeID == "" {
		return apperrors.ErrMissingRecipeID
	}

	now := s.clock.Now().UnixMilli()
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		exists, err := repos.Favorites.Exists(ctx, email, recipeID)
		if err != nil {
			return err
		}
		if !exists {
			if err := repos.Favorites.Create(ctx, &model.Favorite{UserEmail: email, RecipeID: recipeID}); err != nil {
				return err
			}
		}
		_, err = appendActivity(ctx, repos.Activities, email, fmt.Sprintf("added_favorite:%s", recipeID), now)
		return err
	})
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove deletes the bookmark if present and records the removal either way.
func (s *favoriteService) Remove(ctx context.Context, email, recipeID string) error {
	now := s.clock.Now().UnixMilli()
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Favorites.Delete(ctx, email, recipeID); err != nil {
			return err
		}
		_, err := appendActivity(ctx, repos.Activities, email, fmt.Sprintf("removed_favorite:%s", recipeID), now)
		return err
	})
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
