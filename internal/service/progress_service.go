package service

import (
	"context"
	"fmt"

	"recipebox/internal/clock"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// ProgressService manages per-user, per-recipe cooking progress.
type ProgressService interface {
	List(ctx context.Context, email string) ([]model.Progress, error)
	Set(ctx context.Context, email, recipeID, status string, position int) error
	Delete(ctx context.Context, email, recipeID string) error
}

type progressService struct {
	progress repository.ProgressRepository
	tx       repository.TxManager
	clock    clock.Clock
}

// NewProgressService creates a new progress service.
func NewProgressService(progress repository.ProgressRepository, tx repository.TxManager, clk clock.Clock) ProgressService {
	return &progressService{progress: progress, tx: tx, clock: clk}
}

func (s *progressService) List(ctx context.Context, email string) ([]model.Progress, error) {
	rows, err := s.progress.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}

// Set upserts the progress row for (email, recipeID): an existing row gets
// its status, position and timestamp overwritten, otherwise a new row is
// inserted. A "progress:<recipe>:<status>" activity is recorded in the same
// transaction.
func (s *progressService) Set(ctx context.Context, email, recipeID, status string, position int) error {
	if recipeID == "" {
		return apperrors.ErrMissingRecipeID
	}
	if status == "" {
		return apperrors.ErrMissingStatus
	}

	now := s.clock.Now().UnixMilli()
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		existing, err := repos.Progress.Find(ctx, email, recipeID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Status = status
			existing.Position = position
			existing.Timestamp = now
			if err := repos.Progress.Update(ctx, existing); err != nil {
				return err
			}
		} else {
			row := &model.Progress{
				UserEmail: email,
				RecipeID:  recipeID,
				Status:    status,
				Position:  position,
				Timestamp: now,
			}
			if err := repos.Progress.Create(ctx, row); err != nil {
				return err
			}
		}
		_, err = appendActivity(ctx, repos.Activities, email, fmt.Sprintf("progress:%s:%s", recipeID, status), now)
		return err
	})
	if err != nil {
		return fmt.Errorf("set progress: %w", err)
	}
	return nil
}

// Delete removes the progress row if present. Unlike favorite removal, no
// activity is recorded.
func (s *progressService) Delete(ctx context.Context, email, recipeID string) error {
	if err := s.progress.Delete(ctx, email, recipeID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
