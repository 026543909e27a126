package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recipebox/internal/clock"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const favTestNow = int64(1_700_000_000_000)

func newFavoriteFixture(t *testing.T) (*MockFavoriteRepository, *MockActivityRepository, FavoriteService) {
	t.Helper()
	favoriteRepo := new(MockFavoriteRepository)
	activityRepo := new(MockActivityRepository)
	tx := &stubTxManager{repos: repository.Repositories{
		Favorites:  favoriteRepo,
		Activities: activityRepo,
	}}
	svc := NewFavoriteService(favoriteRepo, tx, clock.Fixed(time.UnixMilli(favTestNow)))
	return favoriteRepo, activityRepo, svc
}

func TestFavoriteList(t *testing.T) {
	favoriteRepo, _, svc := newFavoriteFixture(t)

	favoriteRepo.On("ListByUser", mock.Anything, "ann@example.com").Return([]model.Favorite{
		{UserEmail: "ann@example.com", RecipeID: "r1"},
		{UserEmail: "ann@example.com", RecipeID: "r2"},
	}, nil)

	ids, err := svc.List(context.Background(), "ann@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

func TestFavoriteListEmpty(t *testing.T) {
	favoriteRepo, _, svc := newFavoriteFixture(t)

	favoriteRepo.On("ListByUser", mock.Anything, "ann@example.com").Return([]model.Favorite{}, nil)

	ids, err := svc.List(context.Background(), "ann@example.com")
	assert.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
}

func TestFavoriteAddMissingID(t *testing.T) {
	_, _, svc := newFavoriteFixture(t)

	err := svc.Add(context.Background(), "ann@example.com", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingRecipeID)
}

func TestFavoriteAddNew(t *testing.T) {
	favoriteRepo, activityRepo, svc := newFavoriteFixture(t)

	favoriteRepo.On("Exists", mock.Anything, "ann@example.com", "r1").Return(false, nil)
	favoriteRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Favorite) bool {
		return f.UserEmail == "ann@example.com" && f.RecipeID == "r1"
	})).Return(nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "added_favorite:r1", favTestNow, int64(1000)).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
		return a.Activity == "added_favorite:r1" && a.Timestamp == favTestNow
	})).Return(nil)

	assert.NoError(t, svc.Add(context.Background(), "ann@example.com", "r1"))
	favoriteRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

// Adding an existing bookmark creates no second row but still records the
// action in the activity log.
func TestFavoriteAddExisting(t *testing.T) {
	favoriteRepo, activityRepo, svc := newFavoriteFixture(t)

	favoriteRepo.On("Exists", mock.Anything, "ann@example.com", "r1").Return(true, nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "added_favorite:r1", favTestNow, int64(1000)).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, svc.Add(context.Background(), "ann@example.com", "r1"))
	favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	activityRepo.AssertExpectations(t)
}

func TestFavoriteRemove(t *testing.T) {
	favoriteRepo, activityRepo, svc := newFavoriteFixture(t)

	favoriteRepo.On("Delete", mock.Anything, "ann@example.com", "r1").Return(nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "removed_favorite:r1", favTestNow, int64(1000)).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Activity) bool {
		return a.Activity == "removed_favorite:r1"
	})).Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), "ann@example.com", "r1"))
	favoriteRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

// Removal logs the action even when no bookmark existed.
func TestFavoriteRemoveAbsentStillLogs(t *testing.T) {
	favoriteRepo, activityRepo, svc := newFavoriteFixture(t)

	favoriteRepo.On("Delete", mock.Anything, "ann@example.com", "never-added").Return(nil)
	activityRepo.On("FindNear", mock.Anything, "ann@example.com", "removed_favorite:never-added", favTestNow, int64(1000)).Return(nil, nil)
	activityRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), "ann@example.com", "never-added"))
	activityRepo.AssertExpectations(t)
}
