package service

import (
	"context"
	"fmt"

	"recipebox/internal/clock"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const (
	// dedupWindowMillis is the span within which a repeated (email, activity)
	// pair collapses into the already-stored row. Tolerates client retries
	// without polluting the permanent history.
	dedupWindowMillis = 1000

	// maxListLimit caps how many rows a single list call may return.
	maxListLimit = 1000
)

// ActivityService exposes the append-only activity log.
type ActivityService interface {
	List(ctx context.Context, email string, limit int) ([]model.Activity, error)
	// Add appends an entry. ts == 0 means "now". Returns duplicate=true when
	// an entry for the same (email, activity) already exists inside the
	// de-duplication window; the call still succeeds without inserting.
	Add(ctx context.Context, email, activity string, ts int64) (duplicate bool, err error)
}

type activityService struct {
	activities repository.ActivityRepository
	tx         repository.TxManager
	clock      clock.Clock
}

// NewActivityService creates a new activity service.
func NewActivityService(activities repository.ActivityRepository, tx repository.TxManager, clk clock.Clock) ActivityService {
	return &activityService{activities: activities, tx: tx, clock: clk}
}

func (s *activityService) List(ctx context.Context, email string, limit int) ([]model.Activity, error) {
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if limit < 0 {
		limit = 0
	}
	rows, err := s.activities.ListByUser(ctx, email, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return rows, nil
}

func (s *activityService) Add(ctx context.Context, email, activity string, ts int64) (bool, error) {
	if activity == "" {
		return false, apperrors.ErrMissingActivity
	}
	if ts == 0 {
		ts = s.clock.Now().UnixMilli()
	}

	var duplicate bool
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var txErr error
		duplicate, txErr = appendActivity(ctx, repos.Activities, email, activity, ts)
		return txErr
	})
	if err != nil {
		return false, fmt.Errorf("add activity: %w", err)
	}
	return duplicate, nil
}

// appendActivity inserts an activity row unless one for the same
// (email, activity) already sits inside the de-duplication window, in which
// case the existing row stands and duplicate=true is reported. Every activity
// emission in the system funnels through here, so the window applies to
// internal emissions as well as client appends.
func appendActivity(ctx context.Context, activities repository.ActivityRepository, email, activity string, ts int64) (bool, error) {
	existing, err := activities.FindNear(ctx, email, activity, ts, dedupWindowMillis)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, nil
	}
	return false, activities.Create(ctx, &model.Activity{
		UserEmail: email,
		Activity:  activity,
		Timestamp: ts,
	})
}
