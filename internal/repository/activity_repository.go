package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

// ActivityRepository defines activity log persistence operations. The log is
// append-only: there is deliberately no update or delete method.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	// FindNear returns a row for (email, activity) whose timestamp lies
	// within window milliseconds of ts, or (nil, nil) if none exists.
	FindNear(ctx context.Context, email, activity string, ts, window int64) (*model.Activity, error)
	// ListByUser returns rows newest first. limit <= 0 means no limit.
	ListByUser(ctx context.Context, email string, limit int) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindNear(ctx context.Context, email, activity string, ts, window int64) (*model.Activity, error) {
	var row model.Activity
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND activity = ? AND ABS(timestamp - ?) < ?", email, activity, ts, window).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *activityRepository) ListByUser(ctx context.Context, email string, limit int) ([]model.Activity, error) {
	q := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []model.Activity
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
