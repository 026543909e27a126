package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles transaction-bound repositories handed to a
// WithTransaction callback.
type Repositories struct {
	Users      UserRepository
	Favorites  FavoriteRepository
	Progress   ProgressRepository
	Activities ActivityRepository
}

// TxManager runs multi-repository write sequences inside a single database
// transaction so a primary mutation and its activity log append commit or
// roll back together.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager over the given database handle.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, Repositories{
			Users:      NewUserRepository(tx),
			Favorites:  NewFavoriteRepository(tx),
			Progress:   NewProgressRepository(tx),
			Activities: NewActivityRepository(tx),
		})
	})
}
