package model

import "time"

// Favorite is a per-user recipe bookmark. The composite unique index keeps
// at most one row per (user_email, recipe_id).
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"size:255;not null;uniqueIndex:idx_fav_user_recipe"`
	RecipeID  string    `json:"recipe_id" gorm:"size:255;not null;uniqueIndex:idx_fav_user_recipe"`
	CreatedAt time.Time `json:"created_at"`
}
