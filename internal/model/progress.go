package model

// Progress tracks per-user cooking state for one recipe. Writes are upserts
// keyed on (user_email, recipe_id); Timestamp is milliseconds since epoch.
type Progress struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserEmail string `json:"user_email" gorm:"size:255;not null;uniqueIndex:idx_progress_user_recipe"`
	RecipeID  string `json:"recipe_id" gorm:"size:255;not null;uniqueIndex:idx_progress_user_recipe"`
	Status    string `json:"status" gorm:"size:255;not null"`
	Position  int    `json:"position" gorm:"default:0"`
	Timestamp int64  `json:"timestamp" gorm:"not null"`
}
