package model

// Activity is one immutable entry in the per-user activity log. Rows are only
// ever inserted; there is no update or delete path anywhere in the codebase.
// Timestamp is milliseconds since epoch.
type Activity struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserEmail string `json:"email" gorm:"size:255;not null;index"`
	Activity  string `json:"activity" gorm:"size:255;not null"`
	Timestamp int64  `json:"timestamp" gorm:"not null;index"`
}
