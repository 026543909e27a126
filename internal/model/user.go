package model

import "time"

// User represents a registered user. Email is the natural key; the password
// digest is never serialized.
type User struct {
	Email        string    `json:"email" gorm:"primaryKey;size:255"`
	Name         string    `json:"name" gorm:"size:255"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
