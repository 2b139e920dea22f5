package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	Avatar    string    `gorm:"size:120;default:'default.jpg'" json:"avatar"` // upload key, served from /static/uploads
	Bio       string    `gorm:"size:250" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	// No DeletedAt: deletes are hard and cascade to posts, comments,
	// likes and follow edges via the child constraints.
}
