package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ImageFile string    `gorm:"size:120;not null" json:"image_file"` // opaque storage key
	Caption   string    `gorm:"type:text;not null" json:"caption"`
	CreatedAt time.Time `json:"created_at"`

	// Filled by queries, not stored. Like counts are always derived from
	// the likes table, never kept as a counter on the post.
	LikeCount    int64 `gorm:"-" json:"like_count"`
	CommentCount int64 `gorm:"-" json:"comment_count"`
}
