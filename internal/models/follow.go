package models

import (
	"time"
)

// Follow is a directed edge in the social graph: FollowerID follows
// FollowedID. Uniqueness of the pair is schema-enforced so a racing
// double-submit cannot create a duplicate edge. Self-follow is rejected
// at the service layer.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followed" json:"follower_id"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"follower"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followed" json:"followed_id"`
	Followed   User      `gorm:"foreignKey:FollowedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"followed"`
	CreatedAt  time.Time `json:"created_at"`
}
