package services

import (
	"errors"
	"photogram/internal/db"
	"photogram/internal/models"
)

// ErrSelfFollow is returned when a user tries to follow themself. Surfaced
// to the user on the profile page.
var ErrSelfFollow = errors.New("you cannot follow yourself")

// IsFollowing reports whether a follow edge follower -> followed exists.
func IsFollowing(followerID, followedID uint) bool {
	var count int64
	db.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count)
	return count > 0
}

// Follow inserts a follow edge. Following someone already followed is a
// no-op. The composite unique index on (follower_id, followed_id) is the
// guard against a concurrent double insert; a duplicate-key failure there
// just means the edge already exists.
func Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	if IsFollowing(followerID, followedID) {
		return nil
	}

	edge := models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}
	if err := db.DB.Create(&edge).Error; err != nil {
		if IsFollowing(followerID, followedID) {
			return nil // lost the race, edge exists
		}
		return err
	}
	return nil
}

// Unfollow removes the follow edge if present. Idempotent: unfollowing
// someone not followed is a no-op.
func Unfollow(followerID, followedID uint) error {
	return db.DB.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

// FollowerCount counts edges pointing at the user.
func FollowerCount(userID uint) int64 {
	var count int64
	db.DB.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count)
	return count
}

// FollowingCount counts edges originating from the user.
func FollowingCount(userID uint) int64 {
	var count int64
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count)
	return count
}
