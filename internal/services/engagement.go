package services

import (
	"errors"
	"photogram/internal/db"
	"photogram/internal/models"
	"photogram/internal/utils"

	"gorm.io/gorm"
)

// ErrEmptyComment is returned for empty or whitespace-only comment text.
var ErrEmptyComment = errors.New("comment cannot be empty")

// ToggleLike is the whole like state machine: delete the row if it exists
// (unlike), insert it otherwise (like). Runs in one transaction; the
// unique index on (user_id, post_id) means a racing double insert leaves a
// single row, which we report as liked.
func ToggleLike(userID, postID uint) (liked bool, err error) {
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		findErr := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			First(&existing).Error

		if findErr == nil {
			liked = false
			return tx.Delete(&existing).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		like := models.Like{UserID: userID, PostID: postID}
		if createErr := tx.Create(&like).Error; createErr != nil {
			var count int64
			tx.Model(&models.Like{}).
				Where("user_id = ? AND post_id = ?", userID, postID).
				Count(&count)
			if count > 0 {
				liked = true // lost the race, row already there
				return nil
			}
			return createErr
		}
		liked = true
		return nil
	})
	return liked, err
}

// LikeCount derives the count from the likes table.
func LikeCount(postID uint) int64 {
	var count int64
	db.DB.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count)
	return count
}

// IsLiked reports whether the user currently likes the post.
func IsLiked(userID, postID uint) bool {
	var count int64
	db.DB.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count)
	return count > 0
}

// AddComment appends a comment to a post. Empty or whitespace-only text is
// a validation error and leaves the post untouched.
func AddComment(userID, postID uint, content string) (*models.Comment, error) {
	content = utils.SanitizeText(content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	comment := models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentsFor lists a post's comments oldest first, with authors.
func CommentsFor(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}
