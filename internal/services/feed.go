package services

import (
	"photogram/internal/db"
	"photogram/internal/models"
)

// Ordering is newest first with the row ID as tie-break so two posts
// sharing a timestamp always come back in a stable order.
const feedOrder = "created_at DESC, id DESC"

// FeedFor returns the personalized feed: posts owned by the viewer or by
// anyone the viewer follows, newest first.
func FeedFor(viewerID uint) ([]models.Post, error) {
	followed := db.DB.Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", viewerID)

	var posts []models.Post
	err := db.DB.Preload("User").
		Where("user_id IN (?) OR user_id = ?", followed, viewerID).
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	fillEngagementCounts(posts)
	return posts, nil
}

// GlobalFeed returns every post, newest first. Serves the anonymous home
// page and the explore view.
func GlobalFeed() ([]models.Post, error) {
	var posts []models.Post
	err := db.DB.Preload("User").
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	fillEngagementCounts(posts)
	return posts, nil
}

// PostsBy returns a single user's posts, newest first (profile page).
func PostsBy(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := db.DB.Preload("User").
		Where("user_id = ?", userID).
		Order(feedOrder).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	fillEngagementCounts(posts)
	return posts, nil
}

// fillEngagementCounts batch-fills like and comment counts for a page of
// posts with one grouped query per table.
func fillEngagementCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countRow struct {
		PostID uint
		Count  int64
	}

	var likeRows []countRow
	db.DB.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeRows)

	var commentRows []countRow
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentRows)

	likes := make(map[uint]int64, len(likeRows))
	for _, r := range likeRows {
		likes[r.PostID] = r.Count
	}
	comments := make(map[uint]int64, len(commentRows))
	for _, r := range commentRows {
		comments[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].LikeCount = likes[posts[i].ID]
		posts[i].CommentCount = comments[posts[i].ID]
	}
}
