package services

import (
	"errors"
	"photogram/internal/db"
	"photogram/internal/models"
	"testing"
	"time"
)

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	post := createTestPost(t, bob.ID, "photo", time.Now())

	liked, err := ToggleLike(alice.ID, post.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked {
		t.Fatal("first toggle should like")
	}
	if got := LikeCount(post.ID); got != 1 {
		t.Fatalf("like count = %d, want 1", got)
	}
	if !IsLiked(alice.ID, post.ID) {
		t.Fatal("IsLiked should be true after like")
	}

	liked, err = ToggleLike(alice.ID, post.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked {
		t.Fatal("second toggle should unlike")
	}
	if got := LikeCount(post.ID); got != 0 {
		t.Fatalf("like count after unlike = %d, want 0", got)
	}

	// Row count for the pair never exceeds 1 across many toggles.
	for i := 0; i < 4; i++ {
		if _, err := ToggleLike(alice.ID, post.ID); err != nil {
			t.Fatalf("toggle #%d: %v", i+3, err)
		}
		var count int64
		db.DB.Model(&models.Like{}).
			Where("user_id = ? AND post_id = ?", alice.ID, post.ID).
			Count(&count)
		if count > 1 {
			t.Fatalf("like rows = %d, want at most 1", count)
		}
	}
}

func TestLikesAreIndependentPerUser(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")
	post := createTestPost(t, alice.ID, "photo", time.Now())

	if _, err := ToggleLike(bob.ID, post.ID); err != nil {
		t.Fatalf("bob like: %v", err)
	}
	if _, err := ToggleLike(carol.ID, post.ID); err != nil {
		t.Fatalf("carol like: %v", err)
	}
	if got := LikeCount(post.ID); got != 2 {
		t.Fatalf("like count = %d, want 2", got)
	}

	if _, err := ToggleLike(bob.ID, post.ID); err != nil {
		t.Fatalf("bob unlike: %v", err)
	}
	if got := LikeCount(post.ID); got != 1 {
		t.Fatalf("like count = %d, want 1", got)
	}
	if !IsLiked(carol.ID, post.ID) {
		t.Fatal("carol's like must survive bob's unlike")
	}
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	post := createTestPost(t, alice.ID, "photo", time.Now())

	for _, text := range []string{"", "   ", "\n\t  "} {
		if _, err := AddComment(alice.ID, post.ID, text); !errors.Is(err, ErrEmptyComment) {
			t.Fatalf("text %q: expected ErrEmptyComment, got %v", text, err)
		}
	}

	var count int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	if count != 0 {
		t.Fatalf("comment count = %d, want 0", count)
	}
}

func TestAddCommentAppendsOldestFirst(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	post := createTestPost(t, alice.ID, "photo", time.Now())

	if _, err := AddComment(bob.ID, post.ID, "first!"); err != nil {
		t.Fatalf("first comment: %v", err)
	}
	if _, err := AddComment(alice.ID, post.ID, "thanks"); err != nil {
		t.Fatalf("second comment: %v", err)
	}

	comments, err := CommentsFor(post.ID)
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("comment count = %d, want 2", len(comments))
	}
	if comments[0].Content != "first!" || comments[1].Content != "thanks" {
		t.Fatalf("order = [%s, %s], want oldest first", comments[0].Content, comments[1].Content)
	}
	if comments[0].User.Username != "bob" {
		t.Fatalf("comment author = %s, want bob", comments[0].User.Username)
	}
}

func TestAddCommentStripsMarkup(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	post := createTestPost(t, alice.ID, "photo", time.Now())

	comment, err := AddComment(alice.ID, post.ID, `<script>alert(1)</script>nice`)
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if comment.Content != "nice" {
		t.Fatalf("content = %q, want markup stripped", comment.Content)
	}
}
