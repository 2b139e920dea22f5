package services

import (
	"errors"
	"photogram/internal/db"
	"photogram/internal/models"
	"testing"
)

func TestFollowUnfollowRoundTrip(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	if IsFollowing(alice.ID, bob.ID) {
		t.Fatal("expected no edge before follow")
	}

	if err := Follow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if !IsFollowing(alice.ID, bob.ID) {
		t.Fatal("expected edge after follow")
	}
	if got := FollowerCount(bob.ID); got != 1 {
		t.Fatalf("follower count = %d, want 1", got)
	}
	if got := FollowingCount(alice.ID); got != 1 {
		t.Fatalf("following count = %d, want 1", got)
	}
	// Direction matters
	if IsFollowing(bob.ID, alice.ID) {
		t.Fatal("follow edge must be directed")
	}

	if err := Unfollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if IsFollowing(alice.ID, bob.ID) {
		t.Fatal("expected edge gone after unfollow")
	}
	if got := FollowerCount(bob.ID); got != 0 {
		t.Fatalf("follower count after unfollow = %d, want 0", got)
	}
}

func TestFollowIsIdempotent(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	for i := 0; i < 3; i++ {
		if err := Follow(alice.ID, bob.ID); err != nil {
			t.Fatalf("follow #%d: %v", i+1, err)
		}
	}

	var count int64
	db.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", alice.ID, bob.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("edge rows = %d, want 1", count)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")

	err := Follow(alice.ID, alice.ID)
	if !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}

	var count int64
	db.DB.Model(&models.Follow{}).Count(&count)
	if count != 0 {
		t.Fatalf("self-follow created %d rows", count)
	}
}

func TestUnfollowWithoutEdgeIsNoop(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	if err := Unfollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow without edge: %v", err)
	}
}
