package services

import (
	"fmt"
	"photogram/internal/db"
	"photogram/internal/models"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package-level gorm handle at a fresh in-memory
// sqlite database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(g); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	db.DB = g
	t.Cleanup(func() {
		db.DB = nil
		sqlDB.Close()
	})
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestPost(t *testing.T, userID uint, caption string, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		UserID:    userID,
		ImageFile: "test.jpg",
		Caption:   caption,
		CreatedAt: createdAt,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("create post %q: %v", caption, err)
	}
	return post
}
