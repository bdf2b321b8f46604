package repository

import (
	"fmt"
	"testing"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostReaction{},
		&models.CommentReaction{},
		&models.Bookmark{},
		&models.Follow{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// setupTestCache backs the cache package with a throwaway Redis so tests can
// observe caching and invalidation. Most tests run without it; the cache
// degrades to fetch-only when no client is set.
func setupTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

var userSeq int

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		Handle:    fmt.Sprintf("@writer%d", userSeq),
		Email:     fmt.Sprintf("writer%d@example.com", userSeq),
		Password:  "irrelevant-hash",
		FirstName: "Test",
		LastName:  "Writer",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:   "On Writing",
		Content: "Some thoughts worth sharing.",
		UserID:  authorID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, authorID, postID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Content:    "Well said.",
		UserID:     authorID,
		AuthorName: "Test Writer",
		PostID:     postID,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}
