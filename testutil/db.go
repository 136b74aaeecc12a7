// Package testutil provides shared fixtures for package tests: an isolated
// in-memory database and seed helpers.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"socialapp/database"
	"socialapp/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an in-memory sqlite database private to the calling test, with
// the same TranslateError setting as production so unique violations surface
// as gorm.ErrDuplicatedKey.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedUser inserts an account and returns it.
func SeedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

// SeedPost inserts a post for the author and returns it.
func SeedPost(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Post {
	t.Helper()

	post := &models.Post{AuthorID: authorID, Title: title, Body: "body of " + title}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post %s: %v", title, err)
	}
	return post
}

// SetPostCreatedAt rewrites a post's timestamp so ordering tests control
// recency explicitly instead of racing the clock.
func SetPostCreatedAt(t *testing.T, db *gorm.DB, postID uint, at time.Time) {
	t.Helper()

	err := db.Model(&models.Post{}).Where("post_id = ?", postID).Update("created_at", at).Error
	if err != nil {
		t.Fatalf("set created_at for post %d: %v", postID, err)
	}
}
