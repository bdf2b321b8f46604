// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a published article on the Inkwell platform.
//
// Engagement sets (likes, dislikes, bookmarks) are stored as join-table rows
// (PostReaction, Bookmark); the count and per-viewer fields here are computed
// at query time via SELECT subqueries.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Tags     string `json:"tags"`
	ImageURL string `json:"image_url"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`

	// Computed at query time, never persisted.
	LikesCount    int  `gorm:"->" json:"likes_count"`
	DislikesCount int  `gorm:"->" json:"dislikes_count"`
	CommentsCount int  `gorm:"->" json:"comments_count"`
	Liked         bool `gorm:"->" json:"liked"`
	Disliked      bool `gorm:"->" json:"disliked"`
	Bookmarked    bool `gorm:"->" json:"bookmarked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
