// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment on a post.
//
// AuthorName is denormalized at creation time so comment listings do not
// depend on a join when the author record is gone mid-cascade.
type Comment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Content    string `gorm:"not null" json:"content"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	AuthorName string `json:"author_name"`
	PostID     uint   `gorm:"not null;index" json:"post_id"`
	User       User   `gorm:"foreignKey:UserID" json:"user"`
	Post       Post   `gorm:"foreignKey:PostID" json:"post,omitempty"`

	// Computed at query time, never persisted.
	LikesCount    int  `gorm:"->" json:"likes_count"`
	DislikesCount int  `gorm:"->" json:"dislikes_count"`
	Liked         bool `gorm:"->" json:"liked"`
	Disliked      bool `gorm:"->" json:"disliked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
