package models

import (
	"time"
)

// Bookmark records that a user saved a post.
// The combination of UserID and PostID must be unique.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_bookmark" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_bookmark" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
