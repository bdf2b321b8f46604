// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered author on the Inkwell platform.
//
// Follow edges are not stored on the user row; they live in the follows
// table (see Follow), so both sides of an edge are a single record.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Handle    string `gorm:"unique;not null" json:"handle"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`

	// One-time passcode for password reset, cleared after use.
	ResetCode          string     `json:"-"`
	ResetCodeExpiresAt *time.Time `json:"-"`

	// FollowersCount/FollowingCount are not persisted; computed at query time.
	FollowersCount int `gorm:"->" json:"followers_count"`
	FollowingCount int `gorm:"->" json:"following_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// DisplayName returns the user's full name, falling back to the handle.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Handle
	}
}

// UserSummary is the compact user representation embedded in follower and
// following listings.
type UserSummary struct {
	ID        uint   `json:"id"`
	Handle    string `json:"handle"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

// Summary converts a full user record into its listing form.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Handle:    u.Handle,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}
