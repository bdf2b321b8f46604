package models

import (
	"time"
)

// ReactionKind is the direction of a reaction on a post or comment.
type ReactionKind string

const (
	// ReactionLike marks a positive reaction.
	ReactionLike ReactionKind = "like"
	// ReactionDislike marks a negative reaction.
	ReactionDislike ReactionKind = "dislike"
)

// Valid reports whether k is a known reaction kind.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// PostReaction records one user's reaction on one post.
// The unique (UserID, PostID) index means a user holds at most one reaction
// per post, so like and dislike are mutually exclusive by construction.
type PostReaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_post_reaction" json:"user_id"`
	PostID    uint         `gorm:"not null;uniqueIndex:idx_post_reaction;index" json:"post_id"`
	Kind      ReactionKind `gorm:"type:varchar(10);not null" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// CommentReaction records one user's reaction on one comment, under the same
// one-row-per-(user, target) invariant as PostReaction.
type CommentReaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_comment_reaction" json:"user_id"`
	CommentID uint         `gorm:"not null;uniqueIndex:idx_comment_reaction;index" json:"comment_id"`
	Kind      ReactionKind `gorm:"type:varchar(10);not null" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`

	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}
