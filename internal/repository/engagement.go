package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository persists reactions and bookmarks. Every mutation is a
// single statement, so concurrent calls for the same (user, target) pair
// serialize at the database and cannot leave partial state behind.
type EngagementRepository interface {
	SetPostReaction(ctx context.Context, userID, postID uint, kind models.ReactionKind) error
	ClearPostReaction(ctx context.Context, userID, postID uint, kind models.ReactionKind) error
	SetCommentReaction(ctx context.Context, userID, commentID uint, kind models.ReactionKind) error
	ClearCommentReaction(ctx context.Context, userID, commentID uint, kind models.ReactionKind) error
	AddBookmark(ctx context.Context, userID, postID uint) error
	RemoveBookmark(ctx context.Context, userID, postID uint) error
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository returns a new EngagementRepository implementation.
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// SetPostReaction records a like or dislike. The upsert flips an existing
// reaction of the other kind, which keeps like and dislike mutually
// exclusive without a read-modify-write cycle.
func (r *engagementRepository) SetPostReaction(ctx context.Context, userID, postID uint, kind models.ReactionKind) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO post_reactions (user_id, post_id, kind, created_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, post_id) DO UPDATE SET kind = EXCLUDED.kind`,
		userID, postID, string(kind)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// ClearPostReaction removes the reaction only when it matches the given
// kind, so un-liking never clears a dislike and vice versa. Clearing a
// reaction that is not there is a no-op.
func (r *engagementRepository) ClearPostReaction(ctx context.Context, userID, postID uint, kind models.ReactionKind) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM post_reactions WHERE user_id = ? AND post_id = ? AND kind = ?`,
		userID, postID, string(kind)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *engagementRepository) SetCommentReaction(ctx context.Context, userID, commentID uint, kind models.ReactionKind) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO comment_reactions (user_id, comment_id, kind, created_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, comment_id) DO UPDATE SET kind = EXCLUDED.kind`,
		userID, commentID, string(kind)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *engagementRepository) ClearCommentReaction(ctx context.Context, userID, commentID uint, kind models.ReactionKind) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM comment_reactions WHERE user_id = ? AND comment_id = ? AND kind = ?`,
		userID, commentID, string(kind)).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AddBookmark is idempotent: bookmarking twice leaves a single row.
func (r *engagementRepository) AddBookmark(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO bookmarks (user_id, post_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *engagementRepository) RemoveBookmark(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM bookmarks WHERE user_id = ? AND post_id = ?`,
		userID, postID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
