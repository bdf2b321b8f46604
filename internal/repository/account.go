package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// AccountRepository removes a user and everything hanging off them. The
// steps are plain deletes, so a cascade that dies halfway can simply be run
// again; rows already gone stay gone. Callers must run the reaction and
// bookmark sweeps before DeleteComments/DeletePosts: the sweeps locate rows
// through the content tables, so the content has to still be there.
type AccountRepository interface {
	DeleteCommentReactions(ctx context.Context, userID uint) error
	DeletePostReactions(ctx context.Context, userID uint) error
	DeleteBookmarks(ctx context.Context, userID uint) error
	DeleteFollows(ctx context.Context, userID uint) error
	DeleteComments(ctx context.Context, userID uint) error
	DeletePosts(ctx context.Context, userID uint) error
	DeleteUser(ctx context.Context, userID uint) error
	PurgeOrphans(ctx context.Context) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns a new AccountRepository implementation.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// DeleteCommentReactions removes the user's own comment reactions, reactions
// others left on the user's comments, and reactions on comments that sit on
// the user's posts (those comments go away with the posts).
func (r *accountRepository) DeleteCommentReactions(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM comment_reactions
		 WHERE user_id = ?
		    OR comment_id IN (SELECT id FROM comments WHERE user_id = ?)
		    OR comment_id IN (SELECT id FROM comments WHERE post_id IN (SELECT id FROM posts WHERE user_id = ?))`,
		userID, userID, userID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeletePostReactions removes the user's reactions plus all reactions on
// posts the user authored.
func (r *accountRepository) DeletePostReactions(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM post_reactions
		 WHERE user_id = ?
		    OR post_id IN (SELECT id FROM posts WHERE user_id = ?)`,
		userID, userID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteBookmarks removes the user's bookmarks and other users' bookmarks of
// the user's posts.
func (r *accountRepository) DeleteBookmarks(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM bookmarks
		 WHERE user_id = ?
		    OR post_id IN (SELECT id FROM posts WHERE user_id = ?)`,
		userID, userID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteFollows removes follow edges in both directions.
func (r *accountRepository) DeleteFollows(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM follows WHERE follower_id = ? OR followee_id = ?`,
		userID, userID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteComments removes comments the user wrote anywhere, plus comments
// other users left on the user's posts.
func (r *accountRepository) DeleteComments(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM comments
		 WHERE user_id = ?
		    OR post_id IN (SELECT id FROM posts WHERE user_id = ?)`,
		userID, userID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *accountRepository) DeletePosts(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM posts WHERE user_id = ?`, userID).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *accountRepository) DeleteUser(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&models.User{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, userID)
	cache.InvalidatePosts(ctx)
	cache.InvalidateFeeds(ctx)
	return nil
}

// PurgeOrphans deletes rows whose user or target row is gone. A completed
// cascade leaves nothing for it to find; one that died partway does. It
// returns the number of rows removed.
func (r *accountRepository) PurgeOrphans(ctx context.Context) (int64, error) {
	// Content first: dropping an orphaned post orphans the rows hanging off
	// it, and the later statements pick those up in the same pass.
	statements := []string{
		`DELETE FROM posts WHERE user_id NOT IN (SELECT id FROM users)`,
		`DELETE FROM comments
		 WHERE user_id NOT IN (SELECT id FROM users)
		    OR post_id NOT IN (SELECT id FROM posts)`,
		`DELETE FROM comment_reactions
		 WHERE user_id NOT IN (SELECT id FROM users)
		    OR comment_id NOT IN (SELECT id FROM comments)`,
		`DELETE FROM post_reactions
		 WHERE user_id NOT IN (SELECT id FROM users)
		    OR post_id NOT IN (SELECT id FROM posts)`,
		`DELETE FROM bookmarks
		 WHERE user_id NOT IN (SELECT id FROM users)
		    OR post_id NOT IN (SELECT id FROM posts)`,
	}

	var removed int64
	for _, stmt := range statements {
		res := r.db.WithContext(ctx).Exec(stmt)
		if res.Error != nil {
			return removed, models.NewInternalError(res.Error)
		}
		removed += res.RowsAffected
	}
	if removed > 0 {
		cache.InvalidatePosts(ctx)
		cache.InvalidateFeeds(ctx)
	}
	return removed, nil
}
