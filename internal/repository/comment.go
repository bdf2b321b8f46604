package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id, viewerID uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID, viewerID uint, limit, offset int) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id, postID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) applyCommentDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Select("comments.*, "+
		"(SELECT COUNT(*) FROM comment_reactions WHERE comment_reactions.comment_id = comments.id AND comment_reactions.kind = 'like') as likes_count, "+
		"(SELECT COUNT(*) FROM comment_reactions WHERE comment_reactions.comment_id = comments.id AND comment_reactions.kind = 'dislike') as dislikes_count, "+
		"EXISTS(SELECT 1 FROM comment_reactions WHERE comment_reactions.comment_id = comments.id AND comment_reactions.user_id = ? AND comment_reactions.kind = 'like') as liked, "+
		"EXISTS(SELECT 1 FROM comment_reactions WHERE comment_reactions.comment_id = comments.id AND comment_reactions.user_id = ? AND comment_reactions.kind = 'dislike') as disliked",
		viewerID, viewerID)
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	// The post's cached comment count is now stale.
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id, viewerID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.applyCommentDetails(r.db.WithContext(ctx), viewerID).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID, viewerID uint, limit, offset int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.applyCommentDetails(r.db.WithContext(ctx), viewerID).
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the comment and its reactions. Reactions go first so the
// delete never trips the foreign key on comment_reactions.
func (r *commentRepository) Delete(ctx context.Context, id, postID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM comment_reactions WHERE comment_id = ?`, id).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
