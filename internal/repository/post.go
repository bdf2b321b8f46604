package repository

import (
	"context"
	"errors"
	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error)
	List(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]models.Post, error)
	ListBookmarked(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error)
	Feed(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails adds subqueries that compute engagement counts and the
// viewer's own reaction state in a single round trip. viewerID may be zero
// for anonymous reads, in which case the EXISTS checks come back false.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Select("posts.*, "+
		"(SELECT COUNT(*) FROM post_reactions WHERE post_reactions.post_id = posts.id AND post_reactions.kind = 'like') as likes_count, "+
		"(SELECT COUNT(*) FROM post_reactions WHERE post_reactions.post_id = posts.id AND post_reactions.kind = 'dislike') as dislikes_count, "+
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, "+
		"EXISTS(SELECT 1 FROM post_reactions WHERE post_reactions.post_id = posts.id AND post_reactions.user_id = ? AND post_reactions.kind = 'like') as liked, "+
		"EXISTS(SELECT 1 FROM post_reactions WHERE post_reactions.post_id = posts.id AND post_reactions.user_id = ? AND post_reactions.kind = 'dislike') as disliked, "+
		"EXISTS(SELECT 1 FROM bookmarks WHERE bookmarks.post_id = posts.id AND bookmarks.user_id = ?) as bookmarked",
		viewerID, viewerID, viewerID)
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeeds(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id, viewerID)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		return r.applyPostDetails(r.db.WithContext(ctx), viewerID).
			Preload("User").
			First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Where("posts.user_id = ?", authorID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListBookmarked(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id AND bookmarks.user_id = ?", viewerID).
		Order("bookmarks.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Feed returns posts authored by users the viewer follows, newest first.
func (r *postRepository) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	key := cache.FeedKey(viewerID, limit, offset)

	err := cache.Aside(ctx, key, &posts, cache.FeedTTL, func() error {
		return r.applyPostDetails(r.db.WithContext(ctx), viewerID).
			Preload("User").
			Where("posts.user_id IN (SELECT followee_id FROM follows WHERE follower_id = ?)", viewerID).
			Order("posts.created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&posts).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// Delete removes the post and everything referencing it. Child rows go
// first so the deletes never trip the foreign keys, and each statement is a
// plain delete, so a run that dies halfway can simply be repeated.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	statements := []string{
		`DELETE FROM comment_reactions
		 WHERE comment_id IN (SELECT id FROM comments WHERE post_id = ?)`,
		`DELETE FROM comments WHERE post_id = ?`,
		`DELETE FROM post_reactions WHERE post_id = ?`,
		`DELETE FROM bookmarks WHERE post_id = ?`,
		`DELETE FROM posts WHERE id = ?`,
	}
	for _, stmt := range statements {
		if err := r.db.WithContext(ctx).Exec(stmt, id).Error; err != nil {
			return models.NewInternalError(err)
		}
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeeds(ctx)
	return nil
}
