package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// PostService provides post publishing and reading business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
	ImageURL string `json:"image_url"`
}

func (in *PostInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.NewValidationError("Content is required")
	}
	return nil
}

// CreatePost publishes a post authored by the given user.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, in PostInput) (*models.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    strings.TrimSpace(in.Title),
		Content:  in.Content,
		Tags:     in.Tags,
		ImageURL: in.ImageURL,
		UserID:   authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, authorID)
}

// GetPost returns one post with counts and the viewer's reaction state.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// ListPosts returns the newest posts across all authors.
func (s *PostService) ListPosts(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.List(ctx, viewerID, limit, offset)
}

// ListByAuthor returns the author's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID, viewerID uint, limit, offset int) ([]models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthor(ctx, authorID, viewerID, limit, offset)
}

// ListBookmarked returns the viewer's saved posts.
func (s *PostService) ListBookmarked(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.ListBookmarked(ctx, viewerID, limit, offset)
}

// Feed returns posts from authors the viewer follows, newest first.
func (s *PostService) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.Feed(ctx, viewerID, limit, offset)
}

// UpdatePost applies edits to the caller's own post.
func (s *PostService) UpdatePost(ctx context.Context, postID, actorID uint, in PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(in.Title)
	post.Content = in.Content
	post.Tags = in.Tags
	post.ImageURL = in.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, actorID)
}

// DeletePost removes the caller's own post.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, actorID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
