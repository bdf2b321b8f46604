package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment attaches a comment to a post. The author's display name is
// stamped onto the row at creation time.
func (s *CommentService) CreateComment(ctx context.Context, postID, authorID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, authorID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:    content,
		UserID:     authorID,
		AuthorName: author.DisplayName(),
		PostID:     postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a post's comments, oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID, viewerID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, viewerID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, viewerID, limit, offset)
}

// UpdateComment edits the caller's own comment.
func (s *CommentService) UpdateComment(ctx context.Context, commentID, actorID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID, actorID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != actorID {
		return nil, models.NewForbiddenError("You can only edit your own comments")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The comment's author may delete it, and
// so may the author of the post it sits on.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, actorID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID, actorID)
	if err != nil {
		return err
	}
	if comment.UserID != actorID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID, actorID)
		if err != nil {
			return err
		}
		if post.UserID != actorID {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}
	return s.commentRepo.Delete(ctx, commentID, comment.PostID)
}
