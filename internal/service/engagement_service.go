package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// EngagementService provides reaction and bookmark business logic. Every
// operation is idempotent: repeating a call leaves the same state behind.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(engagementRepo repository.EngagementRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
	}
}

// ReactToPost sets the actor's reaction on a post, replacing a reaction of
// the other kind if present. It returns the post as the actor now sees it.
func (s *EngagementService) ReactToPost(ctx context.Context, actorID, postID uint, kind models.ReactionKind) (*models.Post, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Unknown reaction kind")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.engagementRepo.SetPostReaction(ctx, actorID, postID, kind); err != nil {
		return nil, err
	}
	observability.EngagementMutations.WithLabelValues("post", string(kind)).Inc()
	return s.postRepo.GetByID(ctx, postID, actorID)
}

// UnreactToPost clears the actor's reaction of the given kind, if any.
func (s *EngagementService) UnreactToPost(ctx context.Context, actorID, postID uint, kind models.ReactionKind) (*models.Post, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Unknown reaction kind")
	}
	if _, err := s.postRepo.GetByID(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.engagementRepo.ClearPostReaction(ctx, actorID, postID, kind); err != nil {
		return nil, err
	}
	observability.EngagementMutations.WithLabelValues("post", "un"+string(kind)).Inc()
	return s.postRepo.GetByID(ctx, postID, actorID)
}

// ReactToComment sets the actor's reaction on a comment.
func (s *EngagementService) ReactToComment(ctx context.Context, actorID, commentID uint, kind models.ReactionKind) (*models.Comment, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Unknown reaction kind")
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID, actorID); err != nil {
		return nil, err
	}
	if err := s.engagementRepo.SetCommentReaction(ctx, actorID, commentID, kind); err != nil {
		return nil, err
	}
	observability.EngagementMutations.WithLabelValues("comment", string(kind)).Inc()
	return s.commentRepo.GetByID(ctx, commentID, actorID)
}

// UnreactToComment clears the actor's reaction of the given kind, if any.
func (s *EngagementService) UnreactToComment(ctx context.Context, actorID, commentID uint, kind models.ReactionKind) (*models.Comment, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("Unknown reaction kind")
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID, actorID); err != nil {
		return nil, err
	}
	if err := s.engagementRepo.ClearCommentReaction(ctx, actorID, commentID, kind); err != nil {
		return nil, err
	}
	observability.EngagementMutations.WithLabelValues("comment", "un"+string(kind)).Inc()
	return s.commentRepo.GetByID(ctx, commentID, actorID)
}

// BookmarkPost saves a post to the actor's bookmarks.
func (s *EngagementService) BookmarkPost(ctx context.Context, actorID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.engagementRepo.AddBookmark(ctx, actorID, postID); err != nil {
		return nil, err
	}
	observability.EngagementMutations.WithLabelValues("post", "bookmark").Inc()
	return s.postRepo.GetByID(ctx, postID, actorID)
}

// UnbookmarkPost removes a post from the actor's bookmarks.
func (s *EngagementService) UnbookmarkPost(ctx context.Context, actorID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, actorID); err != nil {
		return nil, err
	}
	if err := s.engagementRepo.RemoveBookmark(ctx, actorID, postID); err != nil {
		return nil, err
	}
	observability.EngagementMutations.WithLabelValues("post", "unbookmark").Inc()
	return s.postRepo.GetByID(ctx, postID, actorID)
}
