package service

import (
	"context"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// FollowService provides social graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow subscribes the actor to the target's posts. Following yourself is
// rejected; following someone you already follow is a no-op.
func (s *FollowService) Follow(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.followRepo.Follow(ctx, actorID, targetID); err != nil {
		return err
	}
	observability.FollowMutations.WithLabelValues("follow").Inc()
	return nil
}

// Unfollow removes the actor's subscription to the target. Unfollowing
// someone you do not follow is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return models.NewValidationError("You cannot unfollow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	if err := s.followRepo.Unfollow(ctx, actorID, targetID); err != nil {
		return err
	}
	observability.FollowMutations.WithLabelValues("unfollow").Inc()
	return nil
}

// IsFollowing reports whether the actor follows the target.
func (s *FollowService) IsFollowing(ctx context.Context, actorID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, actorID, targetID)
}

// Followers returns the users following the given user.
func (s *FollowService) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followRepo.Followers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// Following returns the users the given user follows.
func (s *FollowService) Following(ctx context.Context, userID uint, limit, offset int) ([]models.UserSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	users, err := s.followRepo.Following(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// Reconcile sweeps follow edges pointing at deleted accounts. It is meant
// to run periodically and after recovering from a failed account deletion.
func (s *FollowService) Reconcile(ctx context.Context) (int64, error) {
	removed, err := s.followRepo.Reconcile(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		middleware.Logger.WarnContext(ctx, "purged orphaned follow edges", "count", removed)
	}
	return removed, nil
}

func summarize(users []models.User) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
