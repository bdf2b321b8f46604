package service

import (
	"context"

	"inkwell/internal/middleware"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// AccountService orchestrates account deletion. The cascade runs as a fixed
// sequence of idempotent steps; if one fails, the error is returned and the
// whole cascade can be retried from the start without harm.
type AccountService struct {
	accountRepo repository.AccountRepository
	userRepo    repository.UserRepository
}

// NewAccountService returns a new AccountService.
func NewAccountService(accountRepo repository.AccountRepository, userRepo repository.UserRepository) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		userRepo:    userRepo,
	}
}

type cascadeStep struct {
	name string
	run  func(context.Context, uint) error
}

// DeleteAccount removes the user and every row referencing them: comments,
// reactions, bookmarks, follow edges and posts, along with other users'
// engagement on that content. The sweeps that locate rows through the
// content tables run before the content itself is removed.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	steps := []cascadeStep{
		{"comment_reactions", s.accountRepo.DeleteCommentReactions},
		{"post_reactions", s.accountRepo.DeletePostReactions},
		{"bookmarks", s.accountRepo.DeleteBookmarks},
		{"follows", s.accountRepo.DeleteFollows},
		{"comments", s.accountRepo.DeleteComments},
		{"posts", s.accountRepo.DeletePosts},
		{"user", s.accountRepo.DeleteUser},
	}

	for _, step := range steps {
		if err := step.run(ctx, userID); err != nil {
			observability.CascadeSteps.WithLabelValues(step.name, "failure").Inc()
			middleware.Logger.ErrorContext(ctx, "account cascade step failed",
				"step", step.name,
				"user_id", userID,
				"error", err,
			)
			return err
		}
		observability.CascadeSteps.WithLabelValues(step.name, "success").Inc()
	}

	middleware.Logger.InfoContext(ctx, "account deleted", "user_id", userID)
	return nil
}

// PurgeOrphans removes engagement and content rows left dangling by a
// cascade that did not finish. Safe to run at any time.
func (s *AccountService) PurgeOrphans(ctx context.Context) (int64, error) {
	removed, err := s.accountRepo.PurgeOrphans(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		middleware.Logger.WarnContext(ctx, "purged orphaned rows", "count", removed)
	}
	return removed, nil
}
