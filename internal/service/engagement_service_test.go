package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"
)

func TestEngagementServiceRejectsUnknownKind(t *testing.T) {
	svc := NewEngagementService(noopEngagementRepo(), noopPostRepo(), noopCommentRepo())

	_, err := svc.ReactToPost(context.Background(), 1, 2, models.ReactionKind("love"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestEngagementServicePostMustExist(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", 5)
	}

	wrote := false
	eng := noopEngagementRepo()
	eng.setPostReactionFn = func(context.Context, uint, uint, models.ReactionKind) error {
		wrote = true
		return nil
	}

	svc := NewEngagementService(eng, posts, noopCommentRepo())
	_, err := svc.ReactToPost(context.Background(), 1, 5, models.ReactionLike)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if wrote {
		t.Fatal("reaction must not be written for a missing post")
	}
}

func TestEngagementServiceReactUsesSessionActor(t *testing.T) {
	var gotUser uint
	eng := noopEngagementRepo()
	eng.setPostReactionFn = func(_ context.Context, userID, _ uint, _ models.ReactionKind) error {
		gotUser = userID
		return nil
	}

	svc := NewEngagementService(eng, noopPostRepo(), noopCommentRepo())
	if _, err := svc.ReactToPost(context.Background(), 31, 5, models.ReactionDislike); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != 31 {
		t.Fatalf("reaction recorded for user %d, want 31", gotUser)
	}
}

func TestEngagementServiceUnreactPassesKind(t *testing.T) {
	var gotKind models.ReactionKind
	eng := noopEngagementRepo()
	eng.clearPostReactionFn = func(_ context.Context, _, _ uint, kind models.ReactionKind) error {
		gotKind = kind
		return nil
	}

	svc := NewEngagementService(eng, noopPostRepo(), noopCommentRepo())
	if _, err := svc.UnreactToPost(context.Background(), 1, 2, models.ReactionLike); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKind != models.ReactionLike {
		t.Fatalf("cleared kind %q, want like", gotKind)
	}
}

func TestEngagementServiceBookmarkReturnsFreshPost(t *testing.T) {
	calls := 0
	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
		calls++
		return &models.Post{ID: 2, Bookmarked: calls > 1}, nil
	}

	svc := NewEngagementService(noopEngagementRepo(), posts, noopCommentRepo())
	post, err := svc.BookmarkPost(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !post.Bookmarked {
		t.Fatal("returned post should reflect the new bookmark")
	}
}

func TestEngagementServiceCommentReactionChecksComment(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(context.Context, uint, uint) (*models.Comment, error) {
		return nil, models.NewNotFoundError("Comment", 9)
	}

	svc := NewEngagementService(noopEngagementRepo(), noopPostRepo(), comments)
	_, err := svc.ReactToComment(context.Background(), 1, 9, models.ReactionLike)
	if err == nil {
		t.Fatal("expected not-found error")
	}
}
