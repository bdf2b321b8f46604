package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"
)

func TestCommentServiceCreateStampsAuthorName(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 4, Handle: "@quillsmith", FirstName: "Quill", LastName: "Smith"}, nil
	}

	var created *models.Comment
	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		created = c
		return nil
	}

	svc := NewCommentService(comments, noopPostRepo(), users)
	_, err := svc.CreateComment(context.Background(), 2, 4, "Nice piece.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AuthorName != "Quill Smith" {
		t.Fatalf("author name %q, want full name", created.AuthorName)
	}
	if created.PostID != 2 || created.UserID != 4 {
		t.Fatalf("comment wired wrong: %#v", created)
	}
}

func TestCommentServiceCreateEmptyContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())

	_, err := svc.CreateComment(context.Background(), 2, 4, "   ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestCommentServiceCreateMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", 2)
	}

	svc := NewCommentService(noopCommentRepo(), posts, noopUserRepo())
	_, err := svc.CreateComment(context.Background(), 2, 4, "orphan")
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestCommentServiceDeleteByPostAuthor(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(context.Context, uint, uint) (*models.Comment, error) {
		return &models.Comment{ID: 9, UserID: 4, PostID: 2}, nil
	}
	deleted := false
	comments.deleteFn = func(_ context.Context, _, postID uint) error {
		if postID != 2 {
			t.Fatalf("delete must carry the comment's post id, got %d", postID)
		}
		deleted = true
		return nil
	}

	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
		return &models.Post{ID: 2, UserID: 7}, nil
	}

	// Actor 7 owns the post but not the comment.
	svc := NewCommentService(comments, posts, noopUserRepo())
	if err := svc.DeleteComment(context.Background(), 9, 7); err != nil {
		t.Fatalf("post author must be allowed to delete: %v", err)
	}
	if !deleted {
		t.Fatal("comment was not deleted")
	}
}

func TestCommentServiceDeleteForbiddenForStranger(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(context.Context, uint, uint) (*models.Comment, error) {
		return &models.Comment{ID: 9, UserID: 4, PostID: 2}, nil
	}

	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
		return &models.Post{ID: 2, UserID: 7}, nil
	}

	svc := NewCommentService(comments, posts, noopUserRepo())
	err := svc.DeleteComment(context.Background(), 9, 1)
	if err == nil {
		t.Fatal("expected forbidden error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
}
