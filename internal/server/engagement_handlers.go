package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost handles PUT /api/post/like/:id. Liking replaces any standing
// dislike; liking twice changes nothing.
func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.reactToPost(c, models.ReactionLike, true)
}

// UnlikePost handles PUT /api/post/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	return s.reactToPost(c, models.ReactionLike, false)
}

// DislikePost handles PUT /api/post/dislike/:id
func (s *Server) DislikePost(c *fiber.Ctx) error {
	return s.reactToPost(c, models.ReactionDislike, true)
}

// UndislikePost handles PUT /api/post/undislike/:id
func (s *Server) UndislikePost(c *fiber.Ctx) error {
	return s.reactToPost(c, models.ReactionDislike, false)
}

func (s *Server) reactToPost(c *fiber.Ctx, kind models.ReactionKind, set bool) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var post *models.Post
	if set {
		post, err = s.engagementService.ReactToPost(c.Context(), currentUserID(c), postID, kind)
	} else {
		post, err = s.engagementService.UnreactToPost(c.Context(), currentUserID(c), postID, kind)
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// LikeComment handles PUT /api/comment/like/:id
func (s *Server) LikeComment(c *fiber.Ctx) error {
	return s.reactToComment(c, models.ReactionLike, true)
}

// UnlikeComment handles PUT /api/comment/unlike/:id
func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	return s.reactToComment(c, models.ReactionLike, false)
}

// DislikeComment handles PUT /api/comment/dislike/:id
func (s *Server) DislikeComment(c *fiber.Ctx) error {
	return s.reactToComment(c, models.ReactionDislike, true)
}

// UndislikeComment handles PUT /api/comment/undislike/:id
func (s *Server) UndislikeComment(c *fiber.Ctx) error {
	return s.reactToComment(c, models.ReactionDislike, false)
}

func (s *Server) reactToComment(c *fiber.Ctx, kind models.ReactionKind, set bool) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var comment *models.Comment
	if set {
		comment, err = s.engagementService.ReactToComment(c.Context(), currentUserID(c), commentID, kind)
	} else {
		comment, err = s.engagementService.UnreactToComment(c.Context(), currentUserID(c), commentID, kind)
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// BookmarkPost handles POST /api/post/bookmark/:id
func (s *Server) BookmarkPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.engagementService.BookmarkPost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

// UnbookmarkPost handles DELETE /api/post/bookmark/remove/:id
func (s *Server) UnbookmarkPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.engagementService.UnbookmarkPost(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}
