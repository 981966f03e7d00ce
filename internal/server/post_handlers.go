package server

import (
	"strings"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts
// Returns the authenticated viewer's personalized feed: own posts plus
// accepted friends' posts, newest first, with engagement data attached.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	feed, err := s.resolver.Feed(currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(feed)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post content cannot be empty"))
	}

	post := s.store.CreatePost(currentUserID(c), req.Content)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetUserPosts handles GET /api/posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	return c.JSON(s.store.PostsByUser(userID))
}

// LikePost handles POST /api/posts/:postId/like
// Liking an already-liked post is rejected; the response carries the updated
// like count either way.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if s.store.GetPost(postID) == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	like, likeErr := s.store.CreateLike(currentUserID(c), postID)
	if likeErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, likeErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"like":  like,
		"count": len(s.store.LikesByPost(postID)),
	})
}

// UnlikePost handles DELETE /api/posts/:postId/like
// Unliking a post the viewer never liked is a no-op success.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if s.store.GetPost(postID) == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	s.store.RemoveLike(currentUserID(c), postID)

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(s.store.LikesByPost(postID)),
	})
}
