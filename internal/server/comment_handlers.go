package server

import (
	"strings"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/:postId/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if s.store.GetPost(postID) == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment content cannot be empty"))
	}

	userID := currentUserID(c)
	comment := s.store.CreateComment(userID, postID, req.Content)

	author := s.store.GetUser(userID)
	if author == nil {
		return models.RespondWithAppError(c,
			models.NewConsistencyFaultError("comment author missing"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.CommentWithAuthor{
		Comment: *comment,
		Author:  *author,
	})
}

// GetComments handles GET /api/posts/:postId/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if s.store.GetPost(postID) == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	comments, resolveErr := s.resolver.CommentsWithAuthors(postID)
	if resolveErr != nil {
		return models.RespondWithAppError(c, resolveErr)
	}
	return c.JSON(comments)
}
