package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AdminGetUsers handles GET /api/admin/users
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	return c.JSON(s.store.Users())
}

// AdminGetPosts handles GET /api/admin/posts
// Returns every post with its author and engagement totals.
func (s *Server) AdminGetPosts(c *fiber.Ctx) error {
	posts, err := s.resolver.AllPostsWithCounts()
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(posts)
}

// AdminDeleteUser handles DELETE /api/admin/users/:userId
// Removing a user cascades to their posts, likes, comments, and friendships.
// The admin account cannot be deleted.
func (s *Server) AdminDeleteUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if userID == middleware.AdminUserID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot delete admin user"))
	}

	if !s.resolver.DeleteUser(userID) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", userID))
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// AdminDeletePost handles DELETE /api/admin/posts/:postId
func (s *Server) AdminDeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if !s.resolver.DeletePost(postID) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", postID))
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// AdminToggleBan handles PUT /api/admin/users/:userId/ban
// Flips the target user's banned flag. The admin account cannot be banned.
func (s *Server) AdminToggleBan(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if userID == middleware.AdminUserID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot ban admin user"))
	}

	user := s.store.ToggleUserBan(userID)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", userID))
	}

	return c.JSON(user)
}
