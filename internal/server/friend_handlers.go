package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/request
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	var req struct {
		FriendID uint `json:"friend_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.FriendID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("friend_id is required"))
	}

	friendship, err := s.resolver.CreateFriendRequest(currentUserID(c), req.FriendID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// AcceptFriendRequest handles PUT /api/friends/request/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	friendship, acceptErr := s.resolver.AcceptFriendRequest(requestID)
	if acceptErr != nil {
		return models.RespondWithAppError(c, acceptErr)
	}
	return c.JSON(friendship)
}

// RejectFriendRequest handles PUT /api/friends/request/:requestId/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	friendship, rejectErr := s.resolver.RejectFriendRequest(requestID)
	if rejectErr != nil {
		return models.RespondWithAppError(c, rejectErr)
	}
	return c.JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests
// Returns pending requests addressed to the viewer, each with the
// requester's user record.
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.resolver.PendingRequestsFor(currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(requests)
}

// GetFriends handles GET /api/friends
// Returns accepted friendships, each with the other party's user record.
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.resolver.Friends(currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(friends)
}
