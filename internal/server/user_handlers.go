package server

import (
	"prolink/internal/models"
	"prolink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.Get(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile fetched", "user", user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username   *string `json:"username"`
		Email      *string `json:"email"`
		Name       *string `json:"name"`
		Bio        *string `json:"bio"`
		PictureURL *string `json:"picture_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	user, err := s.userService.Update(c.Context(), userID, userID, service.UserUpdate{
		Username:   req.Username,
		Email:      req.Email,
		Name:       req.Name,
		Bio:        req.Bio,
		PictureURL: req.PictureURL,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile updated", "user", user)
}

// DeleteMyAccount handles DELETE /api/users/me
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := s.userService.Delete(c.Context(), userID, userID); err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Account deleted", "", nil)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	user, err := s.userService.Get(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile fetched", "user", user)
}
