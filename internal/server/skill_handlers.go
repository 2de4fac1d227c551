package server

import (
	"prolink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skillService.ListSkills(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Skills fetched", "data", skills)
}

// CreateSkill handles POST /api/skills
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	userSkill, err := s.skillService.CreateSkill(c.Context(), currentUserID(c), req.Name)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusCreated, "Skill created", "userSkill", userSkill)
}

// AddUserSkill handles POST /api/skills/:id/users
func (s *Server) AddUserSkill(c *fiber.Ctx) error {
	skillID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		ExperienceID *uint `json:"experience_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	userSkill, err := s.skillService.AddUserSkill(c.Context(), currentUserID(c), skillID, req.ExperienceID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusCreated, "Skill added", "userSkill", userSkill)
}

// GetUserSkills handles GET /api/users/:id/skills
func (s *Server) GetUserSkills(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	userSkills, err := s.skillService.ListUserSkills(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Skills fetched", "data", userSkills)
}

// GetUsersBySkill handles GET /api/skills/:id/users
func (s *Server) GetUsersBySkill(c *fiber.Ctx) error {
	skillID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	userSkills, err := s.skillService.ListUsersBySkill(c.Context(), skillID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Users fetched", "data", userSkills)
}
