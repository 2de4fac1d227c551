package server

import (
	"time"

	"prolink/internal/models"
	"prolink/internal/service"

	"github.com/gofiber/fiber/v2"
)

type experienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

func (r *experienceRequest) toInput() service.ExperienceInput {
	return service.ExperienceInput{
		Title:       r.Title,
		Company:     r.Company,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// CreateExperience handles POST /api/experiences
func (s *Server) CreateExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	experience, err := s.experienceService.Create(c.Context(), currentUserID(c), req.toInput())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusCreated, "Experience created", "experience", experience)
}

// GetExperience handles GET /api/experiences/:id
func (s *Server) GetExperience(c *fiber.Ctx) error {
	experienceID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	experience, err := s.experienceService.Get(c.Context(), experienceID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Experience fetched", "experience", experience)
}

// UpdateExperience handles PUT /api/experiences/:id
func (s *Server) UpdateExperience(c *fiber.Ctx) error {
	experienceID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	experience, err := s.experienceService.Update(c.Context(), currentUserID(c), experienceID, req.toInput())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Experience updated", "experience", experience)
}

// DeleteExperience handles DELETE /api/experiences/:id
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	experienceID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.experienceService.Delete(c.Context(), currentUserID(c), experienceID); err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Experience deleted", "", nil)
}

// GetUserExperiences handles GET /api/users/:id/experiences
func (s *Server) GetUserExperiences(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	experiences, err := s.experienceService.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respond(c, fiber.StatusOK, "Experiences fetched", "data", experiences)
}
