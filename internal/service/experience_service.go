package service

import (
	"context"
	"strings"
	"time"

	"prolink/internal/models"
	"prolink/internal/repository"
)

// ExperienceService manages work-history entries on a user's profile.
type ExperienceService struct {
	experienceRepo repository.ExperienceRepository
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(experienceRepo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

// ExperienceInput carries the fields of a work-history entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (in *ExperienceInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return models.NewValidationError("Experience title is required")
	}
	if strings.TrimSpace(in.Company) == "" {
		return models.NewValidationError("Experience company is required")
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return models.NewValidationError("End date must not be before start date")
	}
	return nil
}

// Create adds a work-history entry to userID's profile.
func (s *ExperienceService) Create(ctx context.Context, userID uint, input ExperienceInput) (*models.Experience, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	experience := &models.Experience{
		Title:       strings.TrimSpace(input.Title),
		Company:     strings.TrimSpace(input.Company),
		Description: strings.TrimSpace(input.Description),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		UserID:      userID,
	}
	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return nil, models.NewInternalError("Error creating experience", err)
	}
	return experience, nil
}

// Get returns a single work-history entry.
func (s *ExperienceService) Get(ctx context.Context, experienceID uint) (*models.Experience, error) {
	return s.experienceRepo.GetByID(ctx, experienceID)
}

// ListByUser returns a user's work history, most recent first.
func (s *ExperienceService) ListByUser(ctx context.Context, userID uint) ([]*models.Experience, error) {
	experiences, err := s.experienceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError("Error fetching experiences", err)
	}
	return experiences, nil
}

// Update edits a work-history entry. Only its owner may update it.
func (s *ExperienceService) Update(ctx context.Context, userID, experienceID uint, input ExperienceInput) (*models.Experience, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	experience, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	if !Authorize(userID, experience.UserID) {
		return nil, models.NewForbiddenError("User not authorized to update experience")
	}

	experience.Title = strings.TrimSpace(input.Title)
	experience.Company = strings.TrimSpace(input.Company)
	experience.Description = strings.TrimSpace(input.Description)
	experience.StartDate = input.StartDate
	experience.EndDate = input.EndDate
	if err := s.experienceRepo.Update(ctx, experience); err != nil {
		return nil, models.NewInternalError("Error updating experience", err)
	}
	return experience, nil
}

// Delete removes a work-history entry. Only its owner may delete it.
func (s *ExperienceService) Delete(ctx context.Context, userID, experienceID uint) error {
	experience, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return err
	}
	if !Authorize(userID, experience.UserID) {
		return models.NewForbiddenError("User not authorized to delete experience")
	}

	if err := s.experienceRepo.Delete(ctx, experience.ID); err != nil {
		return models.NewInternalError("Error deleting experience", err)
	}
	return nil
}
