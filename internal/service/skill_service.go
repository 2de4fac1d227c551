package service

import (
	"context"
	"strings"

	"prolink/internal/models"
	"prolink/internal/repository"
)

// SkillService manages the skill catalog and the links between users
// and skills.
type SkillService struct {
	skillRepo      repository.SkillRepository
	experienceRepo repository.ExperienceRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repository.SkillRepository, experienceRepo repository.ExperienceRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo, experienceRepo: experienceRepo}
}

// CreateSkill adds a skill to the catalog and immediately puts it on the
// acting user's profile. Names are trimmed but otherwise stored as given; no
// case folding or deduplication.
func (s *SkillService) CreateSkill(ctx context.Context, userID uint, name string) (*models.UserSkill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Skill name is required")
	}

	skill := &models.Skill{Name: name}
	if err := s.skillRepo.CreateSkill(ctx, skill); err != nil {
		return nil, models.NewInternalError("Error creating skill", err)
	}

	userSkill := &models.UserSkill{UserID: userID, SkillID: skill.ID, Skill: *skill}
	if err := s.skillRepo.CreateUserSkill(ctx, userSkill); err != nil {
		return nil, models.NewInternalError("Error adding skill", err)
	}
	return userSkill, nil
}

// ListSkills returns the full skill catalog, alphabetized.
func (s *SkillService) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	skills, err := s.skillRepo.ListSkills(ctx)
	if err != nil {
		return nil, models.NewInternalError("Error fetching skills", err)
	}
	return skills, nil
}

// AddUserSkill links a skill to userID's profile, optionally tied to one of
// their work-history entries. A user holds each skill at most once.
func (s *SkillService) AddUserSkill(ctx context.Context, userID, skillID uint, experienceID *uint) (*models.UserSkill, error) {
	if _, err := s.skillRepo.GetSkillByID(ctx, skillID); err != nil {
		return nil, err
	}

	if experienceID != nil {
		experience, err := s.experienceRepo.GetByID(ctx, *experienceID)
		if err != nil {
			return nil, err
		}
		if !Authorize(userID, experience.UserID) {
			return nil, models.NewForbiddenError("User not authorized to use this experience")
		}
	}

	existing, err := s.skillRepo.GetUserSkill(ctx, userID, skillID)
	if err != nil {
		return nil, models.NewInternalError("Error adding skill", err)
	}
	if existing != nil {
		return nil, models.NewConflictError("User already has this skill")
	}

	userSkill := &models.UserSkill{
		UserID:       userID,
		SkillID:      skillID,
		ExperienceID: experienceID,
	}
	if err := s.skillRepo.CreateUserSkill(ctx, userSkill); err != nil {
		return nil, models.NewInternalError("Error adding skill", err)
	}
	return userSkill, nil
}

// ListUserSkills returns the skills on a user's profile.
func (s *SkillService) ListUserSkills(ctx context.Context, userID uint) ([]*models.UserSkill, error) {
	userSkills, err := s.skillRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError("Error fetching skills", err)
	}
	return userSkills, nil
}

// ListUsersBySkill returns every user holding the given skill.
func (s *SkillService) ListUsersBySkill(ctx context.Context, skillID uint) ([]*models.UserSkill, error) {
	if _, err := s.skillRepo.GetSkillByID(ctx, skillID); err != nil {
		return nil, err
	}
	userSkills, err := s.skillRepo.ListBySkill(ctx, skillID)
	if err != nil {
		return nil, models.NewInternalError("Error fetching users by skill", err)
	}
	return userSkills, nil
}
