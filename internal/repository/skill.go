package repository

import (
	"context"
	"errors"

	"prolink/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines the interface for skill and user-skill data operations
type SkillRepository interface {
	CreateSkill(ctx context.Context, skill *models.Skill) error
	GetSkillByID(ctx context.Context, id uint) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]*models.Skill, error)
	CreateUserSkill(ctx context.Context, userSkill *models.UserSkill) error
	// GetUserSkill returns the link between a user and a skill, or nil when
	// the user does not hold the skill.
	GetUserSkill(ctx context.Context, userID, skillID uint) (*models.UserSkill, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.UserSkill, error)
	ListBySkill(ctx context.Context, skillID uint) ([]*models.UserSkill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) CreateSkill(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) GetSkillByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill not found")
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) CreateUserSkill(ctx context.Context, userSkill *models.UserSkill) error {
	return r.db.WithContext(ctx).Create(userSkill).Error
}

func (r *skillRepository) GetUserSkill(ctx context.Context, userID, skillID uint) (*models.UserSkill, error) {
	var userSkill models.UserSkill
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&userSkill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &userSkill, nil
}

func (r *skillRepository) ListByUser(ctx context.Context, userID uint) ([]*models.UserSkill, error) {
	var userSkills []*models.UserSkill
	err := r.db.WithContext(ctx).
		Preload("Skill").
		Where("user_id = ?", userID).
		Find(&userSkills).Error
	return userSkills, err
}

func (r *skillRepository) ListBySkill(ctx context.Context, skillID uint) ([]*models.UserSkill, error) {
	var userSkills []*models.UserSkill
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skill").
		Where("skill_id = ?", skillID).
		Find(&userSkills).Error
	return userSkills, err
}
