package repository

import (
	"context"
	"errors"

	"prolink/internal/models"

	"gorm.io/gorm"
)

// ExperienceRepository defines the interface for experience data operations
type ExperienceRepository interface {
	Create(ctx context.Context, experience *models.Experience) error
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Experience, error)
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id uint) error
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *experienceRepository) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := r.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Experience not found")
		}
		return nil, err
	}
	return &experience, nil
}

func (r *experienceRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&experiences).Error
	return experiences, err
}

func (r *experienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *experienceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Experience{}, id).Error
}
