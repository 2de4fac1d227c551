package repository

import (
	"context"
	"errors"

	"prolink/internal/cache"
	"prolink/internal/models"

	"gorm.io/gorm"
)

// CommenterCount is one row of the per-post commenter frequency aggregation.
type CommenterCount struct {
	PostID uint
	UserID uint
	Count  int64
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// GetByID joins the parent post. A comment whose post is missing or
	// soft-deleted resolves as not found even when the comment row exists.
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	// CountByPostIDs returns non-deleted comment counts keyed by post ID.
	// Posts without comments are absent from the map.
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	// CommenterCounts returns per-post, per-user comment counts for the given posts.
	CommenterCounts(ctx context.Context, postIDs []uint) ([]CommenterCount, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Create(comment).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").Preload("Post").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment not found")
		}
		return nil, err
	}
	// Preload respects the post's soft delete, so a deleted parent leaves
	// the join empty.
	if comment.Post == nil || comment.Post.ID == 0 {
		return nil, models.NewNotFoundError("Comment not found")
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&total).Error
	return total, err
}

func (r *commentRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *commentRepository) CommenterCounts(ctx context.Context, postIDs []uint) ([]CommenterCount, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var rows []CommenterCount
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, user_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id, user_id").
		Scan(&rows).Error
	return rows, err
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}
