package repository

import (
	"context"
	"errors"
	"time"

	"prolink/internal/cache"
	"prolink/internal/middleware"
	"prolink/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByAuthor(ctx context.Context, userID uint) ([]*models.Post, error)
	// ListFeed returns one page of non-deleted posts whose authors are also
	// non-deleted, newest first, with the author row joined in.
	ListFeed(ctx context.Context, limit, offset int) ([]*models.Post, error)
	// CountFeed counts all non-deleted posts.
	CountFeed(ctx context.Context) (int64, error)
	// ListInRange returns non-deleted posts created within the given bounds;
	// either bound may be nil.
	ListInRange(ctx context.Context, start, end *time.Time) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return r.db.WithContext(ctx).Preload("User").First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListFeed(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	defer middleware.TrackQuery("list_feed", "posts")()

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Select("posts.*").
		Joins("JOIN users ON users.id = posts.user_id AND users.deleted_at IS NULL").
		Preload("User").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountFeed(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error
	return total, err
}

func (r *postRepository) ListInRange(ctx context.Context, start, end *time.Time) ([]*models.Post, error) {
	defer middleware.TrackQuery("list_in_range", "posts")()

	q := r.db.WithContext(ctx).Preload("User")
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}

	var posts []*models.Post
	err := q.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}
