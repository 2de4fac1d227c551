package repository

import (
	"context"
	"errors"

	"prolink/internal/cache"
	"prolink/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// ReactionRepository defines the interface for reaction data operations.
// Reactions are mutated in place and never soft-deleted.
type ReactionRepository interface {
	// GetByUserAndPost returns the user's reaction on the post, or nil when
	// the user has not reacted yet.
	GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error)
	Create(ctx context.Context, reaction *models.Reaction) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	// TallyByPostIDs returns per-post reaction counts grouped by status.
	// Neutral reactions are counted in storage but dropped from the tally.
	TallyByPostIDs(ctx context.Context, postIDs []uint) (map[uint]map[string]int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) GetByUserAndPost(ctx context.Context, userID, postID uint) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	err := r.db.WithContext(ctx).Create(reaction).Error
	if err != nil {
		// The unique (user_id, post_id) index backstops the lookup-then-write
		// sequence against a concurrent duplicate insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.NewConflictError("User already reacted with the same reaction")
		}
		return err
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *reactionRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("id = ?", id).
		Update("status", status).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *reactionRepository) TallyByPostIDs(ctx context.Context, postIDs []uint) (map[uint]map[string]int64, error) {
	tallies := make(map[uint]map[string]int64, len(postIDs))
	if len(postIDs) == 0 {
		return tallies, nil
	}

	var rows []struct {
		PostID uint
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("post_id, status, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Status == models.ReactionNeutral {
			continue
		}
		if tallies[row.PostID] == nil {
			tallies[row.PostID] = make(map[string]int64)
		}
		tallies[row.PostID][row.Status] = row.Count
	}
	return tallies, nil
}
