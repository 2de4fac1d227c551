package service

import (
	"context"
	"sort"
	"time"

	"prolink/internal/models"
	"prolink/internal/repository"
)

// AnalyticsService builds the commenter-frequency report: for each post in
// a date range, who commented on it, how often, and how it was reacted to.
type AnalyticsService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
	userRepo     repository.UserRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
	userRepo repository.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		userRepo:     userRepo,
	}
}

// PostsInRange reports on every post created within [start, end]. Either
// bound may be nil to leave that side open.
func (s *AnalyticsService) PostsInRange(ctx context.Context, start, end *time.Time) ([]*models.PostAnalytics, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, models.NewValidationError("End date must not be before start date")
	}

	posts, err := s.postRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, models.NewInternalError("Error fetching post analytics", err)
	}
	if len(posts) == 0 {
		return []*models.PostAnalytics{}, nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	commenterCounts, err := s.commentRepo.CommenterCounts(ctx, postIDs)
	if err != nil {
		return nil, models.NewInternalError("Error fetching post analytics", err)
	}
	tallies, err := s.reactionRepo.TallyByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, models.NewInternalError("Error fetching post analytics", err)
	}

	commenters, err := s.resolveCommenters(ctx, commenterCounts)
	if err != nil {
		return nil, models.NewInternalError("Error fetching post analytics", err)
	}

	// Group commenter rows by post.
	statsByPost := make(map[uint][]models.CommenterStat)
	for _, row := range commenterCounts {
		user, ok := commenters[row.UserID]
		if !ok {
			// Author has since been deleted; skip the row.
			continue
		}
		statsByPost[row.PostID] = append(statsByPost[row.PostID], models.CommenterStat{
			User:  user,
			Count: row.Count,
		})
	}

	report := make([]*models.PostAnalytics, 0, len(posts))
	for _, p := range posts {
		stats := statsByPost[p.ID]
		// Most frequent commenters first; ties broken by user ID for a
		// stable ordering.
		sort.SliceStable(stats, func(i, j int) bool {
			if stats[i].Count != stats[j].Count {
				return stats[i].Count > stats[j].Count
			}
			return stats[i].User.ID < stats[j].User.ID
		})
		if stats == nil {
			stats = []models.CommenterStat{}
		}

		reactions, ok := tallies[p.ID]
		if !ok {
			reactions = map[string]int64{}
		}

		report = append(report, &models.PostAnalytics{
			Post:           p,
			CommenterStats: stats,
			Reactions:      reactions,
		})
	}
	return report, nil
}

// resolveCommenters loads every distinct commenting user in one query.
func (s *AnalyticsService) resolveCommenters(ctx context.Context, rows []repository.CommenterCount) (map[uint]*models.User, error) {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.UserID]; ok {
			continue
		}
		seen[row.UserID] = struct{}{}
		ids = append(ids, row.UserID)
	}
	if len(ids) == 0 {
		return map[uint]*models.User{}, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}
