package service

import (
	"context"

	"prolink/internal/cache"
	"prolink/internal/middleware"
	"prolink/internal/models"
	"prolink/internal/repository"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPageSize is used when the caller does not request a page size.
	DefaultPageSize = 10
	// MaxPageSize caps the page size regardless of what the caller requests.
	// Exceeding it is a clamp, not an error.
	MaxPageSize = 20
)

// FeedService builds the paginated post feed: posts joined with their
// authors, per-status reaction tallies, and comment counts.
type FeedService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
) *FeedService {
	return &FeedService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// ClampPage normalizes a (page, limit) pair: page at least 1, limit within
// [1, MaxPageSize], falling back to defaults on out-of-range values.
func ClampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// PageMeta assembles the pagination envelope for a list response.
func PageMeta(total int64, page, limit int) models.PageMeta {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return models.PageMeta{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    limit,
	}
}

// ListFeed returns one page of the denormalized feed, newest first.
func (s *FeedService) ListFeed(ctx context.Context, page, limit int) (*models.FeedPage, error) {
	page, limit = ClampPage(page, limit)

	// The front page is the hottest read; serve it cache-aside.
	if page == 1 && limit == DefaultPageSize {
		var cached models.FeedPage
		if found, err := cache.GetJSON(ctx, cache.FeedFrontKey, &cached); err == nil && found {
			middleware.FeedPagesServed.Inc()
			return &cached, nil
		}
	}

	feed, err := s.buildFeedPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	if page == 1 && limit == DefaultPageSize {
		_ = cache.SetJSON(ctx, cache.FeedFrontKey, feed, cache.FeedTTL)
	}

	middleware.FeedPagesServed.Inc()
	return feed, nil
}

func (s *FeedService) buildFeedPage(ctx context.Context, page, limit int) (*models.FeedPage, error) {
	offset := (page - 1) * limit

	// The page and its total are independent reads issued concurrently
	// and joined before responding.
	var (
		posts []*models.Post
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.ListFeed(gctx, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.postRepo.CountFeed(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, models.NewInternalError("Error fetching posts", err)
	}

	if err := s.attachEngagement(ctx, posts); err != nil {
		return nil, models.NewInternalError("Error fetching posts", err)
	}

	return &models.FeedPage{
		Data: posts,
		Meta: PageMeta(total, page, limit),
	}, nil
}

// attachEngagement decorates posts with reaction tallies and comment counts.
func (s *FeedService) attachEngagement(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	tallies, err := s.reactionRepo.TallyByPostIDs(ctx, postIDs)
	if err != nil {
		return err
	}
	commentCounts, err := s.commentRepo.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return err
	}

	for _, p := range posts {
		if tally, ok := tallies[p.ID]; ok {
			p.Reactions = tally
		} else {
			p.Reactions = map[string]int64{}
		}
		p.CommentsCount = commentCounts[p.ID]
	}
	return nil
}
