package service

import (
	"context"
	"testing"

	"prolink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 10, 1, 10},
		{"negative limit", 2, -1, 2, 10},
		{"limit above max is clamped", 1, 100, 1, 20},
		{"limit at max", 1, 20, 1, 20},
		{"within bounds", 4, 15, 4, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPageMeta(t *testing.T) {
	t.Parallel()

	// 25 items at 10 per page: pages 1 and 2 full, page 3 holds 5.
	meta := PageMeta(25, 3, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, int64(3), meta.TotalPages)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 10, meta.PageSize)

	meta = PageMeta(30, 1, 10)
	assert.Equal(t, int64(3), meta.TotalPages)

	meta = PageMeta(0, 1, 10)
	assert.Equal(t, int64(0), meta.TotalPages)
}

func TestFeedService_ListFeed_AttachesEngagement(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.listFeedFn = func(_ context.Context, limit, offset int) ([]*models.Post, error) {
		assert.Equal(t, 10, limit)
		assert.Equal(t, 0, offset)
		return []*models.Post{
			{ID: 1, UserID: 1},
			{ID: 2, UserID: 2},
		}, nil
	}
	postRepo.countFeedFn = func(_ context.Context) (int64, error) { return 12, nil }

	reactionRepo := noopReactionRepo()
	reactionRepo.tallyByPostIDsFn = func(_ context.Context, postIDs []uint) (map[uint]map[string]int64, error) {
		assert.ElementsMatch(t, []uint{1, 2}, postIDs)
		return map[uint]map[string]int64{
			1: {models.ReactionLike: 3, models.ReactionDislike: 1},
		}, nil
	}

	commentRepo := noopCommentRepo()
	commentRepo.countByPostIDsFn = func(_ context.Context, _ []uint) (map[uint]int64, error) {
		return map[uint]int64{1: 4}, nil
	}

	svc := NewFeedService(postRepo, commentRepo, reactionRepo)
	feed, err := svc.ListFeed(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, feed.Data, 2)
	assert.Equal(t, int64(3), feed.Data[0].Reactions[models.ReactionLike])
	assert.Equal(t, int64(4), feed.Data[0].CommentsCount)
	// A post with no engagement still carries an empty tally, not nil.
	assert.NotNil(t, feed.Data[1].Reactions)
	assert.Empty(t, feed.Data[1].Reactions)
	assert.Equal(t, int64(0), feed.Data[1].CommentsCount)

	assert.Equal(t, int64(12), feed.Meta.Total)
	assert.Equal(t, int64(2), feed.Meta.TotalPages)
	assert.Equal(t, 1, feed.Meta.CurrentPage)
}

func TestFeedService_ListFeed_EmptyPage(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.countFeedFn = func(_ context.Context) (int64, error) { return 12, nil }

	svc := NewFeedService(postRepo, noopCommentRepo(), noopReactionRepo())
	feed, err := svc.ListFeed(context.Background(), 5, 10)
	require.NoError(t, err)

	// Past the last page: empty data, intact meta.
	assert.Empty(t, feed.Data)
	assert.Equal(t, int64(12), feed.Meta.Total)
	assert.Equal(t, 5, feed.Meta.CurrentPage)
}

func TestFeedService_ListFeed_ClampsLimit(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	var gotLimit int
	postRepo.listFeedFn = func(_ context.Context, limit, offset int) ([]*models.Post, error) {
		gotLimit = limit
		return nil, nil
	}

	svc := NewFeedService(postRepo, noopCommentRepo(), noopReactionRepo())
	_, err := svc.ListFeed(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, gotLimit)
}
