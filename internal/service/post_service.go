package service

import (
	"context"
	"strings"

	"prolink/internal/models"
	"prolink/internal/repository"
)

// PostService handles post CRUD with ownership checks on mutation.
type PostService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
	}
}

// Create publishes a new post for userID.
func (s *PostService) Create(ctx context.Context, userID uint, title, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Post content is required")
	}

	post := &models.Post{
		Title:   strings.TrimSpace(title),
		Content: content,
		UserID:  userID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError("Error creating post", err)
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// Get returns a post with its author and engagement counts.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	tallies, err := s.reactionRepo.TallyByPostIDs(ctx, []uint{post.ID})
	if err != nil {
		return nil, models.NewInternalError("Error fetching post", err)
	}
	counts, err := s.commentRepo.CountByPostIDs(ctx, []uint{post.ID})
	if err != nil {
		return nil, models.NewInternalError("Error fetching post", err)
	}

	if tally, ok := tallies[post.ID]; ok {
		post.Reactions = tally
	} else {
		post.Reactions = map[string]int64{}
	}
	post.CommentsCount = counts[post.ID]
	return post, nil
}

// ListByAuthor returns all of a user's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, userID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError("Error fetching posts", err)
	}
	return posts, nil
}

// Update edits a post's title and content. Only the author may update it.
func (s *PostService) Update(ctx context.Context, userID, postID uint, title, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Post content is required")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !Authorize(userID, post.UserID) {
		return nil, models.NewForbiddenError("User not authorized to update post")
	}

	post.Title = strings.TrimSpace(title)
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError("Error updating post", err)
	}
	return post, nil
}

// Delete soft-deletes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !Authorize(userID, post.UserID) {
		return models.NewForbiddenError("User not authorized to delete post")
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		return models.NewInternalError("Error deleting post", err)
	}
	return nil
}
