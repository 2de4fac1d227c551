package service

import (
	"context"
	"errors"
	"strings"

	"prolink/internal/models"
	"prolink/internal/repository"
)

// CommentService handles comment creation, listing, and the ownership
// rules around editing and deleting comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Create adds a comment to a post on behalf of userID.
func (s *CommentService) Create(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	// The target post must exist and be visible.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		UserID: userID,
		PostID: postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, models.NewInternalError("Error creating comment", err)
	}

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns a single comment together with its author.
func (s *CommentService) Get(ctx context.Context, commentID uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

// ListByPost returns one page of a post's comments, newest first.
func (s *CommentService) ListByPost(ctx context.Context, postID uint, page, limit int) (*models.CommentPage, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	page, limit = ClampPage(page, limit)
	offset := (page - 1) * limit

	comments, err := s.commentRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError("Error fetching comments", err)
	}
	total, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError("Error fetching comments", err)
	}

	return &models.CommentPage{
		Data: comments,
		Meta: PageMeta(total, page, limit),
	}, nil
}

// Update replaces a comment's text. Only the comment's author may update it.
func (s *CommentService) Update(ctx context.Context, userID, commentID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !Authorize(userID, comment.UserID) {
		return nil, models.NewForbiddenError("User not authorized to update comment")
	}

	comment.Text = text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError("Error updating comment", err)
	}
	return comment, nil
}

// Delete removes a comment. The comment's author may delete it, and so may
// the owner of the post it sits on.
func (s *CommentService) Delete(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	postOwnerID := uint(0)
	if comment.Post != nil {
		postOwnerID = comment.Post.UserID
	}
	if !Authorize(userID, comment.UserID, postOwnerID) {
		return models.NewForbiddenError("User not authorized to delete comment")
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return models.NewInternalError("Error deleting comment", err)
	}
	return nil
}
