package service

import (
	"context"

	"prolink/internal/middleware"
	"prolink/internal/models"
	"prolink/internal/repository"
)

// ReactionService implements the per-(user, post) reaction state machine.
// States are NoReaction, Like, Dislike, and Neutral; the only rejected
// transition is re-submitting the current state. There is no remove
// operation: reverting is an explicit Neutral submission.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
}

// NewReactionService creates a new ReactionService
func NewReactionService(reactionRepo repository.ReactionRepository, postRepo repository.PostRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo, postRepo: postRepo}
}

// React records or transitions the user's reaction to a post.
func (s *ReactionService) React(ctx context.Context, userID, postID uint, status string) error {
	if !models.ValidReactionStatus(status) {
		return models.NewValidationError("Status must be one of Like, Dislike, Neutral")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	existing, err := s.reactionRepo.GetByUserAndPost(ctx, userID, postID)
	if err != nil {
		return models.NewInternalError("Error reacting to post", err)
	}

	switch {
	case existing == nil:
		reaction := &models.Reaction{UserID: userID, PostID: postID, Status: status}
		if err := s.reactionRepo.Create(ctx, reaction); err != nil {
			if _, ok := err.(*models.AppError); ok {
				middleware.ReactionsProcessed.WithLabelValues(status, "duplicate").Inc()
				return err
			}
			return models.NewInternalError("Error reacting to post", err)
		}
		middleware.ReactionsProcessed.WithLabelValues(status, "created").Inc()
		return nil

	case existing.Status != status:
		if err := s.reactionRepo.UpdateStatus(ctx, existing.ID, status); err != nil {
			return models.NewInternalError("Error reacting to post", err)
		}
		middleware.ReactionsProcessed.WithLabelValues(status, "transitioned").Inc()
		return nil

	default:
		// Same status again: rejected, reported to the caller rather than retried.
		middleware.ReactionsProcessed.WithLabelValues(status, "duplicate").Inc()
		return models.NewConflictError("User already reacted with the same reaction")
	}
}
