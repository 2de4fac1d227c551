package service

import (
	"context"
	"strings"

	"prolink/internal/models"
	"prolink/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, authentication, and profile management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserUpdate carries the editable profile fields. Nil pointers leave the
// corresponding field untouched.
type UserUpdate struct {
	Username   *string
	Email      *string
	Name       *string
	Bio        *string
	PictureURL *string
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password, name string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || email == "" {
		return nil, models.NewValidationError("Username and email are required")
	}
	if len(password) < 8 {
		return nil, models.NewValidationError("Password must be at least 8 characters")
	}

	if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, models.NewInternalError("Error creating user", err)
	} else if existing != nil {
		return nil, models.NewConflictError("Username already taken")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, models.NewInternalError("Error creating user", err)
	} else if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError("Error creating user", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Name:     strings.TrimSpace(name),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, models.NewInternalError("Error creating user", err)
	}
	return user, nil
}

// Authenticate verifies a username-or-email identifier and password pair.
// Unknown identifier and wrong password report the same condition.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, models.NewInternalError("Error logging in", err)
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// Get returns a user's profile.
func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Update edits a user's own profile. Username and email changes are checked
// for collisions with other accounts.
func (s *UserService) Update(ctx context.Context, actingUserID, userID uint, update UserUpdate) (*models.User, error) {
	if !Authorize(actingUserID, userID) {
		return nil, models.NewForbiddenError("User not authorized to update profile")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return nil, models.NewValidationError("Username must not be empty")
		}
		if username != user.Username {
			if existing, err := s.userRepo.GetByUsername(ctx, username); err != nil {
				return nil, models.NewInternalError("Error updating user", err)
			} else if existing != nil {
				return nil, models.NewConflictError("Username already taken")
			}
			user.Username = username
		}
	}
	if update.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*update.Email))
		if email == "" {
			return nil, models.NewValidationError("Email must not be empty")
		}
		if email != user.Email {
			if existing, err := s.userRepo.GetByEmail(ctx, email); err != nil {
				return nil, models.NewInternalError("Error updating user", err)
			} else if existing != nil {
				return nil, models.NewConflictError("Email already registered")
			}
			user.Email = email
		}
	}
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Bio != nil {
		user.Bio = strings.TrimSpace(*update.Bio)
	}
	if update.PictureURL != nil {
		user.PictureURL = strings.TrimSpace(*update.PictureURL)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError("Error updating user", err)
	}
	return user, nil
}

// Delete soft-deletes a user's own account. Their posts and comments drop
// out of the feed and reports on the next read.
func (s *UserService) Delete(ctx context.Context, actingUserID, userID uint) error {
	if !Authorize(actingUserID, userID) {
		return models.NewForbiddenError("User not authorized to delete account")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return models.NewInternalError("Error deleting user", err)
	}
	return nil
}
