package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/social-media-api/internal/models"
	"github.com/yukikurage/social-media-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailTaken       = errors.New("email already in use")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user not found")
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
	avatars  *AvatarService
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, avatars *AvatarService) *UserService {
	return &UserService{
		userRepo: userRepo,
		avatars:  avatars,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Email    string
	Username string
}

// Create registers a new user. Uniqueness of email and username is checked
// against active users only; the store's unique indexes remain the backstop
// for concurrent creations.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}

	taken, err := s.userRepo.ExistsActiveByEmail(email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.userRepo.ExistsActiveByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	avatarURL, err := s.avatars.Assign(email)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Username:  username,
		AvatarURL: avatarURL,
		AvatarTag: s.avatars.Tag(username, avatarURL),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// List returns users according to the visibility filter
func (s *UserService) List(visibility repository.Visibility) ([]models.User, error) {
	users, err := s.userRepo.List(visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns an active user by ID
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput represents input for updating a user. Nil fields retain
// their current value.
type UpdateUserInput struct {
	Email    *string
	Username *string
}

// Update applies a partial update. A changed email is conflict-checked
// against other active users and regenerates the avatar.
func (s *UserService) Update(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		if username := strings.TrimSpace(*input.Username); username != "" {
			user.Username = username
		}
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != "" && email != user.Email {
			taken, err := s.userRepo.ExistsActiveByEmail(email, user.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return nil, ErrEmailTaken
			}

			avatarURL, err := s.avatars.Assign(email)
			if err != nil {
				return nil, err
			}

			user.Email = email
			user.AvatarURL = avatarURL
			user.AvatarTag = s.avatars.Tag(user.Username, avatarURL)
		}
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// SoftDelete marks a user deleted and returns the updated record. A second
// delete reports not found.
func (s *UserService) SoftDelete(id uint64) (*models.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	user, err := s.userRepo.SoftDelete(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}
