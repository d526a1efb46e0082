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
	ErrContentRequired = errors.New("content is required")
	ErrUserIDRequired  = errors.New("userId is required")
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("only the post owner can perform this action")
)

// PostService handles post business logic
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePostInput represents input for creating a post
type CreatePostInput struct {
	Content string
	UserID  uint64
}

// Create persists a new post owned by an active user
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if input.UserID == 0 {
		return nil, ErrUserIDRequired
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	post := &models.Post{
		Content: content,
		UserID:  input.UserID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// List returns posts according to the visibility filter, newest first
func (s *PostService) List(visibility repository.Visibility) ([]models.Post, error) {
	posts, err := s.postRepo.List(visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Get returns an active post by ID
func (s *PostService) Get(id uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// UpdatePostInput represents input for updating a post
type UpdatePostInput struct {
	Content *string
	UserID  uint64
}

// Update changes a post's content if the actor owns it. The not-found check
// runs before the ownership check.
func (s *PostService) Update(id uint64, input UpdatePostInput) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if post.UserID != input.UserID {
		return nil, ErrNotPostOwner
	}

	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, ErrContentRequired
		}
		post.Content = content
	}

	if err := s.postRepo.Save(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// SoftDelete marks a post deleted if the actor owns it
func (s *PostService) SoftDelete(id, userID uint64) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}

	deleted, err := s.postRepo.SoftDelete(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}
	return deleted, nil
}
