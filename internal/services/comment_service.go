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
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the comment owner can perform this action")
)

// CommentService handles comment business logic
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateCommentInput represents input for creating a comment
type CreateCommentInput struct {
	PostID  uint64
	Content string
	UserID  uint64
}

// Create persists a new comment. The post and user must both exist and be
// active at creation time; neither is re-verified on later mutations.
func (s *CommentService) Create(input CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if input.UserID == 0 {
		return nil, ErrUserIDRequired
	}

	if _, err := s.postRepo.FindByID(input.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to verify post: %w", err)
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	comment := &models.Comment{
		Content: content,
		UserID:  input.UserID,
		PostID:  input.PostID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListByPost returns a post's comments according to the visibility filter
func (s *CommentService) ListByPost(postID uint64, visibility repository.Visibility) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID, visibility)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Get returns an active comment under a post with its author preloaded
func (s *CommentService) Get(postID, id uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(postID, id, "User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

// UpdateCommentInput represents input for updating a comment
type UpdateCommentInput struct {
	Content *string
	UserID  uint64
}

// Update changes a comment's content if the actor owns it
func (s *CommentService) Update(postID, id uint64, input UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(postID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.UserID != input.UserID {
		return nil, ErrNotCommentOwner
	}

	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		if content == "" {
			return nil, ErrContentRequired
		}
		comment.Content = content
	}

	if err := s.commentRepo.Save(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// SoftDelete marks a comment deleted if the actor owns it
func (s *CommentService) SoftDelete(postID, id, userID uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(postID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}

	deleted, err := s.commentRepo.SoftDelete(postID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}
	return deleted, nil
}
