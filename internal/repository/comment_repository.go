package repository

import (
	"github.com/yukikurage/social-media-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID finds an active comment under a post with optional preloading
func (r *GormCommentRepository) FindByID(postID, id uint64, preload ...string) (*models.Comment, error) {
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	var comment models.Comment
	if err := query.Where("post_id = ?", postID).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves a post's comments according to the visibility filter
func (r *GormCommentRepository) ListByPost(postID uint64, visibility Visibility) ([]models.Comment, error) {
	var comments []models.Comment
	query := applyVisibility(r.db.Model(&models.Comment{}), visibility).
		Where("post_id = ?", postID)
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Save persists changes to a comment
func (r *GormCommentRepository) Save(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// SoftDelete marks a comment deleted and returns the updated row
func (r *GormCommentRepository) SoftDelete(postID, id uint64) (*models.Comment, error) {
	if err := r.db.Where("post_id = ?", postID).Delete(&models.Comment{}, id).Error; err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := r.db.Unscoped().Where("post_id = ?", postID).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
