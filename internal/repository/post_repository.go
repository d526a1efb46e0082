package repository

import (
	"github.com/yukikurage/social-media-api/internal/models"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds an active post by ID
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves posts according to the visibility filter, newest first
func (r *GormPostRepository) List(visibility Visibility) ([]models.Post, error) {
	var posts []models.Post
	query := applyVisibility(r.db.Model(&models.Post{}), visibility)
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save persists changes to a post
func (r *GormPostRepository) Save(post *models.Post) error {
	return r.db.Save(post).Error
}

// SoftDelete marks a post deleted and returns the updated row
func (r *GormPostRepository) SoftDelete(id uint64) (*models.Post, error) {
	if err := r.db.Delete(&models.Post{}, id).Error; err != nil {
		return nil, err
	}

	var post models.Post
	if err := r.db.Unscoped().First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
