package repository

import (
	"github.com/yukikurage/social-media-api/internal/models"
	"gorm.io/gorm"
)

// Visibility controls how soft-deleted rows are treated when listing.
type Visibility int

const (
	// VisibilityActive returns only rows whose deleted_at is unset.
	VisibilityActive Visibility = iota
	// VisibilityAll returns active and soft-deleted rows.
	VisibilityAll
	// VisibilityDeleted returns only soft-deleted rows.
	VisibilityDeleted
)

// applyVisibility widens the default soft-delete scope according to v.
func applyVisibility(db *gorm.DB, v Visibility) *gorm.DB {
	switch v {
	case VisibilityAll:
		return db.Unscoped()
	case VisibilityDeleted:
		return db.Unscoped().Where("deleted_at IS NOT NULL")
	default:
		return db
	}
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds an active user by ID
	FindByID(id uint64) (*models.User, error)

	// List retrieves users according to the visibility filter
	List(visibility Visibility) ([]models.User, error)

	// ExistsActiveByEmail reports whether an active user other than
	// excludeID holds the given email
	ExistsActiveByEmail(email string, excludeID uint64) (bool, error)

	// ExistsActiveByUsername reports whether an active user holds the given username
	ExistsActiveByUsername(username string) (bool, error)

	// Save persists changes to a user
	Save(user *models.User) error

	// SoftDelete marks a user deleted and returns the updated row
	SoftDelete(id uint64) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds an active post by ID
	FindByID(id uint64) (*models.Post, error)

	// List retrieves posts according to the visibility filter, newest first
	List(visibility Visibility) ([]models.Post, error)

	// Save persists changes to a post
	Save(post *models.Post) error

	// SoftDelete marks a post deleted and returns the updated row
	SoftDelete(id uint64) (*models.Post, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds an active comment under a post with optional preloading
	FindByID(postID, id uint64, preload ...string) (*models.Comment, error)

	// ListByPost retrieves a post's comments according to the visibility filter
	ListByPost(postID uint64, visibility Visibility) ([]models.Comment, error)

	// Save persists changes to a comment
	Save(comment *models.Comment) error

	// SoftDelete marks a comment deleted and returns the updated row
	SoftDelete(postID, id uint64) (*models.Comment, error)
}
