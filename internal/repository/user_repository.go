package repository

import (
	"github.com/yukikurage/social-media-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds an active user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users according to the visibility filter
func (r *GormUserRepository) List(visibility Visibility) ([]models.User, error) {
	var users []models.User
	query := applyVisibility(r.db.Model(&models.User{}), visibility)
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsActiveByEmail reports whether an active user other than excludeID holds the email.
// The default scope already filters soft-deleted rows.
func (r *GormUserRepository) ExistsActiveByEmail(email string, excludeID uint64) (bool, error) {
	query := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsActiveByUsername reports whether an active user holds the username
func (r *GormUserRepository) ExistsActiveByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists changes to a user
func (r *GormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// SoftDelete marks a user deleted and returns the updated row
func (r *GormUserRepository) SoftDelete(id uint64) (*models.User, error) {
	if err := r.db.Delete(&models.User{}, id).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := r.db.Unscoped().First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
