package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username  string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	AvatarURL string         `gorm:"type:varchar(512)" json:"avatarUrl"`
	AvatarTag string         `gorm:"type:varchar(1024)" json:"avatarTag"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt"`

	// Relations. Deleting a user does not cascade to their content.
	Posts    []Post    `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
}
