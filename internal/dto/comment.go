package dto

import (
	"time"

	"github.com/yukikurage/social-media-api/internal/models"
	"gorm.io/gorm"
)

// UserSummary is the embedded author view on a comment detail response
type UserSummary struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
}

// CommentDetail is a comment with its author summary. Comment lists return
// bare comments; only the single-comment endpoint embeds the author.
type CommentDetail struct {
	ID        uint64         `json:"id"`
	Content   string         `json:"content"`
	UserID    uint64         `json:"userId"`
	PostID    uint64         `json:"postId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt"`
	User      *UserSummary   `json:"user,omitempty"`
}

// ToUserSummary converts a User model to UserSummary
func ToUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}

// ToCommentDetail converts a Comment model to CommentDetail
func ToCommentDetail(comment models.Comment) CommentDetail {
	detail := CommentDetail{
		ID:        comment.ID,
		Content:   comment.Content,
		UserID:    comment.UserID,
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		DeletedAt: comment.DeletedAt,
	}

	// Include author if preloaded
	if comment.User.ID != 0 {
		user := ToUserSummary(comment.User)
		detail.User = &user
	}

	return detail
}
