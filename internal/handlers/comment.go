package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/social-media-api/internal/dto"
	apierrors "github.com/yukikurage/social-media-api/internal/errors"
	"github.com/yukikurage/social-media-api/internal/middleware"
	"github.com/yukikurage/social-media-api/internal/services"
)

// CommentHandler coordinates comment-related HTTP handlers. All routes are
// nested under a post, resolved by the PostScope middleware.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment creates a new comment under an active post.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := middleware.GetPostID(c)
	if !ok {
		apierrors.InternalError(c, "Post not resolved in context")
		return
	}

	type CreateCommentRequest struct {
		Content string `json:"content"`
		UserID  uint64 `json:"userId"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(services.CreateCommentInput{
		PostID:  postID,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Wrap(comment))
}

// ListComments returns a post's comments matching the visibility filter.
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := middleware.GetPostID(c)
	if !ok {
		apierrors.InternalError(c, "Post not resolved in context")
		return
	}

	comments, err := h.commentService.ListByPost(postID, queryVisibility(c))
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(comments))
}

// GetComment returns a single active comment with its author summary.
func (h *CommentHandler) GetComment(c *gin.Context) {
	postID, ok := middleware.GetPostID(c)
	if !ok {
		apierrors.InternalError(c, "Post not resolved in context")
		return
	}

	id, ok := parseID(c, "commentId")
	if !ok {
		apierrors.NotFound(c, "Comment not found")
		return
	}

	comment, err := h.commentService.Get(postID, id)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(dto.ToCommentDetail(*comment)))
}

// UpdateComment changes a comment's content after the ownership check.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, ok := middleware.GetPostID(c)
	if !ok {
		apierrors.InternalError(c, "Post not resolved in context")
		return
	}

	id, ok := parseID(c, "commentId")
	if !ok {
		apierrors.NotFound(c, "Comment not found")
		return
	}

	type UpdateCommentRequest struct {
		Content *string `json:"content"`
		UserID  uint64  `json:"userId"`
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(postID, id, services.UpdateCommentInput{
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(comment))
}

// DeleteComment soft-deletes a comment after the ownership check.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, ok := middleware.GetPostID(c)
	if !ok {
		apierrors.InternalError(c, "Post not resolved in context")
		return
	}

	id, ok := parseID(c, "commentId")
	if !ok {
		apierrors.NotFound(c, "Comment not found")
		return
	}

	type DeleteCommentRequest struct {
		UserID uint64 `json:"userId"`
	}

	var req DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.SoftDelete(postID, id, req.UserID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(comment))
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrUserIDRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, "Post not found")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, "Comment not found")
	case errors.Is(err, services.ErrNotCommentOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
