package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/social-media-api/internal/dto"
	apierrors "github.com/yukikurage/social-media-api/internal/errors"
	"github.com/yukikurage/social-media-api/internal/services"
)

// PostHandler coordinates post-related HTTP handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePost creates a new post owned by the supplied user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Content string `json:"content"`
		UserID  uint64 `json:"userId"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Create(services.CreatePostInput{
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Wrap(post))
}

// ListPosts returns all posts matching the visibility filter, newest first.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List(queryVisibility(c))
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(posts))
}

// GetPost returns a single active post.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(post))
}

// UpdatePost changes a post's content after the ownership check.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	type UpdatePostRequest struct {
		Content *string `json:"content"`
		UserID  uint64  `json:"userId"`
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Update(id, services.UpdatePostInput{
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(post))
}

// DeletePost soft-deletes a post after the ownership check. The acting user
// is supplied in the request body.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	type DeletePostRequest struct {
		UserID uint64 `json:"userId"`
	}

	var req DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.SoftDelete(id, req.UserID)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(post))
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrUserIDRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, "Post not found")
	case errors.Is(err, services.ErrNotPostOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
