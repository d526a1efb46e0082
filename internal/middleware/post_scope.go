package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/social-media-api/internal/errors"
)

const contextKeyPostID = "post_id"

// PostScope resolves the post id path parameter for the nested comment
// routes. Existence of the post is checked by the comment service where the
// endpoint requires it; a non-numeric id is indistinguishable from a missing
// post.
func PostScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.NotFound(c, "Post not found")
			c.Abort()
			return
		}

		c.Set(contextKeyPostID, postID)
		c.Next()
	}
}

// GetPostID retrieves the scoped post ID from context
func GetPostID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(contextKeyPostID)
	if !exists {
		return 0, false
	}

	postID, ok := value.(uint64)
	return postID, ok
}
