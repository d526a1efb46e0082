package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/social-media-api/internal/repository"
)

// queryVisibility maps the includeDeleted / onlyDeleted query flags to a
// repository visibility filter. onlyDeleted wins when both are present.
func queryVisibility(c *gin.Context) repository.Visibility {
	if value, ok := c.GetQuery("onlyDeleted"); ok && value != "false" {
		return repository.VisibilityDeleted
	}
	if value, ok := c.GetQuery("includeDeleted"); ok && value != "false" {
		return repository.VisibilityAll
	}
	return repository.VisibilityActive
}

// parseID parses a numeric path parameter. A malformed id can never match a
// row, so callers treat failure as not found.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
