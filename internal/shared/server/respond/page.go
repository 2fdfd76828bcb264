package respond

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page reads limit/offset query parameters, clamping limit to [0, max].
func Page(c *gin.Context, def, max int) (limit, offset int) {
	limit = def
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > max {
		limit = max
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
