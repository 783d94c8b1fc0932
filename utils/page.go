package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePage reads limit/offset query params: limit defaults to 10 and is
// hard-capped at 100, offset defaults to 0.
func ParsePage(c *gin.Context) (limit, offset int) {
	limit = DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset = 0
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			offset = v
		}
	}
	return limit, offset
}

// ParseID reads an unsigned integer query parameter, reporting whether it was
// present and whether it parsed.
func ParseID(c *gin.Context, name string) (uint, bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, true, false
	}
	return uint(v), true, true
}
