// Package controllers holds the HTTP handlers. Each controller owns its
// storage dependency as a narrow interface so tests can swap in stubs, and
// all request validation happens here before anything touches storage.
package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-management/apperrors"
	"hotel-management/utils"
)

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.Fail(c, apperrors.BadRequest("INVALID_JSON", "Invalid JSON body"))
		return false
	}
	return true
}

// failLookup maps a storage read error to either the entity's 404 or the
// generic 500.
func failLookup(c *gin.Context, op string, err error, notFound *apperrors.APIError) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Fail(c, notFound)
		return
	}
	utils.FailInternal(c, op, err)
}
