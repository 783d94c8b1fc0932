package utils

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotel-management/apperrors"
)

// Fail writes the canonical {error, code} envelope.
func Fail(c *gin.Context, apiErr *apperrors.APIError) {
	c.JSON(apiErr.Status, gin.H{"error": apiErr.Message, "code": apiErr.Code})
}

// FailInternal logs the underlying error and responds with the generic 500
// envelope. The detail never reaches the client.
func FailInternal(c *gin.Context, op string, err error) {
	log.Printf("❌ %s: %v", op, err)
	Fail(c, apperrors.Internal())
}
