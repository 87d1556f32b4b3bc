package controllers

import (
	"errors"
	"net/http"

	"civic-reporter-be/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps store/service failures to HTTP responses. Validation
// and not-found failures carry their message; anything else is a generic
// 500 already logged closer to the failure.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
