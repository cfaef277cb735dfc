package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turismo_api/internal/apierrors"
)

// abortWithError turns a typed API error into its status and JSON
// body. Anything unclassified is a storage/internal fault and fails
// the request with 500; nothing is retried.
func abortWithError(c *gin.Context, err error) {
	var apiErr *apierrors.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), apiErr.Body())
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
