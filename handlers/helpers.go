package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/service"
)

// respondError maps domain errors onto HTTP status codes. Validation,
// conflict and credential failures are 400, missing entities 404, anything
// else a generic 500 so store internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
		notFoundErr   *service.NotFoundError
		authErr       *service.AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		// store and infrastructure failures; no dedicated error type, the
		// driver's error is logged and never echoed to the client
		log.Printf("store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
