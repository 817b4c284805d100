package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps core errors onto HTTP status codes. Lock timeouts are
// retryable, so they get 503 with a Retry-After hint.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrIneligibleForClass):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrSeatNotAvailable),
		errors.Is(err, domain.ErrSeatNotBooked),
		errors.Is(err, domain.ErrAlreadyInitialized),
		errors.Is(err, domain.ErrReconfigurationBlocked):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrLockTimeout):
		c.Header("Retry-After", "1")
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
