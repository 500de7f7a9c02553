package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/engine"
)

// abortEngineError translates the engine failure taxonomy into distinct,
// user-displayable HTTP responses. Nothing is swallowed here.
func abortEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrUnauthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, engine.ErrProfileIncomplete):
		c.AbortWithStatusJSON(http.StatusPreconditionFailed, gin.H{"error": "complete your profile before booking or reporting"})
	case engine.IsValidation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrSlotTaken):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "this slot has already been reserved by someone else"})
	case errors.Is(err, engine.ErrAlreadyFinalized):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "this reservation is already finalized"})
	case errors.Is(err, engine.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "this reservation or report does not exist"})
	case errors.Is(err, engine.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to do that"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
