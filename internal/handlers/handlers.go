package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"triptix/internal/errs"
	"triptix/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		services: services,
	}
}

// handleServiceError maps core errors onto HTTP responses. Every
// failure leaves server state unchanged, so callers can simply retry
// the operation.
func (h *Handlers) handleServiceError(c *gin.Context, err error, logMsg string) {
	var validationErr *errs.ValidationError
	var lockedErr *errs.LockedError
	var credentialsErr *errs.CredentialsError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrEmptySelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrSeatUnavailable), errors.Is(err, errs.ErrSelectionLimit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNoAccount):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &credentialsErr):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":         credentialsErr.Error(),
			"attempts_left": credentialsErr.AttemptsLeft,
		})
	case errors.As(err, &lockedErr):
		c.Header("Retry-After", strconv.Itoa(int(lockedErr.RetryAfter.Seconds())))
		c.JSON(http.StatusLocked, gin.H{
			"error":               lockedErr.Error(),
			"retry_after_minutes": lockedErr.RetryAfterMinutes(),
		})
	default:
		slog.Error(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}
