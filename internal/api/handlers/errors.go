package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobtrack/internal/services"
	"jobtrack/internal/storage/rest"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondServiceError translates service-layer failures into the one HTTP
// response each deserves. Field validation comes back as the per-field map
// the form renders inline; remote store failures surface as a gateway error
// the client shows as a transient notice and may retry manually.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": validationErr.Fields})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, services.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
	default:
		var gwErr *rest.GatewayError
		if errors.As(err, &gwErr) {
			log.Printf("Remote store failure: %v", gwErr)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Remote store request failed"})
			return
		}
		log.Printf("Unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errors := make(map[string]string)
	for _, err := range errs {
		errors[err.Field()] = "Field validation for '" + err.Field() + "' failed on the '" + err.Tag() + "' tag"
	}
	return errors
}
