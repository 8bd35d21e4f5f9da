package handlers

import (
	"net/http"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds the auth service dependency for session operations.
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given service.
func NewAuthHandler(service services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Login godoc
// @Summary      Sign in
// @Description  Authenticates against the remote user collection and opens a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Sign-in form"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh access token
// @Description  Rotates the token pair while the session is still live.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.RefreshResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Sign out
// @Description  Ends the caller's session; the access token stops working immediately.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        logout body dto.LogoutRequest true "Refresh token to invalidate"
// @Success      204  {object}  nil
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, err := middleware.GetSessionIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.LogoutRequest
	// The body is optional; an empty one still ends the session.
	_ = c.ShouldBindJSON(&req)

	if err := h.service.Logout(c.Request.Context(), sid, &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
