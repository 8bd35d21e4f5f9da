package handlers

import (
	"net/http"

	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds the service dependency for account management. Its routes
// are mounted behind the admin gate.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given service.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// GetUsers godoc
// @Summary      List all accounts
// @Description  Retrieves every account in the remote collection. Passwords are never included.
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponses(users))
}

// GetUserByID godoc
// @Summary      Get an account by ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "Account ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// CreateUser godoc
// @Summary      Create an account
// @Description  Validates the account form and stores it upstream; createdAt is stamped as epoch seconds.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body dto.CreateUserRequest true "Account form"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  map[string]string "Per-field errors under \"errors\""
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(created))
}

// UpdateUser godoc
// @Summary      Update an account
// @Description  Replaces the editable account fields. An empty password keeps the stored one.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Account ID"
// @Param        user  body  dto.UpdateUserRequest  true  "Account form"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  map[string]string "Per-field errors under \"errors\""
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(updated))
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "Account ID"
// @Success      204  {object}  nil
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDeleteUsers godoc
// @Summary      Delete a set of accounts
// @Description  Deletes the selected ids concurrently and reports an aggregate tally. There is no atomicity across the batch; the client should re-fetch the list afterwards.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        ids body dto.BulkDeleteUsersRequest true "Selected account ids"
// @Success      200  {object}  models.BulkDeleteResult
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/bulk-delete [post]
func (h *UserHandler) BulkDeleteUsers(c *gin.Context) {
	var req dto.BulkDeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	result, err := h.service.BulkDelete(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
