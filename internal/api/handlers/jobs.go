package handlers

import (
	"net/http"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds the service dependency for job application operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// ListJobs godoc
// @Summary      List job applications
// @Description  Returns one page of the caller's visible applications, shaped by search, status filter and date sort. Admins see every record, users see their own.
// @Tags         jobs
// @Produce      json
// @Param        search  query  string  false  "Substring match on company or position"
// @Param        status  query  string  false  "Exact status filter"
// @Param        sort    query  string  false  "dateAdded order: asc or desc"  Enums(asc, desc)
// @Param        page    query  int     false  "Page number, clamped to the valid range"
// @Success      200  {object}  dto.JobListResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Security     BearerAuth
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	resp, err := h.service.List(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID godoc
// @Summary      Get a job application
// @Description  Retrieves one application. Users may open only records they own.
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job application ID"
// @Success      200  {object}  models.JobApplication
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Record a job application
// @Description  Validates the create form, stamps dateAdded and the owning user, and stores the record upstream. Status defaults to Applied.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body dto.CreateJobRequest true "Create form"
// @Success      201  {object}  models.JobApplication
// @Failure      400  {object}  map[string]string "Per-field errors under \"errors\""
// @Failure      502  {object}  map[string]string
// @Security     BearerAuth
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateJob godoc
// @Summary      Update a job application
// @Description  Applies a role-shaped edit: admins change only the status, owners change company, position and notes. The upstream update carries exactly those fields.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path  string                true  "Job application ID"
// @Param        job  body  dto.UpdateJobRequest  true  "Edit form"
// @Success      200  {object}  models.JobApplication
// @Failure      400  {object}  map[string]string "Per-field errors under \"errors\""
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJob godoc
// @Summary      Delete a job application
// @Description  Removes a record the caller owns. Deletion is owner-only for every role.
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Job application ID"
// @Success      204  {object}  nil
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, err := middleware.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
