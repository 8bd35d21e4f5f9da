package dto

import "jobtrack/internal/models"

// CreateJobRequest is the create form as submitted. Status is optional and
// defaults to Applied; dateAdded and the owning user are stamped server-side.
type CreateJobRequest struct {
	Company      string        `json:"company"`
	Position     string        `json:"position"`
	Status       models.Status `json:"status"`
	Notes        string        `json:"notes"`
	EmployeeName string        `json:"employeeName"`
	Email        string        `json:"email"`
	PhoneNumber  string        `json:"phoneNumber"`
}

// UpdateJobRequest is the edit form as submitted. Which of these fields are
// honoured depends on the caller's role: admins submit status, users submit
// company/position/notes. The rest is discarded by the field policy.
type UpdateJobRequest struct {
	Company  string        `json:"company"`
	Position string        `json:"position"`
	Status   models.Status `json:"status"`
	Notes    string        `json:"notes"`
}

// SortOrder values accepted by the job list endpoint.
const (
	SortDateAsc  = "asc"
	SortDateDesc = "desc"
)

// ListJobsRequest carries the dashboard's search/filter/sort/page criteria.
// The whole collection is fetched upstream; these criteria shape the visible
// subset client-side of the wire.
type ListJobsRequest struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Sort   string `form:"sort,default=desc" validate:"omitempty,oneof=asc desc"`
	Page   int    `form:"page,default=1"`
}

// JobListResponse is one page of the shaped collection plus enough paging
// state for a client to clamp and reset.
type JobListResponse struct {
	Items      []models.JobApplication `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalItems int                     `json:"total_items"`
	TotalPages int                     `json:"total_pages"`
}
