package dto

import "jobtrack/internal/models"

// CreateUserRequest defines the structure for creating a new account.
type CreateUserRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Department  string      `json:"department"`
	Password    string      `json:"password"`
	AccountType models.Role `json:"accountType"`
}

// UpdateUserRequest defines the structure for updating an existing account.
// Password is optional; when empty the stored password is kept.
type UpdateUserRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Department  string      `json:"department"`
	Password    string      `json:"password"`
	AccountType models.Role `json:"accountType"`
}

// BulkDeleteUsersRequest deletes a set of selected account ids.
type BulkDeleteUsersRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// UserResponse is an account as returned by this API. The password never
// round-trips, even immediately after creation.
type UserResponse struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Department  string      `json:"department"`
	AccountType models.Role `json:"accountType"`
	CreatedAt   int64       `json:"createdAt"`
}
