package services

import (
	"context"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"
)

// AuthService defines the interface for sign-in and session lifecycle.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, sid string, req *dto.LogoutRequest) error
}

// JobService defines the interface for job application business logic. Every
// method takes the acting identity; role and ownership decisions happen here,
// not in the handlers.
type JobService interface {
	List(ctx context.Context, identity models.SessionIdentity, req *dto.ListJobsRequest) (*dto.JobListResponse, error)
	GetByID(ctx context.Context, identity models.SessionIdentity, id string) (*models.JobApplication, error)
	Create(ctx context.Context, identity models.SessionIdentity, req *dto.CreateJobRequest) (*models.JobApplication, error)
	Update(ctx context.Context, identity models.SessionIdentity, id string, req *dto.UpdateJobRequest) (*models.JobApplication, error)
	Delete(ctx context.Context, identity models.SessionIdentity, id string) error
}

// UserService defines the interface for the admin account management screen.
type UserService interface {
	GetAll(ctx context.Context) ([]models.UserAccount, error)
	GetByID(ctx context.Context, id string) (*models.UserAccount, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.UserAccount, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.UserAccount, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, req *dto.BulkDeleteUsersRequest) (*models.BulkDeleteResult, error)
}
