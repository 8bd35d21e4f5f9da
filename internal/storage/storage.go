package storage

import (
	"context"

	"jobtrack/internal/models"
	"jobtrack/internal/policy"
)

// JobRepository defines the interface for job application data operations.
// The remote collection returns lists in full; all filtering, sorting and
// pagination happens on this side of the wire.
type JobRepository interface {
	GetAll(ctx context.Context) ([]models.JobApplication, error)
	GetByID(ctx context.Context, id string) (*models.JobApplication, error)
	Create(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error)
	// Update sends a role-shaped partial record; fields absent from the
	// payload are left untouched upstream.
	Update(ctx context.Context, id string, patch policy.UpdatePayload) (*models.JobApplication, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.UserAccount, error)
	GetByID(ctx context.Context, id string) (*models.UserAccount, error)
	Create(ctx context.Context, user *models.UserAccount) (*models.UserAccount, error)
	Update(ctx context.Context, id string, user *models.UserAccount) (*models.UserAccount, error)
	Delete(ctx context.Context, id string) error
}
