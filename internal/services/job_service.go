package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/policy"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"
)

const defaultPageSize = 9

type jobService struct {
	jobRepo    storage.JobRepository
	pageSize   int
	notesLimit int
}

// NewJobService creates a new instance of JobService. pageSize and notesLimit
// come from the tracker configuration; zero values fall back to the defaults.
func NewJobService(jobRepo storage.JobRepository, pageSize, notesLimit int) JobService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &jobService{jobRepo: jobRepo, pageSize: pageSize, notesLimit: notesLimit}
}

func (s *jobService) List(ctx context.Context, identity models.SessionIdentity, req *dto.ListJobsRequest) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		log.Printf("JobService: Error fetching job collection: %v", err)
		return nil, mapRepoError(err, "listing jobs")
	}

	shaped := visibleTo(identity, jobs)
	shaped = searchJobs(shaped, req.Search)
	shaped = filterByStatus(shaped, req.Status)
	shaped = sortByDateAdded(shaped, req.Sort)

	total := len(shaped)
	items, page, totalPages := paginate(shaped, req.Page, s.pageSize)

	return &dto.JobListResponse{
		Items:      items,
		Page:       page,
		PageSize:   s.pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (s *jobService) GetByID(ctx context.Context, identity models.SessionIdentity, id string) (*models.JobApplication, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	// A user may only open records they own; admins may open any record for
	// status review.
	if !policy.CanEdit(identity, job) {
		return nil, ErrForbidden
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, identity models.SessionIdentity, req *dto.CreateJobRequest) (*models.JobApplication, error) {
	job := &models.JobApplication{
		Company:      req.Company,
		Position:     req.Position,
		Status:       req.Status,
		Notes:        req.Notes,
		EmployeeName: req.EmployeeName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
	}
	if job.Status == "" {
		job.Status = models.StatusApplied
	}

	if err := newValidationError(policy.SubmitErrors(identity.Role, policy.ModeCreate, job, s.notesLimit)); err != nil {
		return nil, err
	}

	// Stamped once at submit time; the record never changes it afterwards.
	job.DateAdded = time.Now().UTC().Format(time.RFC3339)
	job.UserID = identity.ID
	job.SubmittedBy = identity.FirstName

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}
	return created, nil
}

func (s *jobService) Update(ctx context.Context, identity models.SessionIdentity, id string, req *dto.UpdateJobRequest) (*models.JobApplication, error) {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "loading job for update")
	}

	if !policy.CanEdit(identity, existing) {
		return nil, ErrForbidden
	}

	// Build the candidate record from the submitted editable fields layered
	// over the stored ones; the field policy then decides what actually goes
	// upstream.
	candidate := *existing
	if identity.IsAdmin() {
		candidate.Status = req.Status
	} else {
		candidate.Company = req.Company
		candidate.Position = req.Position
		candidate.Notes = req.Notes
	}

	if err := newValidationError(policy.SubmitErrors(identity.Role, policy.ModeEdit, &candidate, s.notesLimit)); err != nil {
		return nil, err
	}

	patch := policy.PayloadFor(identity.Role, &candidate)
	updated, err := s.jobRepo.Update(ctx, id, patch)
	if err != nil {
		log.Printf("JobService: Error updating job %s: %v", id, err)
		return nil, mapRepoError(err, "updating job")
	}
	return updated, nil
}

func (s *jobService) Delete(ctx context.Context, identity models.SessionIdentity, id string) error {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "loading job for delete")
	}

	// Deletion stays owner-only for every role, matching the observed
	// action gating.
	if !policy.CanDelete(identity, existing) {
		return ErrForbidden
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		log.Printf("JobService: Error deleting job %s: %v", id, err)
		return mapRepoError(err, "deleting job")
	}
	return nil
}

// mapRepoError translates storage sentinels into service sentinels, keeping
// the original chain for logging at the call site.
func mapRepoError(err error, op string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("internal error %s: %w", op, err)
	}
}
