package rest

import (
	"context"
	"net/http"
	"net/url"

	"jobtrack/internal/models"
	"jobtrack/internal/policy"
	"jobtrack/internal/storage"
)

const jobsPath = "/jobs"

// JobGateway implements storage.JobRepository over the remote job collection.
type JobGateway struct {
	client *Client
}

// NewJobGateway returns a job repository backed by the remote store.
func NewJobGateway(client *Client) *JobGateway {
	return &JobGateway{client: client}
}

var _ storage.JobRepository = (*JobGateway)(nil)

func (g *JobGateway) GetAll(ctx context.Context) ([]models.JobApplication, error) {
	var jobs []models.JobApplication
	if err := g.client.doJSON(ctx, http.MethodGet, jobsPath, nil, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.JobApplication{}
	}
	return jobs, nil
}

func (g *JobGateway) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var job models.JobApplication
	if err := g.client.doJSON(ctx, http.MethodGet, jobsPath+"/"+url.PathEscape(id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (g *JobGateway) Create(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error) {
	var created models.JobApplication
	if err := g.client.doJSON(ctx, http.MethodPost, jobsPath, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update sends only the fields present in the patch; the remote store leaves
// the rest of the record untouched.
func (g *JobGateway) Update(ctx context.Context, id string, patch policy.UpdatePayload) (*models.JobApplication, error) {
	var updated models.JobApplication
	if err := g.client.doJSON(ctx, http.MethodPut, jobsPath+"/"+url.PathEscape(id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *JobGateway) Delete(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, jobsPath+"/"+url.PathEscape(id), nil, nil)
}
