package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	mock_storage "jobtrack/internal/mocks"
	"jobtrack/internal/models"
	"jobtrack/internal/policy"
	"jobtrack/internal/services"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPageSize   = 9
	testNotesLimit = 1000
)

var (
	userIdentity  = models.SessionIdentity{ID: "u1", Role: models.RoleUser, FirstName: "Dana"}
	otherIdentity = models.SessionIdentity{ID: "u2", Role: models.RoleUser, FirstName: "Sam"}
	adminIdentity = models.SessionIdentity{ID: "a1", Role: models.RoleAdmin, FirstName: "Riley"}
)

// twentyJobs builds a deterministic collection: ids j01..j20 with ascending
// dateAdded stamps, alternating owners, and a few Google entries to search
// for.
func twentyJobs() []models.JobApplication {
	companies := []string{
		"Acme", "Google", "Globex", "Initech", "Google Cloud",
		"Umbrella", "Stark Industries", "Hooli", "Wayne Enterprises", "Aperture",
		"Cyberdyne", "Tyrell", "Wonka", "Gringotts", "Monsters Inc",
		"Oscorp", "Dunder Mifflin", "Vandelay", "Bluth Company", "Pied Piper",
	}
	statuses := []models.Status{
		models.StatusApplied, models.StatusInterview, models.StatusOffer,
		models.StatusRejected, models.StatusPending,
	}

	jobs := make([]models.JobApplication, 0, 20)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		owner := "u1"
		if i%2 == 1 {
			owner = "u2"
		}
		jobs = append(jobs, models.JobApplication{
			ID:        fmt.Sprintf("j%02d", i+1),
			Company:   companies[i],
			Position:  "Engineer",
			Status:    statuses[i%len(statuses)],
			DateAdded: base.AddDate(0, 0, i).Format(time.RFC3339),
			UserID:    owner,
		})
	}
	return jobs
}

func newJobService(t *testing.T) (*mock_storage.MockJobRepository, services.JobService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_storage.NewMockJobRepository(ctrl)
	return repo, services.NewJobService(repo, testPageSize, testNotesLimit)
}

func TestJobService_List_Search(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetAll(gomock.Any()).Return(twentyJobs(), nil)

	resp, err := svc.List(context.Background(), adminIdentity, &dto.ListJobsRequest{Search: "goog", Sort: dto.SortDateAsc, Page: 1})
	require.NoError(t, err)

	require.Equal(t, 2, resp.TotalItems)
	assert.Equal(t, "Google", resp.Items[0].Company)
	assert.Equal(t, "Google Cloud", resp.Items[1].Company)
}

func TestJobService_List_SortIsReversible(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetAll(gomock.Any()).Return(twentyJobs(), nil).Times(2)

	asc, err := svc.List(context.Background(), adminIdentity, &dto.ListJobsRequest{Sort: dto.SortDateAsc, Page: 1})
	require.NoError(t, err)
	desc, err := svc.List(context.Background(), adminIdentity, &dto.ListJobsRequest{Sort: dto.SortDateDesc, Page: 1})
	require.NoError(t, err)

	assert.Equal(t, "j01", asc.Items[0].ID)
	assert.Equal(t, "j20", desc.Items[0].ID)
}

func TestJobService_List_StatusFilter(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetAll(gomock.Any()).Return(twentyJobs(), nil)

	resp, err := svc.List(context.Background(), adminIdentity, &dto.ListJobsRequest{Status: string(models.StatusOffer), Page: 1})
	require.NoError(t, err)
	require.Equal(t, 4, resp.TotalItems)
	for _, job := range resp.Items {
		assert.Equal(t, models.StatusOffer, job.Status)
	}
}

func TestJobService_List_OwnershipScoping(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetAll(gomock.Any()).Return(twentyJobs(), nil).Times(2)

	mine, err := svc.List(context.Background(), userIdentity, &dto.ListJobsRequest{Sort: dto.SortDateAsc, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, mine.TotalItems, "non-admins see only their own records")
	for _, job := range mine.Items {
		assert.Equal(t, "u1", job.UserID)
	}

	all, err := svc.List(context.Background(), adminIdentity, &dto.ListJobsRequest{Sort: dto.SortDateAsc, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 20, all.TotalItems, "admins see everything")
}

func TestJobService_List_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantCount int
	}{
		{"Page 1 is full", 1, 1, 9},
		{"Page 3 holds the remainder", 3, 3, 2},
		{"Page 0 clamps to 1", 0, 1, 9},
		{"Page 100 clamps to the last page", 100, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newJobService(t)
			repo.EXPECT().GetAll(gomock.Any()).Return(twentyJobs(), nil)

			resp, err := svc.List(context.Background(), adminIdentity, &dto.ListJobsRequest{Sort: dto.SortDateAsc, Page: tt.page})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, resp.Page)
			assert.Len(t, resp.Items, tt.wantCount)
			assert.Equal(t, 3, resp.TotalPages)
			assert.Equal(t, 20, resp.TotalItems)
		})
	}
}

func TestJobService_List_EmptyCollection(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetAll(gomock.Any()).Return([]models.JobApplication{}, nil)

	resp, err := svc.List(context.Background(), userIdentity, &dto.ListJobsRequest{Page: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestJobService_Create_StampsAndDefaults(t *testing.T) {
	repo, svc := newJobService(t)

	var sent *models.JobApplication
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job *models.JobApplication) (*models.JobApplication, error) {
			sent = job
			created := *job
			created.ID = "j-new"
			return &created, nil
		})

	before := time.Now().UTC().Add(-time.Second)
	created, err := svc.Create(context.Background(), userIdentity, &dto.CreateJobRequest{
		Company:  "Acme",
		Position: "Engineer",
		Status:   models.StatusApplied,
		Notes:    "",
	})
	require.NoError(t, err)
	require.NotNil(t, sent)

	assert.Equal(t, "Acme", sent.Company)
	assert.Equal(t, "Engineer", sent.Position)
	assert.Equal(t, models.StatusApplied, sent.Status)
	assert.Equal(t, "", sent.Notes)
	assert.Equal(t, "u1", sent.UserID, "owner comes from the session, not the form")

	stamp, parseErr := time.Parse(time.RFC3339, sent.DateAdded)
	require.NoError(t, parseErr, "dateAdded must be a fresh RFC 3339 stamp")
	assert.False(t, stamp.Before(before))

	assert.Equal(t, "j-new", created.ID)
}

func TestJobService_Create_DefaultsEmptyStatus(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, job *models.JobApplication) (*models.JobApplication, error) {
			assert.Equal(t, models.StatusApplied, job.Status)
			return job, nil
		})

	_, err := svc.Create(context.Background(), userIdentity, &dto.CreateJobRequest{Company: "Acme", Position: "Engineer"})
	require.NoError(t, err)
}

func TestJobService_Create_BlockedByValidation(t *testing.T) {
	// No Create expectation: a blocked submit must never reach the gateway.
	_, svc := newJobService(t)

	_, err := svc.Create(context.Background(), userIdentity, &dto.CreateJobRequest{Company: "", Position: "Engineer"})
	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrValidation)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "company")
	assert.Contains(t, validationErr.Fields["company"], "required")
}

func storedJob() *models.JobApplication {
	return &models.JobApplication{
		ID: "j05", Company: "Acme", Position: "Engineer",
		Status: models.StatusPending, Notes: "old notes",
		UserID: "u1", DateAdded: "2025-01-05T12:00:00Z",
	}
}

func TestJobService_Update_AdminSendsOnlyStatus(t *testing.T) {
	repo, svc := newJobService(t)
	stored := storedJob()

	repo.EXPECT().GetByID(gomock.Any(), "j05").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), "j05", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch policy.UpdatePayload) (*models.JobApplication, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusApproved, *patch.Status)
			assert.Nil(t, patch.Company, "admin edit must not touch company")
			assert.Nil(t, patch.Position)
			assert.Nil(t, patch.Notes)
			updated := *stored
			updated.Status = *patch.Status
			return &updated, nil
		})

	updated, err := svc.Update(context.Background(), adminIdentity, "j05", &dto.UpdateJobRequest{Status: models.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestJobService_Update_UserNeverTouchesStatus(t *testing.T) {
	repo, svc := newJobService(t)
	stored := storedJob()

	repo.EXPECT().GetByID(gomock.Any(), "j05").Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), "j05", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch policy.UpdatePayload) (*models.JobApplication, error) {
			assert.Nil(t, patch.Status, "user edit must never carry status")
			require.NotNil(t, patch.Company)
			require.NotNil(t, patch.Position)
			require.NotNil(t, patch.Notes)
			assert.Equal(t, "Globex", *patch.Company)
			assert.Equal(t, "", *patch.Notes, "clearing notes still goes upstream")
			return stored, nil
		})

	// The submitted status is discarded by the field policy, not rejected.
	_, err := svc.Update(context.Background(), userIdentity, "j05", &dto.UpdateJobRequest{
		Company:  "Globex",
		Position: "Engineer",
		Notes:    "",
		Status:   models.StatusApproved,
	})
	require.NoError(t, err)
}

func TestJobService_Update_BlockedByValidation(t *testing.T) {
	// GetByID is expected, Update is not: the blocked submit stops before
	// the gateway call.
	repo, svc := newJobService(t)
	repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

	_, err := svc.Update(context.Background(), userIdentity, "j05", &dto.UpdateJobRequest{
		Company:  "",
		Position: "Engineer",
	})
	require.Error(t, err)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "company")
}

func TestJobService_Update_ForbiddenForNonOwner(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

	_, err := svc.Update(context.Background(), otherIdentity, "j05", &dto.UpdateJobRequest{
		Company:  "Globex",
		Position: "Engineer",
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestJobService_Update_NotFound(t *testing.T) {
	repo, svc := newJobService(t)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	_, err := svc.Update(context.Background(), userIdentity, "missing", &dto.UpdateJobRequest{
		Company:  "Globex",
		Position: "Engineer",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobService_Delete(t *testing.T) {
	t.Run("owner deletes own record", func(t *testing.T) {
		repo, svc := newJobService(t)
		repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)
		repo.EXPECT().Delete(gomock.Any(), "j05").Return(nil)

		require.NoError(t, svc.Delete(context.Background(), userIdentity, "j05"))
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		repo, svc := newJobService(t)
		repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

		err := svc.Delete(context.Background(), otherIdentity, "j05")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("admin is refused too", func(t *testing.T) {
		repo, svc := newJobService(t)
		repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

		err := svc.Delete(context.Background(), adminIdentity, "j05")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestJobService_GetByID(t *testing.T) {
	t.Run("owner reads own record", func(t *testing.T) {
		repo, svc := newJobService(t)
		repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

		job, err := svc.GetByID(context.Background(), userIdentity, "j05")
		require.NoError(t, err)
		assert.Equal(t, "j05", job.ID)
	})

	t.Run("admin reads any record", func(t *testing.T) {
		repo, svc := newJobService(t)
		repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

		_, err := svc.GetByID(context.Background(), adminIdentity, "j05")
		require.NoError(t, err)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		repo, svc := newJobService(t)
		repo.EXPECT().GetByID(gomock.Any(), "j05").Return(storedJob(), nil)

		_, err := svc.GetByID(context.Background(), otherIdentity, "j05")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestJobService_List_GatewayFailure(t *testing.T) {
	repo, svc := newJobService(t)
	upstream := errors.New("connection refused")
	repo.EXPECT().GetAll(gomock.Any()).Return(nil, upstream)

	_, err := svc.List(context.Background(), userIdentity, &dto.ListJobsRequest{Page: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream, "the cause stays in the chain")
}
