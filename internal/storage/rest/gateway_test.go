package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtrack/config"
	"jobtrack/internal/models"
	"jobtrack/internal/policy"
	"jobtrack/internal/storage"
	"jobtrack/internal/storage/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturedRequest records what the gateway actually put on the wire.
type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// newTestClient starts an httptest server driven by handler and returns a
// gateway client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := rest.NewClient(config.RemoteConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
	require.NoError(t, err)
	return client
}

func respondJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	tests := []string{"", "   ", "not a url", "/relative/only", "example.com"}
	for _, base := range tests {
		t.Run("base "+base, func(t *testing.T) {
			_, err := rest.NewClient(config.RemoteConfig{BaseURL: base})
			assert.Error(t, err)
		})
	}
}

func TestJobGateway_GetAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/jobs", r.URL.Path)
		respondJSON(t, w, http.StatusOK, []models.JobApplication{
			{ID: "j1", Company: "Acme", Position: "Engineer", Status: models.StatusApplied},
			{ID: "j2", Company: "Globex", Position: "Analyst", Status: models.StatusOffer},
		})
	})

	jobs, err := rest.NewJobGateway(client).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, models.StatusOffer, jobs[1].Status)
}

func TestJobGateway_GetAll_NullBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "null")
	})

	jobs, err := rest.NewJobGateway(client).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, jobs, "a null collection decodes to an empty slice, not nil")
	assert.Empty(t, jobs)
}

func TestJobGateway_GetByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/missing", r.URL.Path)
		respondJSON(t, w, http.StatusNotFound, map[string]string{"message": "no such record"})
	})

	_, err := rest.NewJobGateway(client).GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	var gwErr *rest.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusNotFound, gwErr.Status)
	assert.Equal(t, "no such record", gwErr.Message)
}

func TestJobGateway_Create(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = capturedRequest{Method: r.Method, Path: r.URL.Path, Body: body}
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var job models.JobApplication
		require.NoError(t, json.Unmarshal(body, &job))
		job.ID = "j99"
		respondJSON(t, w, http.StatusCreated, job)
	})

	created, err := rest.NewJobGateway(client).Create(context.Background(), &models.JobApplication{
		Company:  "Acme",
		Position: "Engineer",
		Status:   models.StatusApplied,
		UserID:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "j99", created.ID)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/jobs", captured.Path)
}

func TestJobGateway_Update_PatchShapesOnTheWire(t *testing.T) {
	status := models.StatusApproved
	company := "Globex"
	position := "Engineer"
	clearedNotes := ""

	tests := []struct {
		name     string
		patch    policy.UpdatePayload
		wantBody map[string]any
	}{
		{
			name:     "status review carries only the status key",
			patch:    policy.UpdatePayload{Status: &status},
			wantBody: map[string]any{"status": "Approved"},
		},
		{
			name:  "owner edit carries the editable fields and clears notes",
			patch: policy.UpdatePayload{Company: &company, Position: &position, Notes: &clearedNotes},
			wantBody: map[string]any{
				"company":  "Globex",
				"position": "Engineer",
				"notes":    "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured capturedRequest
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				captured = capturedRequest{Method: r.Method, Path: r.URL.Path, Body: body}
				respondJSON(t, w, http.StatusOK, models.JobApplication{ID: "j1"})
			})

			_, err := rest.NewJobGateway(client).Update(context.Background(), "j1", tt.patch)
			require.NoError(t, err)

			assert.Equal(t, http.MethodPut, captured.Method)
			assert.Equal(t, "/jobs/j1", captured.Path)

			var sent map[string]any
			require.NoError(t, json.Unmarshal(captured.Body, &sent))
			assert.Equal(t, tt.wantBody, sent, "absent fields must not appear in the body at all")
		})
	}
}

func TestJobGateway_Delete(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = capturedRequest{Method: r.Method, Path: r.URL.Path}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, rest.NewJobGateway(client).Delete(context.Background(), "j1"))
	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/jobs/j1", captured.Path)
}

func TestUserGateway_Create_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusConflict, map[string]string{"error": "email already registered"})
	})

	_, err := rest.NewUserGateway(client).Create(context.Background(), &models.UserAccount{Email: "dana@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrConflict)

	var gwErr *rest.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "email already registered", gwErr.Message)
}

func TestUserGateway_GetByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1", r.URL.Path)
		respondJSON(t, w, http.StatusOK, models.UserAccount{ID: "u1", FirstName: "Dana"})
	})

	user, err := rest.NewUserGateway(client).GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.FirstName)
}

func TestGatewayError_PlainTextBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream exploded")
	})

	_, err := rest.NewUserGateway(client).GetAll(context.Background())
	require.Error(t, err)

	var gwErr *rest.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusBadGateway, gwErr.Status)
	assert.Equal(t, "upstream exploded", gwErr.Message)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
	assert.NotErrorIs(t, err, storage.ErrConflict)
}

func TestClient_BasePathIsPreserved(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respondJSON(t, w, http.StatusOK, []models.JobApplication{})
	}))
	t.Cleanup(srv.Close)

	client, err := rest.NewClient(config.RemoteConfig{BaseURL: srv.URL + "/api/"})
	require.NoError(t, err)

	_, err = rest.NewJobGateway(client).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/jobs", gotPath)
}
