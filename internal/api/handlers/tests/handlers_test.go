package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack/internal/api/handlers"
	"jobtrack/internal/api/middleware"
	"jobtrack/internal/api/routes"
	mock_services "jobtrack/internal/mocks"
	"jobtrack/internal/models"
	"jobtrack/internal/services"
	"jobtrack/internal/storage/rest"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

var (
	regularUser = models.SessionIdentity{ID: "u1", Role: models.RoleUser, FirstName: "Dana"}
	adminUser   = models.SessionIdentity{ID: "a1", Role: models.RoleAdmin, FirstName: "Riley"}
)

// fakeSessions is a SessionReader backed by a plain map; the middleware only
// needs Get.
type fakeSessions struct {
	sessions map[string]models.SessionIdentity
}

func (f *fakeSessions) Get(_ context.Context, sid string) (*models.SessionIdentity, error) {
	identity, ok := f.sessions[sid]
	if !ok {
		return nil, services.ErrSessionExpired
	}
	return &identity, nil
}

var _ middleware.SessionReader = (*fakeSessions)(nil)

// testHarness wires mock services behind the real routes and middleware.
type testHarness struct {
	router   *gin.Engine
	auth     *mock_services.MockAuthService
	jobs     *mock_services.MockJobService
	users    *mock_services.MockUserService
	sessions *fakeSessions
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	h := &testHarness{
		auth:     mock_services.NewMockAuthService(ctrl),
		jobs:     mock_services.NewMockJobService(ctrl),
		users:    mock_services.NewMockUserService(ctrl),
		sessions: &fakeSessions{sessions: map[string]models.SessionIdentity{}},
	}

	validate := validator.New()
	authMiddleware := middleware.JWTAuthMiddleware(testSecret, h.sessions)

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	routes.RegisterAuthRoutes(apiV1, handlers.NewAuthHandler(h.auth, validate), authMiddleware)
	routes.RegisterJobRoutes(apiV1, handlers.NewJobHandler(h.jobs, validate), authMiddleware)
	routes.RegisterUserRoutes(apiV1, handlers.NewUserHandler(h.users, validate), authMiddleware)
	apiV1.GET("/policy/fields", authMiddleware, handlers.NewPolicyHandler().GetFieldPolicies)
	router.GET("/health", handlers.HealthCheck)

	h.router = router
	return h
}

// tokenFor opens a fake session for the identity and signs a matching access
// token, so requests pass the real auth middleware.
func (h *testHarness) tokenFor(t *testing.T, identity models.SessionIdentity) string {
	t.Helper()
	sid := "sid-" + identity.ID
	h.sessions.sessions[sid] = identity

	claims := &services.SessionClaims{
		Role:      identity.Role,
		FirstName: identity.FirstName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ID:        sid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (h *testHarness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

// gatewayErr builds the wrapped remote store failure the services surface.
func gatewayErr(status int) error {
	return fmt.Errorf("internal error listing jobs: %w", &rest.GatewayError{Status: status})
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
