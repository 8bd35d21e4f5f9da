package handlers_test

import (
	"net/http"
	"testing"

	"jobtrack/internal/models"
	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	h := newHarness(t)

	h.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req *dto.LoginRequest) (*dto.LoginResponse, error) {
			assert.Equal(t, "dana@example.com", req.Email)
			return &dto.LoginResponse{
				Token:        "access",
				RefreshToken: "refresh",
				User:         regularUser,
			}, nil
		})

	w := h.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "dana@example.com",
		Password: "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "access", body["token"])
	assert.Equal(t, "refresh", body["refresh_token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dana", user["firstName"])
	assert.Equal(t, string(models.RoleUser), user["role"])
}

func TestLogin_BadCredentials(t *testing.T) {
	h := newHarness(t)

	h.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

	w := h.do(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, w)["error"])
}

func TestLogin_FormValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"missing email", dto.LoginRequest{Password: "secret1"}},
		{"not an email", dto.LoginRequest{Email: "not-an-email", Password: "secret1"}},
		{"missing password", dto.LoginRequest{Email: "dana@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			w := h.do(t, http.MethodPost, "/api/v1/auth/login", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRefresh(t *testing.T) {
	h := newHarness(t)

	h.auth.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(
		&dto.RefreshResponse{Token: "new-access", RefreshToken: "new-refresh"}, nil)

	w := h.do(t, http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: "old-refresh"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new-refresh", decodeBody(t, w)["refresh_token"])
}

func TestRefresh_SpentToken(t *testing.T) {
	h := newHarness(t)

	h.auth.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(nil, services.ErrSessionExpired)

	w := h.do(t, http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: "spent"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	token := h.tokenFor(t, regularUser)

	h.auth.EXPECT().Logout(gomock.Any(), "sid-u1", gomock.Any()).DoAndReturn(
		func(_ interface{}, _ string, req *dto.LogoutRequest) error {
			assert.Equal(t, "refresh", req.RefreshToken)
			return nil
		})

	w := h.do(t, http.MethodPost, "/api/v1/auth/logout", token, dto.LogoutRequest{RefreshToken: "refresh"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogout_RequiresToken(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodPost, "/api/v1/auth/logout", "", dto.LogoutRequest{RefreshToken: "refresh"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPolicyFields(t *testing.T) {
	t.Run("admin edit locks everything but status", func(t *testing.T) {
		h := newHarness(t)
		token := h.tokenFor(t, adminUser)

		w := h.do(t, http.MethodGet, "/api/v1/policy/fields?mode=edit", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "edit", body["mode"])
		assert.Equal(t, string(models.RoleAdmin), body["role"])

		fields, ok := body["fields"].(map[string]any)
		require.True(t, ok)
		status, ok := fields["status"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, status["editable"])
		company, ok := fields["company"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, company["editable"])
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		h := newHarness(t)
		token := h.tokenFor(t, regularUser)

		w := h.do(t, http.MethodGet, "/api/v1/policy/fields?mode=review", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	h := newHarness(t)

	w := h.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}
