package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobtrack/config"
	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the access token payload: the registered subject/jti plus
// the role and display name every role-gated component needs. The jti doubles
// as the session id in the session store.
type SessionClaims struct {
	Role      models.Role `json:"role"`
	FirstName string      `json:"name"`
	jwt.RegisteredClaims
}

type authService struct {
	authenticator LegacyAuthenticator
	sessions      SessionStore
	jwtCfg        config.JWTConfig
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authenticator LegacyAuthenticator, sessions SessionStore, jwtCfg config.JWTConfig) AuthService {
	return &authService{
		authenticator: authenticator,
		sessions:      sessions,
		jwtCfg:        jwtCfg,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.authenticator.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Printf("Login attempt failed for email %s: no matching account", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	identity := models.SessionIdentity{
		ID:        account.ID,
		Role:      account.AccountType,
		FirstName: account.FirstName,
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, identity, s.jwtCfg.RefreshExpiration); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.signAccessToken(sid, identity)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	if err := s.sessions.SaveRefresh(ctx, refreshToken, sid, s.jwtCfg.RefreshExpiration); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         identity,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	sid, err := s.sessions.TakeRefresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	identity, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	// Sliding session: refreshing extends the blob's lifetime.
	if err := s.sessions.Save(ctx, sid, *identity, s.jwtCfg.RefreshExpiration); err != nil {
		return nil, fmt.Errorf("failed to extend session: %w", err)
	}

	token, err := s.signAccessToken(sid, *identity)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	if err := s.sessions.SaveRefresh(ctx, refreshToken, sid, s.jwtCfg.RefreshExpiration); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return &dto.RefreshResponse{Token: token, RefreshToken: refreshToken}, nil
}

func (s *authService) Logout(ctx context.Context, sid string, req *dto.LogoutRequest) error {
	// Spend the refresh token if it is still live; a missing token is fine,
	// the session delete is what ends access.
	if req.RefreshToken != "" {
		if _, err := s.sessions.TakeRefresh(ctx, req.RefreshToken); err != nil && !errors.Is(err, ErrSessionExpired) {
			return fmt.Errorf("internal error during logout: %w", err)
		}
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func (s *authService) signAccessToken(sid string, identity models.SessionIdentity) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Role:      identity.Role,
		FirstName: identity.FirstName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ID:        sid,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.Expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		log.Printf("Error signing access token for user %s: %v", identity.ID, err)
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return signed, nil
}
