package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	identityCtx         = "sessionIdentity" // Key to store the identity in context
	sessionIDCtx        = "sessionID"       // Key to store the session id in context
)

// SessionReader resolves a session id to its stored identity. Implemented by
// the Redis-backed session store.
type SessionReader interface {
	Get(ctx context.Context, sid string) (*models.SessionIdentity, error)
}

// JWTAuthMiddleware creates a Gin middleware that authenticates a Bearer
// token and loads the session identity it points at. The token alone is not
// enough: the session blob must still exist, so a logout kills access tokens
// immediately.
func JWTAuthMiddleware(jwtSecret string, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		claims := &services.SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if !token.Valid || claims.ID == "" || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The session store is the source of truth for the identity; the
		// claims only locate it.
		identity, err := sessions.Get(c.Request.Context(), claims.ID)
		if err != nil {
			if errors.Is(err, services.ErrSessionExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
			} else {
				log.Printf("Auth middleware: Error loading session %s: %v", claims.ID, err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			}
			return
		}

		c.Set(identityCtx, *identity)
		c.Set(sessionIDCtx, claims.ID)
		c.Next()
	}
}

// GetIdentityFromContext returns the authenticated identity placed by the
// auth middleware.
func GetIdentityFromContext(c *gin.Context) (models.SessionIdentity, error) {
	identityAny, exists := c.Get(identityCtx)
	if !exists {
		return models.SessionIdentity{}, errors.New("session identity not found in context")
	}
	identity, ok := identityAny.(models.SessionIdentity)
	if !ok {
		return models.SessionIdentity{}, errors.New("session identity in context is of invalid type")
	}
	return identity, nil
}

// GetSessionIDFromContext returns the session id placed by the auth middleware.
func GetSessionIDFromContext(c *gin.Context) (string, error) {
	sidAny, exists := c.Get(sessionIDCtx)
	if !exists {
		return "", errors.New("session id not found in context")
	}
	sid, ok := sidAny.(string)
	if !ok {
		return "", errors.New("session id in context is of invalid type")
	}
	return sid, nil
}
