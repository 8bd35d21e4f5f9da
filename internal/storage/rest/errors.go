package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobtrack/internal/storage"
)

// GatewayError is a failed remote store call: the upstream HTTP status plus
// whatever message the store returned. It unwraps to the matching storage
// sentinel where one exists.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote store returned %d", e.Status)
	}
	return fmt.Sprintf("remote store returned %d: %s", e.Status, e.Message)
}

func (e *GatewayError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return storage.ErrNotFound
	case http.StatusConflict:
		return storage.ErrConflict
	default:
		return nil
	}
}

func newGatewayError(resp *http.Response) *GatewayError {
	gwErr := &GatewayError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return gwErr
	}

	// Mock REST stores answer errors either as {"message": "..."} or as a
	// bare string body.
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			gwErr.Message = payload.Message
			return gwErr
		}
		if payload.Error != "" {
			gwErr.Message = payload.Error
			return gwErr
		}
	}
	gwErr.Message = strings.TrimSpace(string(raw))
	return gwErr
}
