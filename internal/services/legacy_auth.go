package services

import (
	"context"
	"log"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
)

// LegacyAuthenticator matches credentials against the remote user collection.
type LegacyAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserAccount, error)
}

// PlaintextScanAuthenticator reproduces the legacy sign-in behaviour: fetch
// the full user collection and scan for an email+password match. The remote
// store holds passwords in the clear and this comparison is plaintext. This
// is NOT a real authentication protocol; it is kept behaviourally faithful
// and deliberately isolated behind this type so nothing else in the system
// treats it as a security boundary.
type PlaintextScanAuthenticator struct {
	users storage.UserRepository
}

// NewPlaintextScanAuthenticator wraps the user repository.
func NewPlaintextScanAuthenticator(users storage.UserRepository) *PlaintextScanAuthenticator {
	return &PlaintextScanAuthenticator{users: users}
}

var _ LegacyAuthenticator = (*PlaintextScanAuthenticator)(nil)

func (a *PlaintextScanAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.UserAccount, error) {
	accounts, err := a.users.GetAll(ctx)
	if err != nil {
		log.Printf("LegacyAuth: error fetching user collection: %v", err)
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email && accounts[i].Password == password {
			return &accounts[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}
