package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mohitkumar/harvin/internal/models"
)

// Error messages are shown to users verbatim.
var (
	ErrEmptyGuestID   = errors.New("ID cannot be empty")
	ErrGuestNotFound  = errors.New("User ID not found")
	ErrGuestDisabled  = errors.New("This ID has been disabled")
	ErrRegistryLookup = errors.New("Failed to verify ID")
)

// GuestRegistry defines the registry lookup the guest authenticator needs.
// This allows the authenticator to be independent of the storage implementation.
type GuestRegistry interface {
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
}

// GuestAuthenticator validates guest login attempts against the registry.
//
// Validation happens only at login time. Tokens already held by a client are
// accepted as-is by the identity resolver, so disabling or removing an ID
// does not force out a guest who is already logged in.
type GuestAuthenticator struct {
	registry GuestRegistry
}

// NewGuestAuthenticator creates a new registry-backed guest authenticator.
func NewGuestAuthenticator(registry GuestRegistry) *GuestAuthenticator {
	return &GuestAuthenticator{registry: registry}
}

// Verify checks a raw login ID against the registry and returns the trimmed
// ID on success. The empty-input check runs before any registry call.
func (a *GuestAuthenticator) Verify(ctx context.Context, rawID string) (string, error) {
	trimmed := strings.TrimSpace(rawID)
	if trimmed == "" {
		return "", ErrEmptyGuestID
	}

	guest, err := a.registry.GetGuest(ctx, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRegistryLookup, err)
	}
	if guest == nil {
		return "", ErrGuestNotFound
	}
	if guest.Disabled {
		return "", ErrGuestDisabled
	}

	return trimmed, nil
}
