package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mohitkumar/harvin/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// AdminStorage defines the interface for admin persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type AdminStorage interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// PasswordAuthenticator implements password-based admin authentication using bcrypt.
type PasswordAuthenticator struct {
	storage AdminStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage AdminStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Bootstrap ensures an admin account exists for the given email, creating it
// with a hashed password when missing. Called at startup with the configured
// admin credentials; an existing account is left untouched.
func (a *PasswordAuthenticator) Bootstrap(ctx context.Context, email, credential string) (*models.Admin, error) {
	existing, err := a.storage.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := a.storage.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// Authenticate verifies the email and password, returning the admin if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.Admin, error) {
	admin, err := a.storage.GetAdminByEmail(ctx, email)
	if err != nil || admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
