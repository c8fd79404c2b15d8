package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mohitkumar/harvin/internal/models"
)

// fakeAdminStorage is an in-memory AdminStorage keyed by email.
type fakeAdminStorage struct {
	admins map[string]*models.Admin
}

func (f *fakeAdminStorage) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = "admin-1"
	}
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminStorage) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return f.admins[email], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	storage := &fakeAdminStorage{admins: map[string]*models.Admin{}}
	a := NewPasswordAuthenticator(storage)

	t.Run("bootstrap rejects short passwords", func(t *testing.T) {
		_, err := a.Bootstrap(ctx, "admin@example.com", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("error = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("bootstrap creates the account once", func(t *testing.T) {
		created, err := a.Bootstrap(ctx, "admin@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("Bootstrap failed: %v", err)
		}
		if created.PasswordHash == "correct-horse" {
			t.Error("password stored in the clear")
		}

		// A second bootstrap with a different password leaves the account alone.
		again, err := a.Bootstrap(ctx, "admin@example.com", "other-password")
		if err != nil {
			t.Fatalf("Bootstrap failed: %v", err)
		}
		if again.PasswordHash != created.PasswordHash {
			t.Error("existing account was overwritten")
		}
	})

	t.Run("authenticate", func(t *testing.T) {
		admin, err := a.Authenticate(ctx, "admin@example.com", "correct-horse")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if admin.Email != "admin@example.com" {
			t.Errorf("Email = %q", admin.Email)
		}

		if _, err := a.Authenticate(ctx, "admin@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
		}
		if _, err := a.Authenticate(ctx, "nobody@example.com", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
		}
	})
}
