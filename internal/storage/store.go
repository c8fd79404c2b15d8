// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mohitkumar/harvin/internal/models"
)

// ErrConflict is returned when an insert collides with an existing row
// (e.g. adding a guest ID that is already registered).
var ErrConflict = errors.New("already exists")

// Store defines the interface for the site's storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateGuest inserts a new guest registry entry.
	// Returns ErrConflict if the ID is already registered.
	// The guest.CreatedAt field will be populated by the store.
	CreateGuest(ctx context.Context, guest *models.Guest) error

	// GetGuest retrieves a guest by its exact ID.
	// Returns (nil, nil) when no such entry exists.
	GetGuest(ctx context.Context, id string) (*models.Guest, error)

	// DeleteGuest removes a guest entry. Idempotent: deleting an absent
	// ID is not an error.
	DeleteGuest(ctx context.Context, id string) error

	// SetGuestDisabled updates the disabled flag. A no-op when the ID
	// does not exist.
	SetGuestDisabled(ctx context.Context, id string, disabled bool) error

	// ListGuests returns all registry entries, newest first.
	ListGuests(ctx context.Context) ([]*models.Guest, error)

	// CreateAdmin inserts a new admin account.
	CreateAdmin(ctx context.Context, admin *models.Admin) error

	// GetAdminByEmail retrieves an admin by email.
	// Returns (nil, nil) when no such account exists.
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)

	// CreateExpense persists a new expense. ID and CreatedAt are
	// populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns all expenses, newest first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// DeleteExpense permanently removes an expense by ID.
	DeleteExpense(ctx context.Context, id string) error

	// CreateExtraBudget persists a new extra-budget entry. ID and
	// CreatedAt are populated by the store.
	CreateExtraBudget(ctx context.Context, extra *models.ExtraBudget) error

	// ListExtraBudgets returns all extra-budget entries, newest first.
	ListExtraBudgets(ctx context.Context) ([]*models.ExtraBudget, error)

	// DeleteExtraBudget permanently removes an extra-budget entry by ID.
	DeleteExtraBudget(ctx context.Context, id string) error

	// CreateVideoLink persists a new video link. ID and CreatedAt are
	// populated by the store.
	CreateVideoLink(ctx context.Context, link *models.VideoLink) error

	// ListVideoLinks returns all video links, newest first.
	ListVideoLinks(ctx context.Context) ([]*models.VideoLink, error)

	// DeleteVideoLink removes a video link by ID.
	DeleteVideoLink(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
