package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mohitkumar/harvin/internal/models"
	"github.com/mohitkumar/harvin/internal/storage"
)

// CreateGuest inserts a new guest registry entry.
// Returns storage.ErrConflict if the ID is already registered.
func (s *SQLiteStore) CreateGuest(ctx context.Context, guest *models.Guest) error {
	if guest.CreatedAt == 0 {
		guest.CreatedAt = time.Now().Unix()
	}

	// Check for an existing entry first so the caller gets a clean
	// conflict error instead of a raw constraint failure.
	existing, err := s.GetGuest(ctx, guest.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("guest %q: %w", guest.ID, storage.ErrConflict)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO guests (id, disabled, created_at) VALUES (?, ?, ?)",
		guest.ID, boolToInt(guest.Disabled), guest.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}

	return nil
}

// GetGuest retrieves a guest by its exact ID.
func (s *SQLiteStore) GetGuest(ctx context.Context, id string) (*models.Guest, error) {
	guest := &models.Guest{}
	var disabled int

	err := s.db.QueryRowContext(ctx,
		"SELECT id, disabled, created_at FROM guests WHERE id = ?",
		id,
	).Scan(&guest.ID, &disabled, &guest.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // Guest not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	guest.Disabled = disabled != 0
	return guest, nil
}

// DeleteGuest removes a guest entry. Deleting an absent ID is not an error.
func (s *SQLiteStore) DeleteGuest(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM guests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	return nil
}

// SetGuestDisabled updates the disabled flag. A no-op when the ID does not exist.
func (s *SQLiteStore) SetGuestDisabled(ctx context.Context, id string, disabled bool) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE guests SET disabled = ? WHERE id = ?",
		boolToInt(disabled), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}
	return nil
}

// ListGuests returns all registry entries, newest first.
func (s *SQLiteStore) ListGuests(ctx context.Context) ([]*models.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, disabled, created_at FROM guests ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	var guests []*models.Guest
	for rows.Next() {
		guest := &models.Guest{}
		var disabled int
		if err := rows.Scan(&guest.ID, &disabled, &guest.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guest.Disabled = disabled != 0
		guests = append(guests, guest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}

	return guests, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
