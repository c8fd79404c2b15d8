package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohitkumar/harvin/internal/models"
)

// CreateAdmin inserts a new admin account.
func (s *SQLiteStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	if admin.CreatedAt == 0 {
		admin.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO admins (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		admin.ID, admin.Email, admin.PasswordHash, admin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	return nil
}

// GetAdminByEmail retrieves an admin by email.
func (s *SQLiteStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM admins WHERE email = ?",
		email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // Admin not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}
