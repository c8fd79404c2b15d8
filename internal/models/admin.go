package models

// Admin represents a credentialed administrator account.
type Admin struct {
	// ID is the unique identifier for the admin (UUID format).
	ID string

	// Email is the login email address (unique).
	Email string

	// PasswordHash is the bcrypt hash of the admin's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}
