package models

// Guest represents an allow-listed login identifier.
//
// The ID doubles as the login credential: possession of an enabled ID is all
// a guest needs. Guests are created and managed by admins only; a guest can
// never create, disable, or remove entries.
type Guest struct {
	// ID is the admin-chosen identifier string (e.g. "family_member_1").
	// Unique across the registry.
	ID string

	// Disabled marks the ID as rejected at login time. Disabled entries
	// stay listed so admins can review and re-enable them.
	Disabled bool

	// CreatedAt is the Unix timestamp when the entry was added.
	CreatedAt int64
}
