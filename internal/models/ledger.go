package models

// Expense represents a single recorded spend.
// Expenses are immutable once created; the only mutation is deletion.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Amount is the positive amount spent.
	Amount float64

	// Name describes what the money was spent on. Never empty.
	Name string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExtraBudget represents an ad hoc budget top-up on top of the daily accrual.
// Same lifecycle as Expense: immutable, delete-only.
type ExtraBudget struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string

	// Amount is the positive amount added to the budget.
	Amount float64

	// Note is an optional free-text description. Empty means none
	// (stored as NULL).
	Note string

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64
}
