package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohitkumar/harvin/internal/models"
)

// CreateExpense persists a new expense to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (id, amount, name, created_at) VALUES (?, ?, ?, ?)",
		expense.ID, expense.Amount, expense.Name, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListExpenses returns all expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, name, created_at FROM expenses ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(&expense.ID, &expense.Amount, &expense.Name, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense permanently removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// CreateExtraBudget persists a new extra-budget entry to the database.
func (s *SQLiteStore) CreateExtraBudget(ctx context.Context, extra *models.ExtraBudget) error {
	if extra.ID == "" {
		extra.ID = uuid.New().String()
	}
	if extra.CreatedAt == 0 {
		extra.CreatedAt = time.Now().Unix()
	}

	var note interface{} = nil
	if extra.Note != "" {
		note = extra.Note
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO extra_budgets (id, amount, note, created_at) VALUES (?, ?, ?, ?)",
		extra.ID, extra.Amount, note, extra.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert extra budget: %w", err)
	}

	return nil
}

// ListExtraBudgets returns all extra-budget entries, newest first.
func (s *SQLiteStore) ListExtraBudgets(ctx context.Context) ([]*models.ExtraBudget, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, note, created_at FROM extra_budgets ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra budgets: %w", err)
	}
	defer rows.Close()

	var extras []*models.ExtraBudget
	for rows.Next() {
		extra := &models.ExtraBudget{}
		var note sql.NullString
		if err := rows.Scan(&extra.ID, &extra.Amount, &note, &extra.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extra budget: %w", err)
		}
		if note.Valid {
			extra.Note = note.String
		}
		extras = append(extras, extra)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate extra budgets: %w", err)
	}

	return extras, nil
}

// DeleteExtraBudget permanently removes an extra-budget entry by ID.
func (s *SQLiteStore) DeleteExtraBudget(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM extra_budgets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete extra budget: %w", err)
	}
	return nil
}
