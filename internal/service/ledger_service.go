package service

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/mohitkumar/harvin/internal/httpx"
	"github.com/mohitkumar/harvin/internal/ledger"
	"github.com/mohitkumar/harvin/internal/models"
	"github.com/mohitkumar/harvin/internal/storage"
)

// LedgerService handles the budget tracker endpoints.
//
// It performs no authorization checks of its own: every route it serves is
// mounted behind the admin gate.
type LedgerService struct {
	store     storage.Store
	start     time.Time
	dailyRate float64

	// now is swappable for tests.
	now func() time.Time
}

// NewLedgerService creates a new LedgerService with the given storage backend
// and budget parameters.
func NewLedgerService(store storage.Store, start time.Time, dailyRate float64) *LedgerService {
	return &LedgerService{
		store:     store,
		start:     start,
		dailyRate: dailyRate,
		now:       time.Now,
	}
}

type expenseRow struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Name      string  `json:"name"`
	CreatedAt int64   `json:"created_at"`
}

type extraBudgetRow struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Note      *string `json:"note"`
	CreatedAt int64   `json:"created_at"`
}

func toExtraBudgetRow(e *models.ExtraBudget) extraBudgetRow {
	row := extraBudgetRow{ID: e.ID, Amount: e.Amount, CreatedAt: e.CreatedAt}
	if e.Note != "" {
		note := e.Note
		row.Note = &note
	}
	return row
}

// Summary returns the derived budget state plus both entry lists,
// newest first. Totals are recomputed in full on every call.
func (s *LedgerService) Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	expenses, err := s.store.ListExpenses(r.Context())
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	extras, err := s.store.ListExtraBudgets(r.Context())
	if err != nil {
		slog.Error("ListExtraBudgets failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summary := ledger.Compute(s.now(), s.start, s.dailyRate, extras, expenses)

	expenseRows := make([]expenseRow, len(expenses))
	for i, e := range expenses {
		expenseRows[i] = expenseRow{ID: e.ID, Amount: e.Amount, Name: e.Name, CreatedAt: e.CreatedAt}
	}
	extraRows := make([]extraBudgetRow, len(extras))
	for i, e := range extras {
		extraRows[i] = toExtraBudgetRow(e)
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"summary":      summary,
		"expenses":     expenseRows,
		"extraBudgets": extraRows,
	})
}

// AddExpense records a new expense. Amount must be positive and finite,
// name must trim non-empty; both are checked before touching the store.
func (s *LedgerService) AddExpense(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Amount float64 `json:"amount"`
		Name   string  `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := ledger.ValidateAmount(input.Amount); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := ledger.ValidateName(input.Name); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense := &models.Expense{
		Amount: input.Amount,
		Name:   strings.TrimSpace(input.Name),
	}
	if err := s.store.CreateExpense(r.Context(), expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Expense added", "expense_id", expense.ID, "amount", expense.Amount)
	httpx.WriteJSON(w, http.StatusCreated, expenseRow{
		ID: expense.ID, Amount: expense.Amount, Name: expense.Name, CreatedAt: expense.CreatedAt,
	})
}

// DeleteExpense permanently removes an expense. No soft-delete, no audit trail.
func (s *LedgerService) DeleteExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := s.store.DeleteExpense(r.Context(), id); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Expense deleted", "expense_id", id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

// AddExtraBudget records a budget top-up. The note is optional and stored
// as NULL when empty.
func (s *LedgerService) AddExtraBudget(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Amount float64 `json:"amount"`
		Note   string  `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := ledger.ValidateAmount(input.Amount); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	extra := &models.ExtraBudget{
		Amount: input.Amount,
		Note:   strings.TrimSpace(input.Note),
	}
	if err := s.store.CreateExtraBudget(r.Context(), extra); err != nil {
		slog.Error("CreateExtraBudget failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Extra budget added", "extra_budget_id", extra.ID, "amount", extra.Amount)
	httpx.WriteJSON(w, http.StatusCreated, toExtraBudgetRow(extra))
}

// DeleteExtraBudget permanently removes a top-up entry.
func (s *LedgerService) DeleteExtraBudget(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := s.store.DeleteExtraBudget(r.Context(), id); err != nil {
		slog.Error("DeleteExtraBudget failed", "extra_budget_id", id, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Extra budget deleted", "extra_budget_id", id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}
