package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
)

func TestLedgerSummary(t *testing.T) {
	env := newTestEnv(t)

	// Pin the clock two days past the start date: day 3 of the budget.
	env.ledger.now = func() time.Time {
		return time.Date(2026, time.January, 24, 12, 0, 0, 0, time.UTC)
	}

	addExpense := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		env.ledger.AddExpense(w, jsonRequest(t, http.MethodPost, "/api/expenses", body), nil)
		return w
	}

	t.Run("empty ledger accrues daily budget only", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.ledger.Summary(w, httptest.NewRequest(http.MethodGet, "/api/budget", nil), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		body := decodeBody(t, w)
		summary := body["summary"].(map[string]any)
		if summary["days"] != float64(3) {
			t.Errorf("days = %v, want 3", summary["days"])
		}
		if summary["dailyBudget"] != float64(22500) {
			t.Errorf("dailyBudget = %v, want 22500", summary["dailyBudget"])
		}
		if summary["balance"] != float64(22500) {
			t.Errorf("balance = %v, want 22500", summary["balance"])
		}
	})

	t.Run("entries shift the balance", func(t *testing.T) {
		if w := addExpense(t, `{"amount": 200, "name": "diapers"}`); w.Code != http.StatusCreated {
			t.Fatalf("AddExpense status = %d, want 201: %s", w.Code, w.Body.String())
		}
		if w := addExpense(t, `{"amount": 100, "name": "wipes"}`); w.Code != http.StatusCreated {
			t.Fatalf("AddExpense status = %d, want 201", w.Code)
		}

		w := httptest.NewRecorder()
		env.ledger.AddExtraBudget(w, jsonRequest(t, http.MethodPost, "/api/budgets", `{"amount": 1000, "note": "gift"}`), nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("AddExtraBudget status = %d, want 201: %s", w.Code, w.Body.String())
		}

		w = httptest.NewRecorder()
		env.ledger.Summary(w, httptest.NewRequest(http.MethodGet, "/api/budget", nil), nil)

		body := decodeBody(t, w)
		summary := body["summary"].(map[string]any)
		if summary["totalBudget"] != float64(23500) {
			t.Errorf("totalBudget = %v, want 23500", summary["totalBudget"])
		}
		if summary["totalSpent"] != float64(300) {
			t.Errorf("totalSpent = %v, want 300", summary["totalSpent"])
		}
		if summary["balance"] != float64(23200) {
			t.Errorf("balance = %v, want 23200", summary["balance"])
		}

		expenses := body["expenses"].([]any)
		if len(expenses) != 2 {
			t.Fatalf("expenses = %d rows, want 2", len(expenses))
		}
		extras := body["extraBudgets"].([]any)
		if len(extras) != 1 {
			t.Fatalf("extraBudgets = %d rows, want 1", len(extras))
		}
		if note := extras[0].(map[string]any)["note"]; note != "gift" {
			t.Errorf("note = %v, want gift", note)
		}
	})

	t.Run("deleting an expense restores the balance", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.ledger.Summary(w, httptest.NewRequest(http.MethodGet, "/api/budget", nil), nil)
		expenses := decodeBody(t, w)["expenses"].([]any)
		id := expenses[0].(map[string]any)["id"].(string)

		w = httptest.NewRecorder()
		env.ledger.DeleteExpense(w, httptest.NewRequest(http.MethodDelete, "/api/expenses/"+id, nil),
			httprouter.Params{{Key: "id", Value: id}})
		if w.Code != http.StatusOK {
			t.Fatalf("DeleteExpense status = %d, want 200", w.Code)
		}

		w = httptest.NewRecorder()
		env.ledger.Summary(w, httptest.NewRequest(http.MethodGet, "/api/budget", nil), nil)
		summary := decodeBody(t, w)["summary"].(map[string]any)
		if summary["totalSpent"] != float64(200) {
			t.Errorf("totalSpent = %v, want 200", summary["totalSpent"])
		}
	})
}

func TestLedgerValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"zero amount", `{"amount": 0, "name": "x"}`, "amount must be a positive number"},
		{"negative amount", `{"amount": -5, "name": "x"}`, "amount must be a positive number"},
		{"blank name", `{"amount": 10, "name": "   "}`, "name cannot be empty"},
		{"malformed JSON", `{`, "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			env.ledger.AddExpense(w, jsonRequest(t, http.MethodPost, "/api/expenses", tt.body), nil)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tt.wantErr {
				t.Errorf("error = %v, want %q", body["error"], tt.wantErr)
			}
		})
	}

	t.Run("extra budget amount is validated too", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.ledger.AddExtraBudget(w, jsonRequest(t, http.MethodPost, "/api/budgets", `{"amount": -1}`), nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("extra budget note is optional", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.ledger.AddExtraBudget(w, jsonRequest(t, http.MethodPost, "/api/budgets", `{"amount": 50}`), nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["note"] != nil {
			t.Errorf("note = %v, want null", body["note"])
		}
	})
}
