// Package ledger computes the running budget state from wall-clock time and
// the recorded expense and extra-budget entries.
//
// Everything here is a pure function: the state is recomputed in full from
// the latest fetch on every read and never cached or persisted, so any two
// callers with the same inputs arrive at the same totals.
package ledger

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/mohitkumar/harvin/internal/models"
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrEmptyName     = errors.New("name cannot be empty")
)

// Summary is the derived budget state at a single instant.
type Summary struct {
	// Days is the number of accrual days elapsed since the start date,
	// counting the start day itself. Negative before the start date.
	Days int `json:"days"`

	// DailyBudget is Days * dailyRate, clamped at zero so the budget
	// never goes negative before the start date.
	DailyBudget float64 `json:"dailyBudget"`

	// ExtraBudget is the sum of all extra-budget entries.
	ExtraBudget float64 `json:"extraBudget"`

	// TotalBudget is DailyBudget + ExtraBudget.
	TotalBudget float64 `json:"totalBudget"`

	// TotalSpent is the sum of all expense entries.
	TotalSpent float64 `json:"totalSpent"`

	// Balance is TotalBudget - TotalSpent. May be negative.
	Balance float64 `json:"balance"`
}

// ElapsedDays returns the number of whole days between start and now plus
// one, so the start day itself counts as day 1. The result is negative or
// zero when now precedes start.
func ElapsedDays(now, start time.Time) int {
	return int(math.Floor(now.Sub(start).Hours()/24)) + 1
}

// Compute derives the full budget summary for the given instant.
func Compute(now, start time.Time, dailyRate float64, extras []*models.ExtraBudget, expenses []*models.Expense) Summary {
	days := ElapsedDays(now, start)
	daily := math.Max(0, float64(days)*dailyRate)

	var extra float64
	for _, e := range extras {
		extra += e.Amount
	}

	var spent float64
	for _, e := range expenses {
		spent += e.Amount
	}

	total := daily + extra
	return Summary{
		Days:        days,
		DailyBudget: daily,
		ExtraBudget: extra,
		TotalBudget: total,
		TotalSpent:  spent,
		Balance:     total - spent,
	}
}

// ValidateAmount rejects amounts that are not positive finite numbers.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateName rejects names that trim to the empty string.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
