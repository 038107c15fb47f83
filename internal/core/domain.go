package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Settings keys known at initialization time.
const (
	SettingMonthlyBudget = "monthly_budget"
	SettingCurrency      = "currency"

	DefaultCurrency = "INR"
)

// DateLayout is the calendar-date format used on the wire and in the store.
const DateLayout = "2006-01-02"

// MonthLayout is the YYYY-MM month key used by budgets and aggregations.
const MonthLayout = "2006-01"

type (
	// Transaction is a single recorded money movement. Timestamps and dates
	// are kept as store-formatted strings so responses mirror the stored rows.
	Transaction struct {
		ID            int64   `json:"id"`
		Type          string  `json:"type"`
		Amount        float64 `json:"amount"`
		Category      string  `json:"category"`
		Description   string  `json:"description"`
		Date          string  `json:"date"`
		PaymentMethod string  `json:"payment_method"`
		Notes         string  `json:"notes"`
		CreatedAt     string  `json:"created_at"`
		UpdatedAt     string  `json:"updated_at"`
	}

	// TransactionInput carries the writable fields of a transaction.
	TransactionInput struct {
		Type          string
		Amount        float64
		Category      string
		Description   string
		Date          string
		PaymentMethod string
		Notes         string
	}

	// CategoryBudget is a per-category spending cap for one calendar month.
	CategoryBudget struct {
		Category      string  `json:"category"`
		MonthlyBudget float64 `json:"monthly_budget"`
	}
)

// Validate checks the invariants enforced at write time: type, category and
// date must be present. Amount numericness is checked at the parse boundary.
func (in TransactionInput) Validate() error {
	if strings.TrimSpace(in.Type) == "" {
		return &ValidationError{Message: "Invalid or missing data provided. Please check your inputs.", Details: "type is required"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return &ValidationError{Message: "Invalid or missing data provided. Please check your inputs.", Details: "category is required"}
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return &ValidationError{Message: "Invalid or missing data provided. Please check your inputs.", Details: fmt.Sprintf("date %q is not a valid YYYY-MM-DD date", in.Date)}
	}
	return nil
}

// MonthOf returns the YYYY-MM month key for the given wall-clock time.
func MonthOf(t time.Time) string {
	return t.Format(MonthLayout)
}

// DateOf returns the YYYY-MM-DD calendar date for the given wall-clock time.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
