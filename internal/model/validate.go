package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field limits enforced client-side before any network call.
const (
	MinAccountNumberDigits = 2
	MaxAccountNumberDigits = 12
	MinShares              = 1
	MaxShares              = 1_000_000
	MaxIncomeDigits        = 12
)

// ErrCompositionSum is returned when a budget plan's category percentages
// do not add up to exactly 100.
var ErrCompositionSum = errors.New("category percentages must add up to 100")

// ValidationError reports a per-field validation failure. It renders next to
// the offending field and blocks submission without a network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Validate checks the account invariants: required fields, a 2-12 digit
// account number, a non-negative balance, and credit limit plus due date
// present iff the account type is Credit.
func (a Account) Validate() error {
	digits := len(strconv.FormatInt(a.AccountNumber, 10))
	if a.AccountNumber <= 0 {
		return fieldErr("accountNumber", "account number is required")
	}
	if digits < MinAccountNumberDigits {
		return fieldErr("accountNumber", fmt.Sprintf("account number must have at least %d digits", MinAccountNumberDigits))
	}
	if digits > MaxAccountNumberDigits {
		return fieldErr("accountNumber", fmt.Sprintf("account number only has at most %d digits", MaxAccountNumberDigits))
	}
	if strings.TrimSpace(a.Name) == "" {
		return fieldErr("name", "account name is required")
	}
	if strings.TrimSpace(a.Institution) == "" {
		return fieldErr("institution", "institution is required")
	}
	if a.Balance < 0 {
		return fieldErr("balance", "balance must be greater than 0")
	}

	switch a.AccountType {
	case AccountDebit:
		if a.CreditLimit != nil || a.DueDate != nil {
			return fieldErr("accountType", "debit accounts have no credit limit or due date")
		}
	case AccountCredit:
		if a.CreditLimit == nil {
			return fieldErr("creditLimit", "credit limit is required")
		}
		if *a.CreditLimit < 0 {
			return fieldErr("creditLimit", "credit limit must be greater than 0")
		}
		if a.DueDate == nil || *a.DueDate == "" {
			return fieldErr("dueDate", "due date is required")
		}
	default:
		return fieldErr("accountType", "account type must be Debit or Credit")
	}
	return nil
}

// Validate checks the transaction's required fields and category.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fieldErr("description", "description is required")
	}
	if !ValidCategory(t.Category) {
		return fieldErr("category", "unknown category "+t.Category)
	}
	if t.Amount <= 0 {
		return fieldErr("amount", "amount must be greater than 0")
	}
	if t.OccurDate == "" {
		return fieldErr("occurDate", "date is required")
	}
	return nil
}

// Validate checks the bill's required fields.
func (b Bill) Validate() error {
	if strings.TrimSpace(b.Description) == "" {
		return fieldErr("description", "description is required")
	}
	if b.Amount <= 0 {
		return fieldErr("amount", "amount must be greater than 0")
	}
	if b.DueDate == "" {
		return fieldErr("dueDate", "due date is required")
	}
	return nil
}

// Validate checks the stock's required fields and share bounds.
func (s Stock) Validate() error {
	if strings.TrimSpace(s.Corporation) == "" {
		return fieldErr("corporation", "corporation is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fieldErr("name", "name is required")
	}
	if strings.TrimSpace(s.Symbol) == "" {
		return fieldErr("symbol", "symbol is required")
	}
	if s.Shares < MinShares {
		return fieldErr("shares", fmt.Sprintf("shares must be at least %d", MinShares))
	}
	if s.Shares > MaxShares {
		return fieldErr("shares", fmt.Sprintf("shares must be less than %d", MaxShares))
	}
	return nil
}

// Validate checks the plan's fields and the composition invariant: the
// per-category percentages must sum to exactly 100. A plan failing this is
// rejected locally, before transmission.
func (p BudgetPlan) Validate() error {
	if !ValidIntervalType(p.IntervalType) {
		return fieldErr("intervalType", "interval type must be month, biWeek, or week")
	}
	if p.RecurringIncome <= 0 {
		return fieldErr("recurringIncome", "income must be greater than 0")
	}
	if len(strconv.FormatFloat(p.RecurringIncome, 'f', -1, 64)) > MaxIncomeDigits {
		return fieldErr("recurringIncome", fmt.Sprintf("income only has at most %d digits", MaxIncomeDigits))
	}
	if p.PortionForExpense < 0 || p.PortionForExpense > 100 {
		return fieldErr("portionForExpense", "percentage must be between 0 and 100")
	}

	var sum float64
	for _, category := range ExpenseCategories {
		portion, ok := p.CategoryPortion[category]
		if !ok {
			return fieldErr(category, category+" portion is required")
		}
		if portion < 0 || portion > 100 {
			return fieldErr(category, "percentage must be between 0 and 100")
		}
		sum += portion
	}
	if sum != 100 {
		return ErrCompositionSum
	}
	return nil
}
