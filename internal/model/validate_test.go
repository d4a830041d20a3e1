package model

import (
	"errors"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func validPortions() map[string]float64 {
	// Nine expense categories summing to exactly 100.
	return map[string]float64{
		"Housing":      30,
		"Automobile":   10,
		"Medical":      5,
		"Subscription": 5,
		"Grocery":      15,
		"Dining":       10,
		"Shopping":     10,
		"Gas":          5,
		"Others":       10,
	}
}

func TestAccountValidate(t *testing.T) {
	debit := Account{
		AccountNumber: 12345678,
		Name:          "Checking",
		Institution:   "Credit Union",
		AccountType:   AccountDebit,
		Balance:       100,
	}
	if err := debit.Validate(); err != nil {
		t.Fatalf("valid debit account rejected: %v", err)
	}

	credit := debit
	credit.AccountType = AccountCredit
	if err := credit.Validate(); err == nil {
		t.Fatal("credit account without limit and due date accepted")
	}
	credit.CreditLimit = floatPtr(5000)
	credit.DueDate = strPtr("2026-09-15")
	if err := credit.Validate(); err != nil {
		t.Fatalf("valid credit account rejected: %v", err)
	}

	debitWithLimit := debit
	debitWithLimit.CreditLimit = floatPtr(5000)
	if err := debitWithLimit.Validate(); err == nil {
		t.Fatal("debit account with credit limit accepted")
	}

	shortNumber := debit
	shortNumber.AccountNumber = 5
	if err := shortNumber.Validate(); err == nil {
		t.Fatal("single-digit account number accepted")
	}

	longNumber := debit
	longNumber.AccountNumber = 1234567890123 // 13 digits
	if err := longNumber.Validate(); err == nil {
		t.Fatal("13-digit account number accepted")
	}
}

func TestTransactionValidate(t *testing.T) {
	tx := Transaction{
		Description: "Coffee",
		Category:    "Dining",
		Amount:      4.5,
		OccurDate:   "2026-08-01",
	}
	if err := tx.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	bad := tx
	bad.Category = "Entertainment"
	if err := bad.Validate(); err == nil {
		t.Fatal("unknown category accepted")
	}

	bad = tx
	bad.Amount = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("zero amount accepted")
	}

	income := tx
	income.Category = CategoryIncome
	if err := income.Validate(); err != nil {
		t.Fatalf("income transaction rejected: %v", err)
	}
	if !income.Inflow() {
		t.Fatal("income transaction is not an inflow")
	}
	if tx.Inflow() {
		t.Fatal("expense transaction reported as inflow")
	}
}

func TestStockValidate(t *testing.T) {
	stock := Stock{
		Corporation: "Vanguard",
		Name:        "Total World",
		Symbol:      "VT",
		Shares:      10,
	}
	if err := stock.Validate(); err != nil {
		t.Fatalf("valid stock rejected: %v", err)
	}

	bad := stock
	bad.Shares = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("zero shares accepted")
	}

	bad = stock
	bad.Shares = MaxShares + 1
	if err := bad.Validate(); err == nil {
		t.Fatal("shares above the cap accepted")
	}
}

func TestBudgetPlanValidate_CompositionSum(t *testing.T) {
	plan := BudgetPlan{
		IntervalType:      "month",
		RecurringIncome:   4000,
		PortionForExpense: 80,
		CategoryPortion:   validPortions(),
	}
	if err := plan.Validate(); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}

	under := plan
	under.CategoryPortion = validPortions()
	under.CategoryPortion["Others"] = 9 // sum 99
	if err := under.Validate(); !errors.Is(err, ErrCompositionSum) {
		t.Fatalf("sum 99 err = %v, want ErrCompositionSum", err)
	}

	over := plan
	over.CategoryPortion = validPortions()
	over.CategoryPortion["Others"] = 11 // sum 101
	if err := over.Validate(); !errors.Is(err, ErrCompositionSum) {
		t.Fatalf("sum 101 err = %v, want ErrCompositionSum", err)
	}
}

func TestBudgetPlanValidate_Fields(t *testing.T) {
	plan := BudgetPlan{
		IntervalType:      "fortnight",
		RecurringIncome:   4000,
		PortionForExpense: 80,
		CategoryPortion:   validPortions(),
	}
	if err := plan.Validate(); err == nil {
		t.Fatal("unknown interval type accepted")
	}

	plan.IntervalType = "month"
	plan.RecurringIncome = 0
	if err := plan.Validate(); err == nil {
		t.Fatal("zero income accepted")
	}

	plan.RecurringIncome = 4000
	missing := validPortions()
	delete(missing, "Gas")
	plan.CategoryPortion = missing
	if err := plan.Validate(); err == nil {
		t.Fatal("plan with a missing category accepted")
	}
}

func TestValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category) {
			t.Errorf("ValidCategory(%q) = false", category)
		}
	}
	if ValidCategory("Entertainment") {
		t.Error("ValidCategory accepted an unknown category")
	}
	if !ValidCategory(CategoryIncome) {
		t.Error("ValidCategory rejected Income")
	}
}
