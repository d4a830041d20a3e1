package tui

import (
	"fmt"
	"strconv"
	"strings"

	"bettero/internal/model"

	"github.com/charmbracelet/huh"
)

// formKind names the add/edit form currently on screen.
type formKind int

const (
	formNone formKind = iota
	formLogin
	formTransaction
	formAccount
	formBill
	formStock
	formBudget
)

// formValues backs the huh inputs. Everything is a string until submit;
// parsing and model validation happen then, so a bad number surfaces as a
// status-bar error instead of a crash.
type formValues struct {
	username string
	password string

	description string
	category    string
	amount      string
	date        string
	account     string

	name          string
	institution   string
	accountNumber string
	accountType   string
	balance       string
	creditLimit   string
	dueDate       string

	corporation string
	symbol      string
	shares      string

	intervalType   string
	income         string
	expensePortion string
	// one boxed input per model.ExpenseCategories entry, same order
	portions []*string
}

func requiredInput(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value).Validate(func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("required")
		}
		return nil
	})
}

func numberInput(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value).Validate(func(s string) error {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return fmt.Errorf("must be a number")
		}
		return nil
	})
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, huh.NewOption(c, c))
	}
	return opts
}

func accountOptions(accounts []model.Account) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(accounts))
	for _, a := range accounts {
		opts = append(opts, huh.NewOption(a.Name, a.Name))
	}
	return opts
}

func newLoginForm(v *formValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		requiredInput("Username", &v.username),
		requiredInput("Password", &v.password).EchoMode(huh.EchoModePassword),
	))
}

func newTransactionForm(v *formValues, accounts []model.Account) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		requiredInput("Description", &v.description),
		huh.NewSelect[string]().Title("Category").Options(categoryOptions()...).Value(&v.category),
		numberInput("Amount", &v.amount),
		requiredInput("Date (YYYY-MM-DD)", &v.date),
		huh.NewSelect[string]().Title("Account").Options(accountOptions(accounts)...).Value(&v.account),
	))
}

func newAccountForm(v *formValues) *huh.Form {
	main := huh.NewGroup(
		requiredInput("Name", &v.name),
		requiredInput("Institution", &v.institution),
		numberInput("Account number", &v.accountNumber),
		huh.NewSelect[string]().Title("Type").
			Options(
				huh.NewOption(string(model.AccountDebit), string(model.AccountDebit)),
				huh.NewOption(string(model.AccountCredit), string(model.AccountCredit)),
			).
			Value(&v.accountType),
		numberInput("Balance", &v.balance),
	)
	// Credit-only fields live in a second group that hides for Debit.
	credit := huh.NewGroup(
		numberInput("Credit limit", &v.creditLimit),
		requiredInput("Due date (YYYY-MM-DD)", &v.dueDate),
	).WithHideFunc(func() bool {
		return v.accountType != string(model.AccountCredit)
	})
	return huh.NewForm(main, credit)
}

func newBillForm(v *formValues, accounts []model.Account) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Pay from").Options(accountOptions(accounts)...).Value(&v.account),
		requiredInput("Description", &v.description),
		huh.NewSelect[string]().Title("Category").Options(categoryOptions()...).Value(&v.category),
		numberInput("Amount", &v.amount),
		requiredInput("Due date (YYYY-MM-DD)", &v.dueDate),
	))
}

func newStockForm(v *formValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		requiredInput("Symbol", &v.symbol),
		requiredInput("Name", &v.name),
		requiredInput("Corporation", &v.corporation),
		numberInput("Shares", &v.shares),
	))
}

func newBudgetForm(v *formValues) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[string]().Title("Interval").
			Options(
				huh.NewOption("month", "month"),
				huh.NewOption("biWeek", "biWeek"),
				huh.NewOption("week", "week"),
			).
			Value(&v.intervalType),
		numberInput("Recurring income", &v.income),
		numberInput("Portion for expense (%)", &v.expensePortion),
	}
	v.portions = make([]*string, len(model.ExpenseCategories))
	for i, category := range model.ExpenseCategories {
		p := new(string)
		*p = "0"
		v.portions[i] = p
		fields = append(fields, numberInput(category+" (%)", p))
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

func parseMoney(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: must be a number", field)
	}
	return f, nil
}

func buildTransaction(v *formValues) (model.Transaction, error) {
	amount, err := parseMoney("amount", v.amount)
	if err != nil {
		return model.Transaction{}, err
	}
	tx := model.Transaction{
		Description: v.description,
		Category:    v.category,
		Amount:      amount,
		OccurDate:   v.date,
		AccountName: v.account,
	}
	return tx, tx.Validate()
}

func buildAccount(v *formValues) (model.Account, error) {
	number, err := strconv.ParseInt(strings.TrimSpace(v.accountNumber), 10, 64)
	if err != nil {
		return model.Account{}, fmt.Errorf("accountNumber: must be a number")
	}
	balance, err := parseMoney("balance", v.balance)
	if err != nil {
		return model.Account{}, err
	}
	a := model.Account{
		Name:          v.name,
		Institution:   v.institution,
		AccountNumber: number,
		AccountType:   model.AccountType(v.accountType),
		Balance:       balance,
	}
	if a.AccountType == model.AccountCredit {
		limit, err := parseMoney("creditLimit", v.creditLimit)
		if err != nil {
			return model.Account{}, err
		}
		due := v.dueDate
		a.CreditLimit = &limit
		a.DueDate = &due
	}
	return a, a.Validate()
}

func buildBill(v *formValues) (model.Bill, error) {
	amount, err := parseMoney("amount", v.amount)
	if err != nil {
		return model.Bill{}, err
	}
	b := model.Bill{
		PayAccountName: v.account,
		Description:    v.description,
		Category:       v.category,
		Amount:         amount,
		DueDate:        v.dueDate,
	}
	return b, b.Validate()
}

func buildStock(v *formValues) (model.Stock, error) {
	shares, err := strconv.ParseInt(strings.TrimSpace(v.shares), 10, 64)
	if err != nil {
		return model.Stock{}, fmt.Errorf("shares: must be a whole number")
	}
	s := model.Stock{
		Symbol:      strings.ToUpper(strings.TrimSpace(v.symbol)),
		Name:        v.name,
		Corporation: v.corporation,
		Shares:      shares,
	}
	return s, s.Validate()
}

func buildBudgetPlan(v *formValues) (model.BudgetPlan, error) {
	income, err := parseMoney("recurringIncome", v.income)
	if err != nil {
		return model.BudgetPlan{}, err
	}
	expensePortion, err := parseMoney("portionForExpense", v.expensePortion)
	if err != nil {
		return model.BudgetPlan{}, err
	}
	portions := make(map[string]float64, len(v.portions))
	for i, category := range model.ExpenseCategories {
		p, err := parseMoney(category, *v.portions[i])
		if err != nil {
			return model.BudgetPlan{}, err
		}
		portions[category] = p
	}
	plan := model.BudgetPlan{
		IntervalType:      v.intervalType,
		RecurringIncome:   income,
		PortionForExpense: expensePortion,
		CategoryPortion:   portions,
	}
	return plan, plan.Validate()
}
