// Package model defines the client-side shapes of the bettero API resources.
//
// All entities are server-owned; these are transient per-view copies with a
// last-fetch-wins refresh policy. Dates travel as plain strings (the API uses
// YYYY-MM-DD) so they can be re-delimited for form display without a parse.
package model

// AccountType distinguishes debit from credit accounts. Set at creation,
// immutable afterwards.
type AccountType string

const (
	AccountDebit  AccountType = "Debit"
	AccountCredit AccountType = "Credit"
)

// Account is a single bank account. CreditLimit and DueDate are present
// iff AccountType is Credit.
type Account struct {
	ID            int         `json:"id"`
	User          int         `json:"user"`
	AccountNumber int64       `json:"accountNumber"`
	Name          string      `json:"name"`
	Institution   string      `json:"institution"`
	AccountType   AccountType `json:"accountType"`
	Balance       float64     `json:"balance"`
	CreditLimit   *float64    `json:"creditLimit"`
	DueDate       *string     `json:"dueDate"`
}

// Transaction is a single dated expense or income record.
// Amounts are positive decimals; a transaction is an inflow iff its
// category is Income.
type Transaction struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	OccurDate   string  `json:"occurDate"`
	AccountName string  `json:"accountName"`
}

// Inflow reports whether the transaction adds to the balance.
func (t Transaction) Inflow() bool {
	return t.Category == CategoryIncome
}

// Bill is a pending payment. Paying a bill converts it into a Transaction
// server-side; the client only warns about that side effect before deletion.
type Bill struct {
	ID             int     `json:"id"`
	User           int     `json:"user"`
	PayAccount     string  `json:"payAccount"`
	PayAccountName string  `json:"payAccountName"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	DueDate        string  `json:"dueDate"`
}

// OverdueMessage is a server-generated reminder for a bill past its due date.
type OverdueMessage struct {
	ID              int     `json:"id"`
	User            int     `json:"user"`
	BillDescription string  `json:"billDescription"`
	BillAmount      float64 `json:"billAmount"`
	BillDueDate     string  `json:"billDueDate"`
	AppearDate      string  `json:"appearDate"`
}

// Stock is one position in the user's portfolio with its latest OHLCV
// snapshot. Symbol is immutable after creation.
type Stock struct {
	ID              int     `json:"id"`
	User            int     `json:"user"`
	Corporation     string  `json:"corporation"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	Shares          int64   `json:"shares"`
	PreviousClose   float64 `json:"previousClose"`
	CurrentClose    float64 `json:"currentClose"`
	Change          float64 `json:"change"`
	Open            float64 `json:"open"`
	Low             float64 `json:"low"`
	High            float64 `json:"high"`
	Volume          int64   `json:"volume"`
	LastUpdatedDate string  `json:"lastUpdatedDate"`
}

// MarketValue returns the current value of the position.
func (s Stock) MarketValue() float64 {
	return float64(s.Shares) * s.CurrentClose
}

// PricePoint is one entry of a stock's price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// FinancialSummary is the headline figure set shown on the main view.
type FinancialSummary struct {
	TotalBalance   float64 `json:"totalBalance"`
	TotalAmountDue float64 `json:"totalAmountDue"`
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpense   float64 `json:"totalExpense"`
}

// CategoryProgress tracks actual spending against the budgeted amount for
// one category.
type CategoryProgress struct {
	Budget     float64 `json:"budget"`
	Current    float64 `json:"current"`
	Percentage float64 `json:"percentage"`
}

// BudgetPlan is the budget for one interval type. At most one plan is
// active per interval type.
type BudgetPlan struct {
	IntervalType      string                      `json:"intervalType"`
	RecurringIncome   float64                     `json:"recurringIncome"`
	PortionForExpense float64                     `json:"portionForExpense"`
	CategoryPortion   map[string]float64          `json:"categoryPortion"`
	Progress          map[string]CategoryProgress `json:"progress"`
}
