package model

// CategoryIncome marks inflow transactions. Everything else is an expense
// category.
const CategoryIncome = "Income"

// ExpenseCategories is the canonical category set, in the order charts and
// forms display them.
var ExpenseCategories = []string{
	"Housing",
	"Automobile",
	"Medical",
	"Subscription",
	"Grocery",
	"Dining",
	"Shopping",
	"Gas",
	"Others",
}

// Categories is ExpenseCategories plus Income.
var Categories = append(append([]string(nil), ExpenseCategories...), CategoryIncome)

// ValidCategory reports whether name is one of the known categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// IntervalTypes are the budget/summary period kinds, as the API names them.
var IntervalTypes = []string{"month", "biWeek", "week"}

// ValidIntervalType reports whether t is a known interval type.
func ValidIntervalType(t string) bool {
	for _, it := range IntervalTypes {
		if it == t {
			return true
		}
	}
	return false
}
