package core

// CategoryTotal is an amount aggregated by category name.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthlyTotals holds income and expense sums for one YYYY-MM month.
type MonthlyTotals struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Summary is the dashboard snapshot for a given current month.
type Summary struct {
	TotalIncome          float64            `json:"totalIncome"`
	TotalExpense         float64            `json:"totalExpense"`
	Balance              float64            `json:"balance"`
	MonthlyIncome        float64            `json:"monthlyIncome"`
	MonthlyExpense       float64            `json:"monthlyExpense"`
	MonthlyBudget        float64            `json:"monthlyBudget"`
	BudgetUsedPercentage float64            `json:"budgetUsedPercentage"`
	BudgetRemaining      float64            `json:"budgetRemaining"`
	RecentTransactions   []Transaction      `json:"recentTransactions"`
	CategoryBudgets      map[string]float64 `json:"categoryBudgets"`
	CategorySpending     map[string]float64 `json:"categorySpending"`
	Currency             string             `json:"currency"`
}

// BudgetView is the budget management snapshot for the current month.
type BudgetView struct {
	MonthlyBudget   float64          `json:"monthlyBudget"`
	CategoryBudgets []CategoryBudget `json:"categoryBudgets"`
	CurrentMonth    string           `json:"currentMonth"`
}

// BudgetUsage derives the used percentage and remaining amount for a monthly
// budget. Both are 0 when no budget is set, so expense totals never divide
// by zero.
func BudgetUsage(monthlyBudget, monthlyExpense float64) (usedPercentage, remaining float64) {
	if monthlyBudget <= 0 {
		return 0, 0
	}
	return monthlyExpense / monthlyBudget * 100, monthlyBudget - monthlyExpense
}
