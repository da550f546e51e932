package core

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// BudgetReport compares a budget with what has been spent. It is derived on
// demand and never persisted.
type BudgetReport struct {
	Budget     Money
	Spent      Money
	Remaining  Money
	OverBudget bool
}

// EvaluateBudget computes remaining = budget - spent.
func EvaluateBudget(budget, spent Money) BudgetReport {
	remaining := budget.Sub(spent)
	return BudgetReport{
		Budget:     budget,
		Spent:      spent,
		Remaining:  remaining,
		OverBudget: remaining.IsNegative(),
	}
}

// TotalExpenses sums the amount of every expense.
func TotalExpenses(expenses []Expense) Money {
	total := Zero()
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory aggregates expenses per category, in order of first appearance.
func ByCategory(expenses []Expense) []CategoryAmount {
	index := map[string]int{}
	var out []CategoryAmount
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			index[e.Category] = len(out)
			out = append(out, CategoryAmount{Name: e.Category, Amount: Zero()})
			i = len(out) - 1
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}
