package menu

import (
	"context"

	"daybook/internal/core"
	"daybook/internal/log"
)

func (m *Menu) budgetMenu(ctx context.Context) error {
	for {
		choice, err := m.choose(ctx, budgetMenuTitle, budgetMenuItems)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.addExpense(ctx)
		case "2":
			m.viewExpenses(ctx)
		case "3":
			err = m.trackBudget(ctx)
		case "4":
			// Every expense is persisted as it is added.
			m.prompt.Println(msgExpensesSaved)
			return nil
		case "5":
			m.prompt.Println(msgExiting)
			return nil
		default:
			m.prompt.Println(msgInvalidChoice)
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addExpense(ctx context.Context) error {
	date, err := m.prompt.Ask(ctx, promptExpenseDate)
	if err != nil {
		return err
	}
	category, err := m.prompt.Ask(ctx, promptExpenseKind)
	if err != nil {
		return err
	}
	amount, err := m.prompt.Ask(ctx, promptExpenseAmount)
	if err != nil {
		return err
	}
	if _, err := core.ParseMoney(amount); err != nil {
		m.prompt.Println(msgInvalidAmount)
		return nil
	}
	description, err := m.prompt.Ask(ctx, promptExpenseText)
	if err != nil {
		return err
	}

	if _, err := m.svc.Expenses.AddExpense(ctx, date, category, amount, description); err != nil {
		m.report(err, msgNotSaved)
		return nil
	}
	m.prompt.Println(msgExpenseAdded)
	return nil
}

func (m *Menu) viewExpenses(ctx context.Context) {
	expenses, err := m.svc.Expenses.List(ctx)
	if err != nil {
		m.report(err, msgNotLoaded)
		return
	}
	if len(expenses) == 0 {
		m.prompt.Println(msgNoExpenses)
		return
	}

	m.prompt.Println(msgExpensesHeader)
	for _, e := range expenses {
		m.prompt.Printf(msgExpenseLine, e.Date, e.Category, e.Amount.Format(m.currency), e.Description)
	}
}

func (m *Menu) trackBudget(ctx context.Context) error {
	text, err := m.prompt.Ask(ctx, promptMonthlyBudget+core.CurrencySymbol(m.currency))
	if err != nil {
		return err
	}
	budget, err := core.ParseMoney(text)
	if err != nil {
		m.prompt.Println(msgInvalidAmount)
		return nil
	}

	report, err := m.svc.Expenses.TrackBudget(ctx, budget)
	if err != nil {
		m.report(err, msgNotLoaded)
		return nil
	}

	m.logger.DebugContext(ctx, "Budget shown", log.FieldOverBudget, report.OverBudget)
	if report.OverBudget {
		m.prompt.Printf(msgOverBudget, report.Remaining.Abs().Format(m.currency))
	} else {
		m.prompt.Printf(msgBudgetLeft, report.Remaining.Format(m.currency))
	}
	return nil
}
