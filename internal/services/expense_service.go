package services

import (
	"context"
	"fmt"

	"daybook/internal/core"
	"daybook/internal/ledger"
	"daybook/internal/log"
)

// ExpenseService records expenses in the shared ledger and evaluates budgets
// against its total.
type ExpenseService struct {
	store  ledger.ExpenseLedger
	logger *log.Logger
}

func NewExpenseService(store ledger.ExpenseLedger, logger *log.Logger) *ExpenseService {
	if logger == nil {
		logger = log.Discard()
	}
	return &ExpenseService{
		store:  store,
		logger: logger.WithComponent(log.ComponentExpenses),
	}
}

// AddExpense parses amount and appends the expense. A malformed amount fails
// with core.ErrParse before anything is written.
func (s *ExpenseService) AddExpense(ctx context.Context, date, category, amount, description string) (core.Expense, error) {
	value, err := core.ParseMoney(amount)
	if err != nil {
		s.logger.WarnContext(ctx, "Rejected expense amount",
			log.NewFields().WithOperation(log.OpCreate).WithError(err, log.ErrorTypeParse).ToSlice()...)
		return core.Expense{}, err
	}

	e := core.Expense{
		Date:        date,
		Category:    category,
		Amount:      value,
		Description: description,
	}
	if err := s.store.Add(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "Failed to add expense",
			log.NewFields().WithOperation(log.OpCreate).WithExpense(date, category, value.String()).
				WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return core.Expense{}, fmt.Errorf("add expense: %w", err)
	}

	s.logger.InfoContext(ctx, "Expense added",
		log.NewFields().WithOperation(log.OpCreate).WithExpense(date, category, value.String()).ToSlice()...)
	return e, nil
}

// List returns every expense in ledger order.
func (s *ExpenseService) List(ctx context.Context) ([]core.Expense, error) {
	expenses, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list expenses",
			log.NewFields().WithOperation(log.OpList).WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Total sums the ledger.
func (s *ExpenseService) Total(ctx context.Context) (core.Money, error) {
	total, err := s.store.Total(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to total expenses",
			log.NewFields().WithOperation(log.OpTotal).WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return core.Zero(), fmt.Errorf("total expenses: %w", err)
	}
	return total, nil
}

// TrackBudget compares budget with the ledger total. The budget is not stored.
func (s *ExpenseService) TrackBudget(ctx context.Context, budget core.Money) (core.BudgetReport, error) {
	spent, err := s.Total(ctx)
	if err != nil {
		return core.BudgetReport{}, err
	}

	report := core.EvaluateBudget(budget, spent)
	s.logger.WithComponent(log.ComponentBudget).DebugContext(ctx, "Budget evaluated",
		log.FieldOperation, log.OpEvaluate,
		log.FieldAmount, report.Remaining.String(),
		log.FieldOverBudget, report.OverBudget)
	return report, nil
}
