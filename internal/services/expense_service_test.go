package services

import (
	"context"
	"errors"
	"testing"

	"daybook/internal/core"
	"daybook/internal/ledger/memory"
)

func TestExpenseService_AddListTotal(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(memory.NewExpenses(), nil)

	inputs := []struct {
		date, category, amount, description string
	}{
		{"2024-01-01", "food", "12.50", "lunch"},
		{"2024-01-02", "transport", "3", "bus"},
		{"2024-01-03", "food", "0,5", "gum"},
	}
	for _, in := range inputs {
		if _, err := svc.AddExpense(ctx, in.date, in.category, in.amount, in.description); err != nil {
			t.Fatalf("AddExpense(%v): %v", in, err)
		}
	}

	expenses, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(expenses) != 3 || expenses[1].Description != "bus" {
		t.Fatalf("unexpected expenses %+v", expenses)
	}

	total, err := svc.Total(ctx)
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if !total.Equal(core.MustParseMoney("16")) {
		t.Errorf("Total = %s, want 16", total)
	}
}

func TestExpenseService_RejectsBadAmount(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(memory.NewExpenses(), nil)

	if _, err := svc.AddExpense(ctx, "2024-01-01", "food", "twelve", "lunch"); !errors.Is(err, core.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if expenses, _ := svc.List(ctx); len(expenses) != 0 {
		t.Errorf("failed add must not write, got %+v", expenses)
	}
}

func TestExpenseService_TrackBudget(t *testing.T) {
	tests := []struct {
		name      string
		spent     []string
		budget    string
		remaining string
		over      bool
	}{
		{name: "over budget", spent: []string{"100", "20"}, budget: "100", remaining: "-20", over: true},
		{name: "under budget", spent: []string{"80"}, budget: "100", remaining: "20", over: false},
		{name: "exactly on budget", spent: []string{"50", "50"}, budget: "100", remaining: "0", over: false},
		{name: "empty ledger", budget: "75.25", remaining: "75.25", over: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			var seed []core.Expense
			for _, a := range tt.spent {
				seed = append(seed, core.Expense{Date: "2024-01-01", Category: "misc", Amount: core.MustParseMoney(a)})
			}
			svc := NewExpenseService(memory.NewExpenses(seed...), nil)

			report, err := svc.TrackBudget(ctx, core.MustParseMoney(tt.budget))
			if err != nil {
				t.Fatalf("TrackBudget: %v", err)
			}
			if !report.Remaining.Equal(core.MustParseMoney(tt.remaining)) {
				t.Errorf("Remaining = %s, want %s", report.Remaining, tt.remaining)
			}
			if report.OverBudget != tt.over {
				t.Errorf("OverBudget = %v, want %v", report.OverBudget, tt.over)
			}
		})
	}
}
