package core

import "testing"

func TestEvaluateBudget(t *testing.T) {
	cases := []struct {
		budget, spent string
		remaining     string
		over          bool
	}{
		{"100", "120", "-20", true},
		{"100", "80", "20", false},
		{"100", "100", "0", false},
		{"0", "0", "0", false},
	}
	for _, tc := range cases {
		r := EvaluateBudget(MustParseMoney(tc.budget), MustParseMoney(tc.spent))
		if !r.Remaining.Equal(MustParseMoney(tc.remaining)) || r.OverBudget != tc.over {
			t.Fatalf("EvaluateBudget(%s, %s) = %s/%v, want %s/%v",
				tc.budget, tc.spent, r.Remaining, r.OverBudget, tc.remaining, tc.over)
		}
	}
}

func TestTotalExpenses(t *testing.T) {
	expenses := []Expense{
		{Date: "2024-01-01", Category: "food", Amount: MustParseMoney("12.50"), Description: "lunch"},
		{Date: "2024-01-02", Category: "transit", Amount: MustParseMoney("3.00"), Description: "bus"},
	}
	if got := TotalExpenses(expenses); !got.Equal(MustParseMoney("15.50")) {
		t.Fatalf("total = %s, want 15.50", got)
	}
	if got := TotalExpenses(nil); !got.IsZero() {
		t.Fatalf("empty total = %s, want 0", got)
	}
}

func TestByCategory(t *testing.T) {
	expenses := []Expense{
		{Category: "food", Amount: MustParseMoney("10")},
		{Category: "transit", Amount: MustParseMoney("3")},
		{Category: "food", Amount: MustParseMoney("2.5")},
	}
	got := ByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got[0].Name != "food" || !got[0].Amount.Equal(MustParseMoney("12.5")) {
		t.Fatalf("unexpected first category: %+v", got[0])
	}
	if got[1].Name != "transit" || !got[1].Amount.Equal(MustParseMoney("3")) {
		t.Fatalf("unexpected second category: %+v", got[1])
	}
}
