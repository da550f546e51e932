package file

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"daybook/internal/core"
)

const expenseFields = 4

// Expenses stores the shared expense ledger as CSV rows of
// date,category,amount,description with no header.
type Expenses struct {
	path string
}

func NewExpenses(path string) *Expenses {
	return &Expenses{path: path}
}

// Path returns the ledger location.
func (s *Expenses) Path() string { return s.path }

// Add implements ledger.ExpenseLedger.
func (s *Expenses) Add(_ context.Context, e core.Expense) error {
	expenses, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(expenses, e))
}

// List implements ledger.ExpenseLedger.
func (s *Expenses) List(_ context.Context) ([]core.Expense, error) {
	expenses, err := s.load()
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return expenses, nil
}

// Total implements ledger.ExpenseLedger.
func (s *Expenses) Total(ctx context.Context) (core.Money, error) {
	expenses, err := s.List(ctx)
	if err != nil {
		return core.Money{}, err
	}
	return core.TotalExpenses(expenses), nil
}

func (s *Expenses) load() ([]core.Expense, error) {
	data, err := readFile(s.path)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, storageError("decode", s.path, err)
	}

	out := make([]core.Expense, 0, len(rows))
	for i, row := range rows {
		e, err := decodeExpense(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", s.path, i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Expenses) save(expenses []core.Expense) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, e := range expenses {
		if err := w.Write(encodeExpense(e)); err != nil {
			return fmt.Errorf("encode expenses: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	return writeFile(s.path, buf.Bytes(), 0o644)
}

func encodeExpense(e core.Expense) []string {
	return []string{e.Date, e.Category, e.Amount.String(), e.Description}
}

func decodeExpense(row []string) (core.Expense, error) {
	if len(row) != expenseFields {
		return core.Expense{}, fmt.Errorf("%w: expected %d fields, got %d", core.ErrParse, expenseFields, len(row))
	}
	amount, err := core.ParseMoney(row[2])
	if err != nil {
		return core.Expense{}, err
	}
	return core.Expense{
		Date:        row[0],
		Category:    row[1],
		Amount:      amount,
		Description: row[3],
	}, nil
}
