package adapters

import (
	"context"
	"errors"
	"fmt"

	"daybook/internal/core"
	"daybook/internal/ledger"
	"daybook/internal/storage"
)

// SQLiteAdapter adapts SQLiteRepository to the ledger ports so the services
// and the menu work unchanged on the sqlite backend.
type SQLiteAdapter struct {
	storage *storage.SQLiteRepository
	hasher  core.PasswordHasher
}

func NewSQLiteAdapter(storage *storage.SQLiteRepository, hasher core.PasswordHasher) *SQLiteAdapter {
	return &SQLiteAdapter{
		storage: storage,
		hasher:  hasher,
	}
}

// Credentials returns the adapter's ledger.CredentialStore.
func (a *SQLiteAdapter) Credentials() ledger.CredentialStore { return sqliteCredentials{a} }

// Tasks returns the adapter's ledger.TaskStore.
func (a *SQLiteAdapter) Tasks() ledger.TaskStore { return sqliteTasks{a} }

// Expenses returns the adapter's ledger.ExpenseLedger.
func (a *SQLiteAdapter) Expenses() ledger.ExpenseLedger { return sqliteExpenses{a} }

// Close closes the underlying database.
func (a *SQLiteAdapter) Close() error {
	return a.storage.Close()
}

type sqliteCredentials struct{ a *SQLiteAdapter }

// Exists implements ledger.CredentialStore
func (c sqliteCredentials) Exists(ctx context.Context, username string) (bool, error) {
	ok, err := c.a.storage.UserExists(ctx, username)
	if err != nil {
		return false, unavailable(err)
	}
	return ok, nil
}

// Register implements ledger.CredentialStore
func (c sqliteCredentials) Register(ctx context.Context, username, password string) (string, error) {
	if err := core.ValidateUsername(username); err != nil {
		return "", err
	}
	exists, err := c.Exists(ctx, username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", core.ErrAlreadyExists
	}
	hash, err := c.a.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	if err := c.a.storage.CreateUser(ctx, username, hash); err != nil {
		return "", unavailable(err)
	}
	return username, nil
}

// Authenticate implements ledger.CredentialStore
func (c sqliteCredentials) Authenticate(ctx context.Context, username, password string) (string, error) {
	hashes, err := c.a.storage.UserHashes(ctx, username)
	if err != nil {
		return "", unavailable(err)
	}
	for _, h := range hashes {
		if c.a.hasher.Verify(h, password) {
			return username, nil
		}
	}
	return "", core.ErrInvalidCredentials
}

type sqliteTasks struct{ a *SQLiteAdapter }

// Add implements ledger.TaskStore
func (t sqliteTasks) Add(ctx context.Context, username, description string) (core.Task, error) {
	row, err := t.a.storage.AddTask(ctx, username, description, string(core.Pending))
	if err != nil {
		return core.Task{}, unavailable(err)
	}
	return toTask(row), nil
}

// List implements ledger.TaskStore
func (t sqliteTasks) List(ctx context.Context, username string) ([]core.Task, error) {
	rows, err := t.a.storage.ListTasks(ctx, username)
	if err != nil {
		return nil, unavailable(err)
	}
	tasks := make([]core.Task, len(rows))
	for i, r := range rows {
		tasks[i] = toTask(r)
	}
	return tasks, nil
}

// Complete implements ledger.TaskStore
func (t sqliteTasks) Complete(ctx context.Context, username string, id int) (core.Task, error) {
	row, err := t.a.storage.SetTaskStatus(ctx, username, int64(id), string(core.Completed))
	if errors.Is(err, storage.ErrNoRows) {
		return core.Task{}, core.ErrNotFound
	}
	if err != nil {
		return core.Task{}, unavailable(err)
	}
	return toTask(row), nil
}

// Delete implements ledger.TaskStore
func (t sqliteTasks) Delete(ctx context.Context, username string, id int) error {
	err := t.a.storage.DeleteTask(ctx, username, int64(id))
	if errors.Is(err, storage.ErrNoRows) {
		return core.ErrNotFound
	}
	if err != nil {
		return unavailable(err)
	}
	return nil
}

type sqliteExpenses struct{ a *SQLiteAdapter }

// Add implements ledger.ExpenseLedger
func (e sqliteExpenses) Add(ctx context.Context, x core.Expense) error {
	err := e.a.storage.AppendExpense(ctx, storage.Expense{
		Date:        x.Date,
		Category:    x.Category,
		Amount:      x.Amount.String(),
		Description: x.Description,
	})
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// List implements ledger.ExpenseLedger
func (e sqliteExpenses) List(ctx context.Context) ([]core.Expense, error) {
	rows, err := e.a.storage.ListExpenses(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	expenses := make([]core.Expense, len(rows))
	for i, r := range rows {
		amount, err := core.ParseMoney(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", r.ID, err)
		}
		expenses[i] = core.Expense{
			Date:        r.Date,
			Category:    r.Category,
			Amount:      amount,
			Description: r.Description,
		}
	}
	return expenses, nil
}

// Total implements ledger.ExpenseLedger
func (e sqliteExpenses) Total(ctx context.Context) (core.Money, error) {
	expenses, err := e.List(ctx)
	if err != nil {
		return core.Money{}, err
	}
	return core.TotalExpenses(expenses), nil
}

func toTask(r storage.Task) core.Task {
	return core.Task{
		ID:          int(r.TaskID),
		Description: r.Description,
		Status:      core.TaskStatus(r.Status),
	}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
}
