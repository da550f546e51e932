// Package memory keeps credentials, tasks and expenses in process memory.
// Nothing survives the process; it backs the "memory" data backend and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"daybook/internal/core"
)

type Credentials struct {
	mu      sync.Mutex
	hasher  core.PasswordHasher
	records []core.Credential
}

func NewCredentials(hasher core.PasswordHasher) *Credentials {
	return &Credentials{hasher: hasher}
}

// Exists implements ledger.CredentialStore.
func (s *Credentials) Exists(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exists(username), nil
}

// Register implements ledger.CredentialStore.
func (s *Credentials) Register(_ context.Context, username, password string) (string, error) {
	if err := core.ValidateUsername(username); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exists(username) {
		return "", core.ErrAlreadyExists
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	s.records = append(s.records, core.Credential{Username: username, PasswordHash: hash})
	return username, nil
}

// Authenticate implements ledger.CredentialStore.
func (s *Credentials) Authenticate(_ context.Context, username, password string) (string, error) {
	s.mu.Lock()
	records := append([]core.Credential(nil), s.records...)
	s.mu.Unlock()

	for _, r := range records {
		if r.Username == username && s.hasher.Verify(r.PasswordHash, password) {
			return username, nil
		}
	}
	return "", core.ErrInvalidCredentials
}

func (s *Credentials) exists(username string) bool {
	for _, r := range s.records {
		if r.Username == username {
			return true
		}
	}
	return false
}

type Tasks struct {
	mu    sync.Mutex
	lists map[string][]core.Task
}

func NewTasks() *Tasks {
	return &Tasks{lists: map[string][]core.Task{}}
}

// Add implements ledger.TaskStore.
func (s *Tasks) Add(_ context.Context, username, description string) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := core.NewTask(core.NextTaskID(s.lists[username]), description)
	s.lists[username] = append(s.lists[username], task)
	return task, nil
}

// List implements ledger.TaskStore.
func (s *Tasks) List(_ context.Context, username string) ([]core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Task{}, s.lists[username]...), nil
}

// Complete implements ledger.TaskStore.
func (s *Tasks) Complete(_ context.Context, username string, id int) (core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.lists[username]
	i := core.IndexOfTask(tasks, id)
	if i < 0 {
		return core.Task{}, core.ErrNotFound
	}
	tasks[i].Status = core.Completed
	return tasks[i], nil
}

// Delete implements ledger.TaskStore.
func (s *Tasks) Delete(_ context.Context, username string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.lists[username]
	i := core.IndexOfTask(tasks, id)
	if i < 0 {
		return core.ErrNotFound
	}
	s.lists[username] = slices.Delete(tasks, i, i+1)
	return nil
}

type Expenses struct {
	mu    sync.Mutex
	items []core.Expense
}

// NewExpenses returns a ledger holding the given expenses, in order.
func NewExpenses(seed ...core.Expense) *Expenses {
	return &Expenses{items: append([]core.Expense(nil), seed...)}
}

// Add implements ledger.ExpenseLedger.
func (s *Expenses) Add(_ context.Context, e core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return nil
}

// List implements ledger.ExpenseLedger.
func (s *Expenses) List(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense{}, s.items...), nil
}

// Total implements ledger.ExpenseLedger.
func (s *Expenses) Total(_ context.Context) (core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.TotalExpenses(s.items), nil
}
