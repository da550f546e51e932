package backend

import (
	"context"

	"daybook/internal/ledger"
)

// Backend groups the three stores a session works against.
type Backend interface {
	Credentials() ledger.CredentialStore
	Tasks() ledger.TaskStore
	Expenses() ledger.ExpenseLedger
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// BackendResult contains the backend instance and optional cleanup function
type BackendResult struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Close runs the cleanup function, if any.
func (r *BackendResult) Close() error {
	if r == nil || r.Cleanup == nil {
		return nil
	}
	return r.Cleanup()
}

// Factory creates backends based on configuration
type Factory interface {
	// CreateBackend creates a backend instance based on the provided config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// File specific
	UsersPath    string
	TasksPath    string
	ExpensesPath string

	// SQLite specific
	SQLiteDBPath string

	// Password hashing, shared by every backend
	BcryptCost int
}

// BackendType represents the type of backend
type BackendType string

const (
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// stores bundles independent store implementations into a Backend.
type stores struct {
	credentials ledger.CredentialStore
	tasks       ledger.TaskStore
	expenses    ledger.ExpenseLedger
}

func (s stores) Credentials() ledger.CredentialStore { return s.credentials }
func (s stores) Tasks() ledger.TaskStore             { return s.tasks }
func (s stores) Expenses() ledger.ExpenseLedger      { return s.expenses }
