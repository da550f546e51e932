package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"daybook/internal/adapters"
	"daybook/internal/core"
	"daybook/internal/ledger/file"
	"daybook/internal/ledger/memory"
	"daybook/internal/log"
	"daybook/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	hasher := core.NewPasswordHasher(config.BcryptCost)

	switch config.Type {
	case FileBackend:
		return f.createFileBackend(ctx, config, hasher)
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config, hasher)
	case MemoryBackend:
		return f.createMemoryBackend(ctx, hasher)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createFileBackend(ctx context.Context, config Config, hasher core.PasswordHasher) (*BackendResult, error) {
	for _, p := range []string{config.UsersPath, config.TasksPath, config.ExpensesPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create data directory: %w", core.ErrStorageUnavailable, err)
		}
	}

	f.logger.InfoContext(ctx, "Initialized file backend",
		log.FieldBackend, FileBackend,
		"users_path", config.UsersPath,
		"tasks_path", config.TasksPath,
		"expenses_path", config.ExpensesPath)

	return &BackendResult{
		Backend: stores{
			credentials: file.NewCredentials(config.UsersPath, hasher),
			tasks:       file.NewTasks(config.TasksPath),
			expenses:    file.NewExpenses(config.ExpensesPath),
		},
		Cleanup: nil, // Every write is flushed immediately
	}, nil
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config, hasher core.PasswordHasher) (*BackendResult, error) {
	sqliteRepo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	adapter := adapters.NewSQLiteAdapter(sqliteRepo, hasher)

	f.logger.InfoContext(ctx, "Initialized SQLite backend",
		log.FieldBackend, SQLiteBackend,
		"db_path", config.SQLiteDBPath)

	return &BackendResult{
		Backend: adapter,
		Cleanup: adapter.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(ctx context.Context, hasher core.PasswordHasher) (*BackendResult, error) {
	f.logger.InfoContext(ctx, "Initialized memory backend", log.FieldBackend, MemoryBackend)

	return &BackendResult{
		Backend: stores{
			credentials: memory.NewCredentials(hasher),
			tasks:       memory.NewTasks(),
			expenses:    memory.NewExpenses(),
		},
		Cleanup: nil, // Nothing outlives the process
	}, nil
}
