package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoRows is returned when a lookup matches nothing.
var ErrNoRows = sql.ErrNoRows

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer at a time; the CLI is single-threaded anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{
		db:      db,
		queries: New(db),
	}

	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// UserExists reports whether a user with exactly this name is stored.
func (r *SQLiteRepository) UserExists(ctx context.Context, username string) (bool, error) {
	exists, err := r.queries.UserExists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a credential row. Rows are never updated or deleted.
func (r *SQLiteRepository) CreateUser(ctx context.Context, username, passwordHash string) error {
	if err := r.queries.CreateUser(ctx, CreateUserParams{Username: username, PasswordHash: passwordHash}); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	slog.InfoContext(ctx, "User saved to SQLite", "username", username)
	return nil
}

// UserHashes returns the stored password hashes for username.
func (r *SQLiteRepository) UserHashes(ctx context.Context, username string) ([]string, error) {
	users, err := r.queries.GetUsersByName(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	hashes := make([]string, len(users))
	for i, u := range users {
		hashes[i] = u.PasswordHash
	}
	return hashes, nil
}

// CountUsers returns the number of credential rows.
func (r *SQLiteRepository) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.queries.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// AddTask inserts a task whose task_id is the user's current task count plus
// one. Count and insert run in one transaction.
func (r *SQLiteRepository) AddTask(ctx context.Context, username, description, status string) (Task, error) {
	var task Task
	err := r.withTx(ctx, func(q *Queries) error {
		count, err := q.CountTasks(ctx, username)
		if err != nil {
			return fmt.Errorf("count tasks: %w", err)
		}
		task, err = q.CreateTask(ctx, CreateTaskParams{
			Username:    username,
			TaskID:      count + 1,
			Description: description,
			Status:      status,
		})
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return Task{}, err
	}

	slog.InfoContext(ctx, "Task saved to SQLite",
		"id", task.ID,
		"username", task.Username,
		"task_id", task.TaskID)
	return task, nil
}

// ListTasks returns the user's tasks in insertion order.
func (r *SQLiteRepository) ListTasks(ctx context.Context, username string) ([]Task, error) {
	tasks, err := r.queries.ListTasks(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// SetTaskStatus updates the first task of username with taskID. It returns
// ErrNoRows when there is none.
func (r *SQLiteRepository) SetTaskStatus(ctx context.Context, username string, taskID int64, status string) (Task, error) {
	var task Task
	err := r.withTx(ctx, func(q *Queries) error {
		var err error
		task, err = q.GetFirstTask(ctx, GetFirstTaskParams{Username: username, TaskID: taskID})
		if err != nil {
			return err
		}
		if err := q.UpdateTaskStatus(ctx, UpdateTaskStatusParams{Status: status, ID: task.ID}); err != nil {
			return fmt.Errorf("update task status: %w", err)
		}
		task.Status = status
		return nil
	})
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

// DeleteTask removes the first task of username with taskID. It returns
// ErrNoRows when there is none.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return r.withTx(ctx, func(q *Queries) error {
		task, err := q.GetFirstTask(ctx, GetFirstTaskParams{Username: username, TaskID: taskID})
		if err != nil {
			return err
		}
		if err := q.DeleteTask(ctx, task.ID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}

// AppendExpense inserts an expense row.
func (r *SQLiteRepository) AppendExpense(ctx context.Context, e Expense) error {
	err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
	})
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"date", e.Date,
		"category", e.Category,
		"amount", e.Amount)
	return nil
}

// ListExpenses returns all expenses in insertion order.
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]Expense, error) {
	expenses, err := r.queries.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

func (r *SQLiteRepository) withTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(r.queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.ErrorContext(ctx, "Rollback failed", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
