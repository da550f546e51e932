// Package ledger declares the storage ports every backend implements. The
// session layer supplies the username explicitly on every call; no port holds
// a notion of the current user.
package ledger

import (
	"context"

	"daybook/internal/core"
)

// Ports for storage backends.
type (
	// CredentialStore is the append-only username:hash ledger.
	CredentialStore interface {
		// Exists reports whether a record with exactly this username is stored.
		Exists(ctx context.Context, username string) (bool, error)
		// Register hashes password and appends a record. It fails with
		// core.ErrAlreadyExists when the username is taken.
		Register(ctx context.Context, username, password string) (string, error)
		// Authenticate returns the username when the password verifies, and
		// core.ErrInvalidCredentials for an unknown user or a wrong password.
		Authenticate(ctx context.Context, username, password string) (string, error)
	}

	// TaskStore maps usernames to their ordered task lists.
	TaskStore interface {
		Add(ctx context.Context, username, description string) (core.Task, error)
		List(ctx context.Context, username string) ([]core.Task, error)
		// Complete and Delete fail with core.ErrNotFound when the user has no
		// task with that id.
		Complete(ctx context.Context, username string, id int) (core.Task, error)
		Delete(ctx context.Context, username string, id int) error
	}

	// ExpenseLedger is the expense list shared by all users.
	ExpenseLedger interface {
		Add(ctx context.Context, e core.Expense) error
		List(ctx context.Context) ([]core.Expense, error)
		Total(ctx context.Context) (core.Money, error)
	}
)
