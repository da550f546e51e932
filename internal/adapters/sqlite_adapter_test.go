package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"daybook/internal/core"
	"daybook/internal/storage"
)

func newTestAdapter(t *testing.T, path string) *SQLiteAdapter {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	a := NewSQLiteAdapter(repo, core.NewPasswordHasher(bcrypt.MinCost))
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSQLiteCredentials(t *testing.T) {
	ctx := context.Background()
	creds := newTestAdapter(t, filepath.Join(t.TempDir(), "db.sqlite")).Credentials()

	if _, err := creds.Register(ctx, "alice", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := creds.Register(ctx, "alice", "pw2"); !errors.Is(err, core.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if _, err := creds.Register(ctx, "a:b", "pw"); !errors.Is(err, core.ErrInvalidUsername) {
		t.Fatalf("expected ErrInvalidUsername, got %v", err)
	}
	if u, err := creds.Authenticate(ctx, "alice", "pw"); err != nil || u != "alice" {
		t.Fatalf("Authenticate = %q, %v", u, err)
	}
	for _, tc := range [][2]string{{"alice", "pw2"}, {"bob", "pw"}} {
		if _, err := creds.Authenticate(ctx, tc[0], tc[1]); !errors.Is(err, core.ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q) expected ErrInvalidCredentials, got %v", tc[0], err)
		}
	}
}

func TestSQLiteTasksMatchFileSemantics(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.sqlite")
	tasks := newTestAdapter(t, path).Tasks()

	empty, err := tasks.List(ctx, "alice")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("fresh List = %#v, %v", empty, err)
	}

	a, _ := tasks.Add(ctx, "alice", "buy milk")
	b, _ := tasks.Add(ctx, "alice", "pay rent")
	if a.ID != 1 || b.ID != 2 || a.Status != core.Pending {
		t.Fatalf("added %+v %+v", a, b)
	}
	if _, err := tasks.Complete(ctx, "alice", 5); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	done, err := tasks.Complete(ctx, "alice", 1)
	if err != nil || done.Status != core.Completed {
		t.Fatalf("Complete = %+v, %v", done, err)
	}
	if err := tasks.Delete(ctx, "alice", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := tasks.Delete(ctx, "alice", 1); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	c, _ := tasks.Add(ctx, "alice", "again")
	if c.ID != 2 {
		t.Fatalf("reused id = %d, want 2", c.ID)
	}

	want, _ := tasks.List(ctx, "alice")
	reopened := newTestAdapter(t, path).Tasks()
	got, err := reopened.List(ctx, "alice")
	if err != nil || !reflect.DeepEqual(got, want) {
		t.Fatalf("reopened List = %+v, %v; want %+v", got, err, want)
	}
}

func TestSQLiteExpenses(t *testing.T) {
	ctx := context.Background()
	expenses := newTestAdapter(t, filepath.Join(t.TempDir(), "db.sqlite")).Expenses()

	total, err := expenses.Total(ctx)
	if err != nil || !total.IsZero() {
		t.Fatalf("fresh Total = %s, %v", total, err)
	}
	for _, e := range []core.Expense{
		{Date: "2024-01-01", Category: "food", Amount: core.MustParseMoney("12.50"), Description: "lunch"},
		{Date: "2024-01-02", Category: "transit", Amount: core.MustParseMoney("3.00"), Description: "bus"},
	} {
		if err := expenses.Add(ctx, e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	total, err = expenses.Total(ctx)
	if err != nil || !total.Equal(core.MustParseMoney("15.50")) {
		t.Fatalf("Total = %s, %v", total, err)
	}
	list, _ := expenses.List(ctx)
	if len(list) != 2 || list[0].Description != "lunch" || list[1].Category != "transit" {
		t.Fatalf("List = %+v", list)
	}
}
