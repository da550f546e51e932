package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"daybook/internal/core"
)

func newTestTasks(t *testing.T) *Tasks {
	t.Helper()
	return NewTasks(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestTasksFreshStoreIsEmpty(t *testing.T) {
	s := newTestTasks(t)
	tasks, err := s.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", tasks)
	}
}

func TestTasksAddAssignsPositionalIDs(t *testing.T) {
	s := newTestTasks(t)
	ctx := context.Background()

	t1, err := s.Add(ctx, "alice", "buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	t2, err := s.Add(ctx, "alice", "pay rent")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if t1.ID != 1 || t2.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", t1.ID, t2.ID)
	}
	if t1.Status != core.Pending {
		t.Fatalf("new task status = %q", t1.Status)
	}

	// Lists are per user.
	b1, err := s.Add(ctx, "bob", "walk dog")
	if err != nil || b1.ID != 1 {
		t.Fatalf("bob first task = %+v, %v", b1, err)
	}
}

func TestTasksRoundTripThroughFreshStore(t *testing.T) {
	s := newTestTasks(t)
	ctx := context.Background()

	var want []core.Task
	for _, d := range []string{"one", "two", "three", "four"} {
		task, err := s.Add(ctx, "alice", d)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		want = append(want, task)
	}
	done, err := s.Complete(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	want[1] = done

	fresh := NewTasks(s.Path())
	got, err := fresh.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestTasksComplete(t *testing.T) {
	s := newTestTasks(t)
	ctx := context.Background()
	if _, err := s.Add(ctx, "alice", "buy milk"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	task, err := s.Complete(ctx, "alice", 1)
	if err != nil || task.Status != core.Completed {
		t.Fatalf("Complete = %+v, %v", task, err)
	}

	before, _ := os.ReadFile(s.Path())
	if _, err := s.Complete(ctx, "alice", 42); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Complete(ctx, "nobody", 1); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for user without tasks, got %v", err)
	}
	after, _ := os.ReadFile(s.Path())
	if string(before) != string(after) {
		t.Fatalf("store modified by failed completion")
	}
}

func TestTasksDeleteThenAddReusesID(t *testing.T) {
	s := newTestTasks(t)
	ctx := context.Background()
	for _, d := range []string{"a", "b", "c"} {
		if _, err := s.Add(ctx, "alice", d); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	if err := s.Delete(ctx, "alice", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "alice", 1); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second delete expected ErrNotFound, got %v", err)
	}

	// Two tasks remain (ids 2 and 3), so the positional counter hands out 3 again.
	task, err := s.Add(ctx, "alice", "d")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.ID != 3 {
		t.Fatalf("reused id = %d, want 3", task.ID)
	}
	tasks, _ := s.List(ctx, "alice")
	ids := []int{}
	for _, tk := range tasks {
		ids = append(ids, tk.ID)
	}
	if !reflect.DeepEqual(ids, []int{2, 3, 3}) {
		t.Fatalf("ids = %v, want [2 3 3]", ids)
	}

	// With duplicate ids the first match wins.
	done, err := s.Complete(ctx, "alice", 3)
	if err != nil || done.Description != "c" {
		t.Fatalf("Complete duplicate = %+v, %v", done, err)
	}
}

func TestTasksDocumentFormat(t *testing.T) {
	s := newTestTasks(t)
	if _, err := s.Add(context.Background(), "alice", "buy milk"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n    \"alice\": [\n        {\n            \"task_id\": 1,\n            \"description\": \"buy milk\",\n            \"status\": \"Pending\"\n        }\n    ]\n}\n"
	if string(data) != want {
		t.Fatalf("document = %q\nwant %q", data, want)
	}
}

func TestTasksReadsExistingDocument(t *testing.T) {
	s := newTestTasks(t)
	doc := `{"alice": [{"task_id": 1, "description": "x", "status": "Completed"}]}`
	if err := os.WriteFile(s.Path(), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tasks, err := s.List(context.Background(), "alice")
	if err != nil || len(tasks) != 1 || tasks[0].Status != core.Completed {
		t.Fatalf("List = %+v, %v", tasks, err)
	}
}

func TestTasksCorruptDocument(t *testing.T) {
	s := newTestTasks(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.List(context.Background(), "alice"); !errors.Is(err, core.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := s.Add(context.Background(), "alice", "x"); !errors.Is(err, core.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	data, _ := os.ReadFile(s.Path())
	if string(data) != "{not json" {
		t.Fatalf("failed mutation must leave the file unchanged")
	}
}

func TestTasksNullDocument(t *testing.T) {
	s := newTestTasks(t)
	ctx := context.Background()
	if err := os.WriteFile(s.Path(), []byte("null\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if tasks, err := s.List(ctx, "alice"); err != nil || len(tasks) != 0 {
		t.Fatalf("List = %v, %v", tasks, err)
	}
	task, err := s.Add(ctx, "alice", "x")
	if err != nil || task.ID != 1 {
		t.Fatalf("Add = %+v, %v", task, err)
	}
	if tasks, err := s.List(ctx, "alice"); err != nil || len(tasks) != 1 {
		t.Fatalf("List after add = %v, %v", tasks, err)
	}
}
