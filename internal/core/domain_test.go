package core

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"alice", true},
		{"Alice Smith", true},
		{"", false},
		{"al:ice", false},
		{"alice\n", false},
		{"alice\r", false},
	}
	for _, tc := range cases {
		err := ValidateUsername(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q expected ok, got %v", tc.in, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidUsername) {
			t.Fatalf("%q expected ErrInvalidUsername, got %v", tc.in, err)
		}
	}
}

func TestParseCredential(t *testing.T) {
	cases := []struct {
		line string
		want Credential
		ok   bool
	}{
		{"alice:$2a$04$abc\n", Credential{Username: "alice", PasswordHash: "$2a$04$abc"}, true},
		{"bob:hash\r\n", Credential{Username: "bob", PasswordHash: "hash"}, true},
		{" bob:hash  ", Credential{Username: " bob", PasswordHash: "hash"}, true},
		{"no-delimiter", Credential{}, false},
		{"", Credential{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseCredential(tc.line)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseCredential(%q) = %+v, %v; want %+v, %v", tc.line, got, ok, tc.want, tc.ok)
		}
	}

	c := Credential{Username: "carol", PasswordHash: "h"}
	if back, ok := ParseCredential(c.String()); !ok || back != c {
		t.Fatalf("round trip failed: %+v", back)
	}
}

func TestNextTaskIDIsPositional(t *testing.T) {
	tasks := []Task{NewTask(1, "a"), NewTask(2, "b"), NewTask(3, "c")}
	if got := NextTaskID(tasks); got != 4 {
		t.Fatalf("NextTaskID = %d, want 4", got)
	}
	// Removing id 1 leaves two tasks, so the next id collides with 3.
	tasks = tasks[1:]
	if got := NextTaskID(tasks); got != 3 {
		t.Fatalf("NextTaskID after delete = %d, want 3", got)
	}
	if got := NextTaskID(nil); got != 1 {
		t.Fatalf("NextTaskID(nil) = %d, want 1", got)
	}
}

func TestIndexOfTaskFindsFirstMatch(t *testing.T) {
	tasks := []Task{NewTask(1, "a"), NewTask(2, "b"), NewTask(2, "dup")}
	if got := IndexOfTask(tasks, 2); got != 1 {
		t.Fatalf("IndexOfTask = %d, want 1", got)
	}
	if got := IndexOfTask(tasks, 9); got != -1 {
		t.Fatalf("IndexOfTask missing = %d, want -1", got)
	}
}

func TestParseTaskID(t *testing.T) {
	if id, err := ParseTaskID(" 7 "); err != nil || id != 7 {
		t.Fatalf("ParseTaskID = %d, %v", id, err)
	}
	if _, err := ParseTaskID("seven"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestTaskValidate(t *testing.T) {
	if err := NewTask(1, "buy milk").Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := NewTask(1, "   ").Validate(); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}
