package core

import (
	"errors"
	"strconv"
	"strings"
)

const (
	Pending   TaskStatus = "Pending"
	Completed TaskStatus = "Completed"
)

type (
	TaskStatus string

	// Credential is one line of the credential ledger.
	Credential struct {
		Username     string
		PasswordHash string
	}

	Task struct {
		ID          int        `json:"task_id"`
		Description string     `json:"description"`
		Status      TaskStatus `json:"status"`
	}

	Expense struct {
		Date        string // YYYY-MM-DD, not validated
		Category    string
		Amount      Money
		Description string
	}
)

var (
	ErrAlreadyExists      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("task not found")
	ErrParse              = errors.New("parse error")
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrEmptyDescription = errors.New("empty description")
)

// ValidateUsername rejects names the colon-delimited ledger cannot hold.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrInvalidUsername
	}
	if strings.ContainsAny(username, ":\r\n") {
		return ErrInvalidUsername
	}
	return nil
}

// ParseCredential splits a ledger line into a Credential. Only the line
// terminator is stripped, so the username is kept byte for byte; ok is false
// when the line carries no delimiter.
func ParseCredential(line string) (Credential, bool) {
	line = strings.TrimRight(line, "\r\n")
	username, hash, ok := strings.Cut(line, ":")
	if !ok {
		return Credential{}, false
	}
	return Credential{Username: username, PasswordHash: strings.TrimSpace(hash)}, true
}

// String renders the credential as a ledger line, without the newline.
func (c Credential) String() string {
	return c.Username + ":" + c.PasswordHash
}

// NewTask returns a pending task.
func NewTask(id int, description string) Task {
	return Task{ID: id, Description: description, Status: Pending}
}

// NextTaskID is the positional id for the next task in a list: the current
// length plus one. It is not a high-water mark, so ids are reused after a
// deletion.
func NextTaskID(tasks []Task) int {
	return len(tasks) + 1
}

// IndexOfTask returns the index of the first task with the given id, or -1.
func IndexOfTask(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ParseTaskID parses a user-supplied task id.
func ParseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Join(ErrParse, err)
	}
	return id, nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
