package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"daybook/internal/core"
)

// Tasks stores every user's task list in one JSON document keyed by username.
type Tasks struct {
	path string
}

type taskDocument map[string][]core.Task

func NewTasks(path string) *Tasks {
	return &Tasks{path: path}
}

// Path returns the document location.
func (s *Tasks) Path() string { return s.path }

// Add implements ledger.TaskStore.
func (s *Tasks) Add(_ context.Context, username, description string) (core.Task, error) {
	doc, err := s.load()
	if err != nil {
		return core.Task{}, err
	}
	task := core.NewTask(core.NextTaskID(doc[username]), description)
	doc[username] = append(doc[username], task)
	if err := s.save(doc); err != nil {
		return core.Task{}, err
	}
	return task, nil
}

// List implements ledger.TaskStore.
func (s *Tasks) List(_ context.Context, username string) ([]core.Task, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return append([]core.Task{}, doc[username]...), nil
}

// Complete implements ledger.TaskStore.
func (s *Tasks) Complete(_ context.Context, username string, id int) (core.Task, error) {
	doc, err := s.load()
	if err != nil {
		return core.Task{}, err
	}
	tasks := doc[username]
	i := core.IndexOfTask(tasks, id)
	if i < 0 {
		return core.Task{}, core.ErrNotFound
	}
	tasks[i].Status = core.Completed
	if err := s.save(doc); err != nil {
		return core.Task{}, err
	}
	return tasks[i], nil
}

// Delete implements ledger.TaskStore.
func (s *Tasks) Delete(_ context.Context, username string, id int) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	tasks := doc[username]
	i := core.IndexOfTask(tasks, id)
	if i < 0 {
		return core.ErrNotFound
	}
	doc[username] = slices.Delete(tasks, i, i+1)
	return s.save(doc)
}

func (s *Tasks) load() (taskDocument, error) {
	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	doc := taskDocument{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, storageError("decode", s.path, err)
	}
	// A bare null decodes into a nil map.
	if doc == nil {
		doc = taskDocument{}
	}
	return doc, nil
}

func (s *Tasks) save(doc taskDocument) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return writeFile(s.path, append(data, '\n'), 0o644)
}
