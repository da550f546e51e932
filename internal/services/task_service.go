package services

import (
	"context"
	"errors"
	"fmt"

	"daybook/internal/core"
	"daybook/internal/ledger"
	"daybook/internal/log"
)

// TaskService manages a user's task list. Every call names the owning user.
type TaskService struct {
	store  ledger.TaskStore
	logger *log.Logger
}

func NewTaskService(store ledger.TaskStore, logger *log.Logger) *TaskService {
	if logger == nil {
		logger = log.Discard()
	}
	return &TaskService{
		store:  store,
		logger: logger.WithComponent(log.ComponentTasks),
	}
}

// Add creates a pending task for username.
func (s *TaskService) Add(ctx context.Context, username, description string) (core.Task, error) {
	if err := core.NewTask(0, description).Validate(); err != nil {
		return core.Task{}, err
	}

	task, err := s.store.Add(ctx, username, description)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to add task",
			log.NewFields().WithOperation(log.OpCreate).WithUsername(username).
				WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return core.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.logger.InfoContext(ctx, "Task added",
		log.NewFields().WithOperation(log.OpCreate).WithUsername(username).WithTaskID(task.ID).ToSlice()...)
	return task, nil
}

// List returns the user's tasks in insertion order.
func (s *TaskService) List(ctx context.Context, username string) ([]core.Task, error) {
	tasks, err := s.store.List(ctx, username)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list tasks",
			log.NewFields().WithOperation(log.OpList).WithUsername(username).
				WithError(err, log.ErrorTypeStorage).ToSlice()...)
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	s.logger.DebugContext(ctx, "Tasks listed",
		log.FieldUsername, username, log.FieldTaskCount, len(tasks))
	return tasks, nil
}

// Complete marks the user's first task with id as completed.
func (s *TaskService) Complete(ctx context.Context, username string, id int) (core.Task, error) {
	task, err := s.store.Complete(ctx, username, id)
	if err != nil {
		return core.Task{}, s.mutationError(ctx, log.OpComplete, username, id, err)
	}

	s.logger.InfoContext(ctx, "Task completed",
		log.NewFields().WithOperation(log.OpComplete).WithUsername(username).WithTaskID(id).ToSlice()...)
	return task, nil
}

// Delete removes the user's first task with id.
func (s *TaskService) Delete(ctx context.Context, username string, id int) error {
	if err := s.store.Delete(ctx, username, id); err != nil {
		return s.mutationError(ctx, log.OpDelete, username, id, err)
	}

	s.logger.InfoContext(ctx, "Task deleted",
		log.NewFields().WithOperation(log.OpDelete).WithUsername(username).WithTaskID(id).ToSlice()...)
	return nil
}

func (s *TaskService) mutationError(ctx context.Context, op, username string, id int, err error) error {
	fields := log.NewFields().WithOperation(op).WithUsername(username).WithTaskID(id)
	if errors.Is(err, core.ErrNotFound) {
		s.logger.WarnContext(ctx, "Task not found",
			fields.WithError(err, log.ErrorTypeNotFound).ToSlice()...)
		return err
	}
	s.logger.ErrorContext(ctx, "Failed to update task",
		fields.WithError(err, log.ErrorTypeStorage).ToSlice()...)
	return fmt.Errorf("%s task: %w", op, err)
}
