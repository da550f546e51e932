package menu

import (
	"context"
	"errors"

	"daybook/internal/core"
)

func (m *Menu) taskMenu(ctx context.Context, username string) error {
	for {
		choice, err := m.choose(ctx, taskMenuTitle, taskMenuItems)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.addTask(ctx, username)
		case "2":
			m.viewTasks(ctx, username)
		case "3":
			err = m.completeTask(ctx, username)
		case "4":
			err = m.deleteTask(ctx, username)
		case "5":
			m.prompt.Println(msgLoggingOut)
			return nil
		default:
			m.prompt.Println(msgInvalidChoice)
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addTask(ctx context.Context, username string) error {
	description, err := m.prompt.Ask(ctx, promptTaskText)
	if err != nil {
		return err
	}

	_, err = m.svc.Tasks.Add(ctx, username, description)
	switch {
	case err == nil:
		m.prompt.Println(msgTaskAdded)
	case errors.Is(err, core.ErrEmptyDescription):
		m.prompt.Println(msgEmptyDescription)
	default:
		m.report(err, msgNotSaved)
	}
	return nil
}

func (m *Menu) viewTasks(ctx context.Context, username string) {
	tasks, err := m.svc.Tasks.List(ctx, username)
	if err != nil {
		m.report(err, msgNotLoaded)
		return
	}
	if len(tasks) == 0 {
		m.prompt.Println(msgNoTasks)
		return
	}
	for _, t := range tasks {
		m.prompt.Printf(msgTaskLine, t.ID, t.Description, t.Status)
	}
}

func (m *Menu) completeTask(ctx context.Context, username string) error {
	id, ok, err := m.askTaskID(ctx, promptCompleteID)
	if err != nil || !ok {
		return err
	}

	_, err = m.svc.Tasks.Complete(ctx, username, id)
	m.taskOutcome(err, msgTaskCompleted)
	return nil
}

func (m *Menu) deleteTask(ctx context.Context, username string) error {
	id, ok, err := m.askTaskID(ctx, promptDeleteID)
	if err != nil || !ok {
		return err
	}

	err = m.svc.Tasks.Delete(ctx, username, id)
	m.taskOutcome(err, msgTaskDeleted)
	return nil
}

// askTaskID reads a task id. ok is false when the input was not a number;
// the user has already been told.
func (m *Menu) askTaskID(ctx context.Context, prompt string) (int, bool, error) {
	text, err := m.prompt.Ask(ctx, prompt)
	if err != nil {
		return 0, false, err
	}
	id, err := core.ParseTaskID(text)
	if err != nil {
		m.prompt.Println(msgInvalidTaskID)
		return 0, false, nil
	}
	return id, true, nil
}

func (m *Menu) taskOutcome(err error, success string) {
	switch {
	case err == nil:
		m.prompt.Println(success)
	case errors.Is(err, core.ErrNotFound):
		m.prompt.Println(msgTaskNotFound)
	default:
		m.report(err, msgNotSaved)
	}
}
