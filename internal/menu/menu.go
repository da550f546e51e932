// Package menu runs the interactive, line-based session: the main menu, the
// per-user session menu, the task manager and the budget tracker.
package menu

import (
	"context"
	"errors"
	"io"
	"strings"

	"daybook/internal/core"
	"daybook/internal/log"
	"daybook/internal/services"
	"daybook/internal/trace"
)

// Services are the operations the menu drives.
type Services struct {
	Accounts *services.AccountService
	Tasks    *services.TaskService
	Expenses *services.ExpenseService
}

// Menu is one interactive session over an input and an output stream.
type Menu struct {
	prompt   *Prompter
	svc      Services
	currency string
	logger   *log.Logger
	session  *trace.Session
}

// Option configures a Menu.
type Option func(*Menu)

// WithCurrency sets the currency used to display amounts.
func WithCurrency(code string) Option {
	return func(m *Menu) { m.currency = code }
}

// WithLogger sets the menu's logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Menu) { m.logger = logger.WithComponent(log.ComponentMenu) }
}

func New(in io.Reader, out io.Writer, svc Services, opts ...Option) *Menu {
	m := &Menu{
		prompt:   NewPrompter(in, out),
		svc:      svc,
		currency: core.DefaultCurrency,
		logger:   log.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the main menu until the user exits, input ends or ctx is
// cancelled. All three are a normal end of session and return nil.
func (m *Menu) Run(ctx context.Context) error {
	defer m.prompt.Close()

	ctx, m.session = trace.StartSession(ctx)
	m.logger.InfoContext(ctx, "Session started", log.FieldOperation, log.OpStartup)

	err := m.mainMenu(ctx)
	reason := "exit"
	if isQuit(err) {
		reason = err.Error()
		m.prompt.Println()
		m.prompt.Println(msgGoodbye)
		err = nil
	}
	m.logger.InfoContext(ctx, "Session ended",
		append([]any{log.FieldOperation, log.OpShutdown, "reason", reason}, m.session.LogAttrs()...)...)
	return err
}

func (m *Menu) mainMenu(ctx context.Context) error {
	for {
		choice, err := m.choose(ctx, mainMenuTitle, mainMenuItems)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			username, err := m.login(ctx)
			if err != nil {
				return err
			}
			if username != "" {
				if err := m.sessionMenu(ctx, username); err != nil {
					return err
				}
			}
		case "2":
			if err := m.register(ctx); err != nil {
				return err
			}
		case "3":
			m.prompt.Println(msgGoodbye)
			return nil
		default:
			m.prompt.Println(msgInvalidChoice)
		}
	}
}

func (m *Menu) sessionMenu(ctx context.Context, username string) error {
	for {
		choice, err := m.choose(ctx, sessionMenuTitle, sessionMenuItems)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := m.taskMenu(ctx, username); err != nil {
				return err
			}
		case "2":
			if err := m.budgetMenu(ctx); err != nil {
				return err
			}
		case "3":
			m.prompt.Println(msgLoggingOut)
			return nil
		default:
			m.prompt.Println(msgInvalidOption)
		}
	}
}

// choose prints a menu and reads the user's choice.
func (m *Menu) choose(ctx context.Context, title string, items []string) (string, error) {
	m.prompt.Println()
	m.prompt.Println(title)
	for _, item := range items {
		m.prompt.Println(item)
	}
	choice, err := m.prompt.Ask(ctx, promptChoice)
	if err != nil {
		return "", err
	}
	m.session.Action()
	return strings.TrimSpace(choice), nil
}

// report prints the message for a failed operation; unavailable is shown for
// storage failures. The session continues either way.
func (m *Menu) report(err error, unavailable string) {
	switch {
	case errors.Is(err, core.ErrStorageUnavailable):
		m.prompt.Println(unavailable)
	default:
		m.prompt.Printf(msgUnexpected, err)
	}
}

// isQuit reports whether err ends the whole session rather than one action.
func isQuit(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
