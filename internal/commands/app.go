// Package commands implements the daybook command line: the interactive menu
// and the one-shot report commands.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/time/rate"

	"daybook/internal/backend"
	"daybook/internal/cli"
	"daybook/internal/config"
	"daybook/internal/log"
	"daybook/internal/menu"
	"daybook/internal/render"
	"daybook/internal/services"
)

// IO holds the streams a command reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Stdio returns the process's standard streams.
func Stdio() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// DefaultCommand runs when no command is named.
const DefaultCommand = "menu"

// Register the subcommands.
func Register(c *subcommands.Commander, stdio IO) {
	c.Register(&menuCmd{io: stdio}, "")
	c.Register(&expensesCmd{io: stdio}, "reports")
	c.Register(&budgetCmd{io: stdio}, "reports")
}

// Execute parses args and runs the selected command, defaulting to the
// interactive menu.
func Execute(ctx context.Context, name string, args []string, stdio IO) subcommands.ExitStatus {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stdio.Err)

	commander := subcommands.NewCommander(fs, name)
	commander.Output = stdio.Out
	commander.Error = stdio.Err
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	Register(commander, stdio)

	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	if fs.NArg() == 0 {
		if err := fs.Parse(append(append([]string{}, args...), DefaultCommand)); err != nil {
			return subcommands.ExitUsageError
		}
	}
	return commander.Execute(ctx)
}

// app is what every command needs once the process is bootstrapped.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	backend *backend.BackendResult
	svc     menu.Services
}

func bootstrap(ctx context.Context, stdio IO) (*app, error) {
	cfg, logger, result, err := cli.Bootstrap(ctx, stdio.Err)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		backend: result,
		svc: menu.Services{
			Accounts: services.NewAccountService(result.Backend.Credentials(), logger, accountOptions(cfg)...),
			Tasks:    services.NewTaskService(result.Backend.Tasks(), logger),
			Expenses: services.NewExpenseService(result.Backend.Expenses(), logger),
		},
	}, nil
}

func accountOptions(cfg *config.Config) []services.AccountOption {
	if cfg.LoginAttemptsPerMinute <= 0 {
		return nil
	}
	every := time.Minute / time.Duration(cfg.LoginAttemptsPerMinute)
	return []services.AccountOption{
		services.WithLoginLimiter(rate.NewLimiter(rate.Every(every), cfg.LoginBurst)),
	}
}

func (a *app) close() {
	if err := a.backend.Close(); err != nil {
		a.logger.Error("Failed to close backend", log.FieldOperation, log.OpShutdown, log.FieldError, err)
	}
}

// printMarkdown writes md to w, through glamour unless raw is set.
func printMarkdown(w io.Writer, md string, raw bool, style string, width int) error {
	if raw {
		_, err := fmt.Fprint(w, md)
		return err
	}
	out, err := render.Terminal(md, style, width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
