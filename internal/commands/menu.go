package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"daybook/internal/cli"
	"daybook/internal/log"
	"daybook/internal/menu"
)

// menuCmd runs the interactive session.
type menuCmd struct {
	io IO
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "start the interactive task and budget menu (default)" }
func (*menuCmd) Usage() string {
	return `daybook [menu]

  Log in or register, then manage your tasks and the shared expense ledger.
  Ctrl-D or Ctrl-C ends the session.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(c.io.Err, "menu takes no arguments\n")
		return subcommands.ExitUsageError
	}

	a, err := bootstrap(ctx, c.io)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error starting daybook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	ctx, stop := cli.GracefulShutdown(ctx, a.logger)
	defer stop()

	a.logger.InfoContext(ctx, "Starting interactive session",
		log.FieldOperation, log.OpStartup, log.FieldBackend, a.cfg.DataBackend)

	m := menu.New(c.io.In, c.io.Out, a.svc,
		menu.WithCurrency(a.cfg.Currency),
		menu.WithLogger(a.logger))
	if err := m.Run(ctx); err != nil {
		fmt.Fprintf(c.io.Err, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
