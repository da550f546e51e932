package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"daybook/internal/core"
	"daybook/internal/render"
)

// renderFlags are shared by the report commands.
type renderFlags struct {
	raw   bool
	style string
	width int
}

func (r *renderFlags) set(f *flag.FlagSet) {
	f.BoolVar(&r.raw, "raw", false, "Print the markdown source instead of rendering it.")
	f.StringVar(&r.style, "style", render.DefaultStyle, "Glamour style for terminal output (notty, ascii, dark, light).")
	f.IntVar(&r.width, "width", 80, "Wrap rendered output at this width; 0 disables wrapping.")
}

// expensesCmd prints the expense ledger.
type expensesCmd struct {
	io IO
	renderFlags
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "display the expense ledger" }
func (*expensesCmd) Usage() string {
	return `daybook expenses [-raw] [-style <style>] [-width <n>]

  Displays every recorded expense, a per-category breakdown and the total.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) { c.renderFlags.set(f) }

func (c *expensesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(c.io.Err, "expenses takes no arguments\n")
		return subcommands.ExitUsageError
	}

	a, err := bootstrap(ctx, c.io)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error starting daybook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	expenses, err := a.svc.Expenses.List(ctx)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error reading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := render.New(a.cfg.Currency).ExpensesMarkdown(render.NewExpenseReport(expenses))
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error rendering expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printMarkdown(c.io.Out, md, c.raw, c.style, c.width); err != nil {
		fmt.Fprintf(c.io.Err, "Error displaying expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// budgetCmd evaluates a monthly budget against the ledger total.
type budgetCmd struct {
	io     IO
	amount string
	renderFlags
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "compare a monthly budget with total expenses" }
func (*budgetCmd) Usage() string {
	return `daybook budget -amount <n> [-raw] [-style <style>] [-width <n>]

  Shows how much of the budget is left, or by how much it is exceeded.
  The budget is not stored.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Monthly budget to compare against, e.g. 1500 or 1500.50.")
	c.renderFlags.set(f)
}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintf(c.io.Err, "budget requires -amount\n")
		return subcommands.ExitUsageError
	}
	budget, err := core.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := bootstrap(ctx, c.io)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error starting daybook: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.close()

	report, err := a.svc.Expenses.TrackBudget(ctx, budget)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error reading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	md, err := render.New(a.cfg.Currency).BudgetMarkdown(report)
	if err != nil {
		fmt.Fprintf(c.io.Err, "Error rendering budget: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printMarkdown(c.io.Out, md, c.raw, c.style, c.width); err != nil {
		fmt.Fprintf(c.io.Err, "Error displaying budget: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
