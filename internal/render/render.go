// Package render turns expense and budget data into markdown reports and
// displays them in the terminal.
package render

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"daybook/internal/core"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// DefaultStyle is the glamour style used when none is requested. It emits no
// colour codes, so output stays readable when piped.
const DefaultStyle = "notty"

// ExpenseReport is the data behind the expense listing.
type ExpenseReport struct {
	Expenses   []core.Expense
	Categories []core.CategoryAmount
	Total      core.Money
}

// NewExpenseReport derives the per-category breakdown and the total.
func NewExpenseReport(expenses []core.Expense) ExpenseReport {
	return ExpenseReport{
		Expenses:   expenses,
		Categories: core.ByCategory(expenses),
		Total:      core.TotalExpenses(expenses),
	}
}

// Renderer renders reports with amounts formatted in one currency.
type Renderer struct {
	currency string
}

func New(currency string) *Renderer {
	if currency == "" {
		currency = core.DefaultCurrency
	}
	return &Renderer{currency: currency}
}

// ExpensesMarkdown renders the expense listing.
func (r *Renderer) ExpensesMarkdown(report ExpenseReport) (string, error) {
	partials := map[string]string{
		"expenses_by_category": "expenses_by_category.md",
	}
	return r.renderTemplate("expenses", "expenses.md", partials, report)
}

// BudgetMarkdown renders a budget report.
func (r *Renderer) BudgetMarkdown(report core.BudgetReport) (string, error) {
	return r.renderTemplate("budget", "budget.md", nil, report)
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(m core.Money) string { return m.Format(r.currency) },
		"cell":  escapeCell,
	}
}

// renderTemplate parses a main template plus its partials and executes it.
func (r *Renderer) renderTemplate(templateName, mainFile string, partials map[string]string, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return "", fmt.Errorf("read template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(r.funcs()).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return "", fmt.Errorf("read partial %q: %w", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("parse partial %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("execute template %q: %w", templateName, err)
	}
	return b.String(), nil
}

// Terminal renders markdown for display with the named glamour style
// ("notty", "ascii", "dark", "light", ...). A width of zero disables wrapping.
func Terminal(markdown, style string, width int) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// escapeCell keeps free text from breaking a markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
