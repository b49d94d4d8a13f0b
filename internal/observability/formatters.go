// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/accounts"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens line to the box's inner width, counting runes.
func truncate(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		return string(runes[:boxWidth-7]) + "..."
	}
	return line
}

// PrintAccount outputs the account header: display name, greeting, theme
// and session state. The password is never printed.
func (p *Printer) PrintAccount(id string, rec *types.AccountRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Signed in as: %s\n", rec.DisplayName(id)))
	sb.WriteString(fmt.Sprintf("Welcome back, %s!\n", rec.Greeting(id)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", id))
	sb.WriteString(fmt.Sprintf("Theme:    %s\n", rec.Theme))
	sb.WriteString(fmt.Sprintf("Session:  %t\n", rec.Session))

	skills := rec.Resume.Skills
	if len(skills) > 0 {
		count := min(len(skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills:   %s", strings.Join(skills[:count], ", ")))
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("ACCOUNT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPreview outputs the plain-text resume preview, wrapping long lines
// at word boundaries.
func (p *Printer) PrintPreview(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, wrap(line, boxWidth-4)...)
	}
	p.printBox("RESUME PREVIEW", strings.Join(lines, "\n"))
}

// wrap splits line into lines of at most width runes. Words longer than
// width are left whole.
func wrap(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		out []string
		cur string
	)
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case len([]rune(cur))+1+len([]rune(w)) <= width:
			cur += " " + w
		default:
			out = append(out, cur)
			cur = w
		}
	}
	return append(out, cur)
}

// PrintAudit outputs the result of a storage audit.
func (p *Printer) PrintAudit(report *accounts.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Accounts checked: %d\n", report.Checked))
	current := report.CurrentUser
	if current == "" {
		current = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Current user:     %s\n", current))

	if report.OK() {
		sb.WriteString("\n✓ No issues found")
		p.printBox("STORAGE AUDIT", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("\n⚠ %d issue(s):\n", len(report.Issues)))
	for _, issue := range report.Issues {
		sb.WriteString(fmt.Sprintf("  • [%s] %s\n", issue.Kind, issue.ID))
		sb.WriteString(fmt.Sprintf("    %s\n", issue.Detail))
	}

	p.printBox("STORAGE AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}
