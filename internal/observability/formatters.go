// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/natejswenson/portfolio-engine/internal/types"
	"github.com/natejswenson/portfolio-engine/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDisplayModel outputs a human-readable summary of a normalized display model.
func (p *Printer) PrintDisplayModel(model *types.DisplayModel) {
	if model == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:  %s\n", model.Name))
	sb.WriteString(fmt.Sprintf("Role:  %s\n", model.Role))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Social links:  %d\n", len(model.SocialLinks)))
	sb.WriteString(fmt.Sprintf("Education:     %d\n", len(model.Education)))
	sb.WriteString(fmt.Sprintf("Work:          %d\n", len(model.Work)))
	sb.WriteString(fmt.Sprintf("Skills:        %d\n", len(model.Skills)))
	sb.WriteString(fmt.Sprintf("Tools:         %d\n", len(model.Tools)))
	sb.WriteString(fmt.Sprintf("Portfolio:     %d\n", len(model.Portfolio)))
	sb.WriteString(fmt.Sprintf("Testimonials:  %d", len(model.Testimonials)))

	p.printBox("DISPLAY MODEL", sb.String())
}

// PrintSkillTree outputs skill entries with their children, up to the display limit.
func (p *Printer) PrintSkillTree(title string, entries []types.SkillEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("• %s", entry.Name))
		if entry.Icon != "" {
			sb.WriteString(fmt.Sprintf("  [%s]", entry.Icon))
		}
		sb.WriteString("\n")
		if len(entry.Children) > 0 {
			names := make([]string, 0, len(entry.Children))
			for _, child := range entry.Children {
				names = append(names, child.Name)
			}
			children := strings.Join(names, ", ")
			if len(children) > 40 {
				children = children[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  └ %s\n", children))
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs any content issues found by the display-model checks.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIssues(issues []validation.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))

	for i, issue := range issues {
		details := issue.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", issue.Type, issue.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTENT ISSUES", sb.String())
}
