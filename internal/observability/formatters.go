// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-sync/internal/extraction"
	"github.com/jonathan/skill-sync/internal/merging"
	"github.com/jonathan/skill-sync/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 9
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs a human-readable summary of the adapter result.
func (p *Printer) PrintExtractedSkills(result *extraction.AdaptResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted: %d skills", len(result.Skills)))
	if len(result.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf(" (%d skipped)", len(result.Skipped)))
	}
	sb.WriteString("\n\n")

	for _, cat := range types.Categories() {
		names := make([]string, 0, len(result.Skills))
		for _, skill := range result.Skills {
			if skill.Category == cat {
				names = append(names, skill.CanonicalName)
			}
		}
		if len(names) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", cat.Label()))
		count := min(len(names), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", names[i]))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	for _, skipped := range result.Skipped {
		sb.WriteString(fmt.Sprintf("skipped: %s\n", skipped.Reason))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMergeResult outputs what the merge changed.
func (p *Printer) PrintMergeResult(result *types.MergeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if len(result.Added) == 0 {
		sb.WriteString("No new skills; resume already up to date.\n")
	}
	for _, skill := range result.Added {
		sb.WriteString(fmt.Sprintf("+ %s (%s)\n", skill.CanonicalName, skill.Category.Label()))
	}
	for _, skipped := range result.Skipped {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", skipped.Text, skipped.Reason))
	}

	p.printBox("MERGE RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSectionLines outputs the lines that will be written to the document.
func (p *Printer) PrintSectionLines(lines []merging.SectionLine) {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("%s: %s\n", line.Label, strings.Join(line.Skills, ", ")))
	}
	p.printBox("SKILLS SECTION", strings.TrimSuffix(sb.String(), "\n"))
}
