// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/formatting"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/suggest"
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

// PrintMatchReport outputs a human-readable summary of the match result.
func (p *Printer) PrintMatchReport(result *matching.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall score:  %.1f%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Simple ratio:   %.1f%%\n", result.SimpleMatchRatio))
	sb.WriteString(fmt.Sprintf("Matched:        %d of %d job keywords\n", result.TotalMatched, result.TotalJobKeywords))
	sb.WriteString("\n")

	// Per-category breakdown, highest weight first
	names := make([]string, 0, len(result.CategoryScores))
	for name := range result.CategoryScores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := result.CategoryScores[names[i]], result.CategoryScores[names[j]]
		if ci.Weight != cj.Weight {
			return ci.Weight > cj.Weight
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		cs := result.CategoryScores[name]
		label := strings.ReplaceAll(name, "_", " ")
		sb.WriteString(fmt.Sprintf("%-18s %5.1f%% (%d/%d)\n", label, cs.Score, cs.Matched, cs.Total))
	}

	// Top missing keywords
	missing := topTerms(result.MissingKeywords)
	if len(missing) > 0 {
		sb.WriteString("\nTop missing: " + strings.Join(missing, ", "))
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFormattingReport outputs the ATS formatting check results.
func (p *Printer) PrintFormattingReport(report *formatting.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Word count: %d\n", report.WordCount))
	sb.WriteString(fmt.Sprintf("Sections:   %s\n", orDash(strings.Join(report.SectionsFound, ", "))))

	contact := []string{}
	if report.ContactInfo.Email {
		contact = append(contact, "email")
	}
	if report.ContactInfo.Phone {
		contact = append(contact, "phone")
	}
	sb.WriteString(fmt.Sprintf("Contact:    %s\n", orDash(strings.Join(contact, ", "))))

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Type, issue.Message))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\nNo formatting issues found.\n")
	}

	p.printBox("ATS FORMATTING CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the suggestions summary and quick wins.
func (p *Printer) PrintSuggestions(s *suggest.Suggestions) {
	if s == nil {
		return
	}

	var sb strings.Builder

	source := "rule-based"
	if s.AIPowered {
		source = "AI"
	}
	sb.WriteString(fmt.Sprintf("Source: %s\n\n", source))
	sb.WriteString(s.Summary + "\n")

	if len(s.QuickWins) > 0 {
		sb.WriteString("\nQuick wins:\n")
		count := min(len(s.QuickWins), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", s.QuickWins[i]))
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// topTerms flattens per-category missing keyword lists into one capped list.
func topTerms(byCategory map[string][]string) []string {
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	var terms []string
	for _, name := range names {
		for _, term := range byCategory[name] {
			terms = append(terms, term)
			if len(terms) == maxItemsToShow {
				return terms
			}
		}
	}
	return terms
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
