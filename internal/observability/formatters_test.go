package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scanner/internal/formatting"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/suggest"
)

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &matching.Result{
		OverallScore:     72.4,
		SimpleMatchRatio: 60.0,
		TotalJobKeywords: 10,
		TotalMatched:     6,
		CategoryScores: map[string]matching.CategoryScore{
			"technical_skills": {Score: 80.0, Matched: 4, Total: 5, Weight: 0.40},
			"soft_skills":      {Score: 50.0, Matched: 1, Total: 2, Weight: 0.15},
		},
		MissingKeywords: map[string][]string{
			"technical_skills": {"kubernetes", "terraform"},
		},
	}

	p.PrintMatchReport(result)

	out := buf.String()
	assert.Contains(t, out, "MATCH REPORT")
	assert.Contains(t, out, "72.4%")
	assert.Contains(t, out, "technical skills")
	assert.Contains(t, out, "kubernetes")
	// Boxes are bordered
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintMatchReportNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFormattingReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &formatting.Report{
		Issues: []formatting.Issue{
			{Type: formatting.IssueWarning, Message: "Resume may be missing standard sections."},
		},
		SectionsFound: []string{"experience", "skills"},
		WordCount:     340,
		ContactInfo:   formatting.ContactInfo{Email: true},
	}

	p.PrintFormattingReport(report)

	out := buf.String()
	assert.Contains(t, out, "ATS FORMATTING CHECK")
	assert.Contains(t, out, "Word count: 340")
	assert.Contains(t, out, "experience, skills")
	assert.Contains(t, out, "[warning]")
}

func TestPrintFormattingReportClean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFormattingReport(&formatting.Report{WordCount: 500})
	assert.Contains(t, buf.String(), "No formatting issues found.")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(&suggest.Suggestions{
		Summary:   "Strong match overall.",
		QuickWins: []string{"Add kubernetes to your skills section."},
		AIPowered: true,
	})

	out := buf.String()
	assert.Contains(t, out, "SUGGESTIONS")
	assert.Contains(t, out, "Source: AI")
	assert.Contains(t, out, "Strong match overall.")
	assert.Contains(t, out, "kubernetes")
}

func TestTopTermsCapped(t *testing.T) {
	terms := topTerms(map[string][]string{
		"a": {"one", "two", "three"},
		"b": {"four", "five", "six", "seven"},
	})
	assert.Len(t, terms, maxItemsToShow)
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, terms)
}
