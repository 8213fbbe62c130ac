// Package scan orchestrates a full resume analysis: keyword extraction for
// both documents, match scoring, the formatting check, and optional AI
// suggestions.
package scan

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scanner/internal/formatting"
	"github.com/jonathan/resume-scanner/internal/keywords"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/parsing"
	"github.com/jonathan/resume-scanner/internal/suggest"
)

// Options configures a scan run.
type Options struct {
	// Suggester, when non-nil, is used to generate AI suggestions for the
	// report. With a nil Suggester rule-based suggestions are produced if
	// WithSuggestions is set.
	Suggester suggest.Client
	// WithSuggestions attaches a suggestions section to the report.
	WithSuggestions bool
}

// Report bundles every analysis output for one resume/job pair.
type Report struct {
	Match           *matching.Result     `json:"match"`
	Formatting      *formatting.Report   `json:"formatting"`
	Suggestions     *suggest.Suggestions `json:"suggestions,omitempty"`
	ResumeWordCount int                  `json:"resume_word_count"`
}

// Run analyzes resumeText against jobText. The engine itself is total over
// its inputs; minimum-length validation belongs to the caller.
func Run(ctx context.Context, resumeText, jobText string, opts Options) *Report {
	var resumeKeywords, jobKeywords keywords.Keywords

	// The two extractions are independent regex scans; run them in parallel.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeKeywords = keywords.Extract(resumeText)
		return nil
	})
	g.Go(func() error {
		jobKeywords = keywords.Extract(jobText)
		return nil
	})
	_ = g.Wait()

	result := matching.Score(resumeKeywords, jobKeywords)

	report := &Report{
		Match:           result,
		Formatting:      formatting.Check(resumeText),
		ResumeWordCount: parsing.WordCount(resumeText),
	}
	if opts.WithSuggestions {
		report.Suggestions = suggest.Generate(ctx, opts.Suggester, resumeText, jobText, result)
	}
	return report
}
