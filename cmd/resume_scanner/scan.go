package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/config"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/observability"
	"github.com/jonathan/resume-scanner/internal/parsing"
	"github.com/jonathan/resume-scanner/internal/scan"
	"github.com/jonathan/resume-scanner/internal/suggest"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a resume against a job posting",
	Long:  "Scan a resume against a job posting: extract keywords from both, compute weighted match scores per category, run the ATS formatting check, and optionally generate improvement suggestions.",
	RunE:  runScan,
}

var (
	scanResume     string
	scanResumeText string
	scanJob        string
	scanJobURL     string
	scanConfig     string
	scanJSON       bool
	scanSuggest    bool
	scanBrowser    bool
	scanVerbose    bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanResume, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	scanCmd.Flags().StringVar(&scanResumeText, "resume-text", "", "Resume text pasted inline")
	scanCmd.Flags().StringVarP(&scanJob, "job", "j", "", "Path to job posting text file")
	scanCmd.Flags().StringVarP(&scanJobURL, "job-url", "u", "", "URL to fetch job posting from")
	scanCmd.Flags().StringVarP(&scanConfig, "config", "c", "", "Path to JSON config file")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output the full report as JSON")
	scanCmd.Flags().BoolVar(&scanSuggest, "suggest", false, "Generate improvement suggestions")
	scanCmd.Flags().BoolVar(&scanBrowser, "browser", false, "Use headless browser for SPA job sites")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg, err := loadScanConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	resumeText, err := loadResumeText(cfg)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	var client suggest.Client
	if scanSuggest && cfg.APIKey != "" {
		gemini, err := suggest.NewGeminiClient(ctx, cfg.APIKey, suggest.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create suggestion client: %w", err)
		}
		defer gemini.Close()
		client = gemini
	}

	report := scan.Run(ctx, resumeText, jobText, scan.Options{
		Suggester:       client,
		WithSuggestions: scanSuggest,
	})

	if scanJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchReport(report.Match)
	printer.PrintFormattingReport(report.Formatting)
	printer.PrintSuggestions(report.Suggestions)
	return nil
}

// loadScanConfig merges CLI flags over the optional config file and
// environment variables.
func loadScanConfig() (*config.Config, error) {
	cfg := &config.Config{
		Resume:     scanResume,
		Job:        scanJob,
		JobURL:     scanJobURL,
		UseBrowser: scanBrowser,
		Verbose:    scanVerbose,
	}

	// Precedence: flags, then environment, then config file.
	defaults := config.Config{}
	if scanConfig != "" {
		fileCfg, err := config.LoadConfig(scanConfig)
		if err != nil {
			return nil, err
		}
		defaults = *fileCfg
	}
	defaults = config.FromEnv().MergeWithDefaults(defaults)

	merged := cfg.MergeWithDefaults(defaults)
	return &merged, nil
}

func loadResumeText(cfg *config.Config) (string, error) {
	if scanResumeText != "" {
		parsed, err := parsing.FromPaste(scanResumeText)
		if err != nil {
			return "", err
		}
		return parsed.Text, nil
	}
	if cfg.Resume == "" {
		return "", fmt.Errorf("either --resume or --resume-text must be provided")
	}

	if scanVerbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Reading resume from %s\n", cfg.Resume)
	}
	return readResumeFile(cfg.Resume)
}

// readResumeFile loads a resume from disk, extracting text from PDF and
// DOCX files by extension.
func readResumeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	parsed, err := parsing.FromFile(path, data)
	if err != nil {
		return "", err
	}
	return parsed.Text, nil
}

func loadJobText(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Job != "" {
		if scanVerbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Reading job posting from %s\n", cfg.Job)
		}
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}
	if cfg.JobURL != "" {
		if scanVerbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Fetching job posting from %s\n", cfg.JobURL)
		}
		return ingestion.FromURL(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	}
	return "", fmt.Errorf("either --job or --job-url must be provided")
}
