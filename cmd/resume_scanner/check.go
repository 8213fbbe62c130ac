package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/formatting"
	"github.com/jonathan/resume-scanner/internal/observability"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the ATS formatting check on a resume",
	Long:  "Check a resume for formatting problems that confuse applicant tracking systems: missing sections, special characters, length, and contact information.",
	RunE:  runCheck,
}

var (
	checkResume string
	checkJSON   bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkResume, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report as JSON")

	checkCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	resumeText, err := readResumeFile(checkResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	report := formatting.Check(resumeText)

	if checkJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	observability.NewPrinter(os.Stdout).PrintFormattingReport(report)
	return nil
}
