// Package main provides the entry point for the resume scanner CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scanner",
	Short: "ATS resume scanner",
	Long:  "Resume Scanner analyzes a resume against a job posting: keyword matching with weighted category scores, ATS formatting checks, and optional AI-powered improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
