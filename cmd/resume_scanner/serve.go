package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/config"
	"github.com/jonathan/resume-scanner/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scanning resumes against job postings.`,
	RunE:  runServe,
}

var (
	servePort    int
	serveBrowser bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 8080)")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Use headless browser for SPA job sites")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// DATABASE_URL and GEMINI_API_KEY are both optional; without them the
	// server runs without scan history and with rule-based suggestions.
	cfg := config.FromEnv().MergeWithDefaults(config.Config{})
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveBrowser {
		cfg.UseBrowser = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		APIKey:         cfg.APIKey,
		UseBrowser:     cfg.UseBrowser,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
