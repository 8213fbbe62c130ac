// Package ingestion acquires job description text from URLs or files for the
// scanning engine.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/jonathan/resume-scanner/internal/fetch"
	"github.com/jonathan/resume-scanner/internal/parsing"
)

var (
	// ErrInvalidURL is returned when the posting URL is not an absolute
	// http(s) URL.
	ErrInvalidURL = errors.New("invalid job posting URL")
	// ErrHTTPRequestFailed is returned when the posting page cannot be fetched.
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when no usable text is found.
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// FromURL fetches a job posting page and returns its cleaned description
// text. When useBrowser is set and the static fetch yields too little text,
// the page is re-rendered in a headless browser before extraction.
func FromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, urlStr)
	}

	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s (platform: %s)", urlStr, platform)
	}

	html, err := fetch.URL(ctx, urlStr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.ContentSelectors(platform)
	noiseSelectors := fetch.NoiseSelectors(platform)

	text, err := fetch.ExtractJobText(html, contentSelectors, noiseSelectors)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] extracted %d chars from static HTML", len(text))
	}

	if useBrowser && fetch.NeedsBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] content under %d chars, falling back to browser rendering", fetch.MinContentLength)
		}
		renderedHTML, browserErr := fetch.RenderWithBrowser(ctx, urlStr, verbose)
		if browserErr != nil {
			// Keep the static content when the browser is unavailable.
			if verbose {
				log.Printf("[VERBOSE] browser rendering failed: %v", browserErr)
			}
		} else {
			rendered, extractErr := fetch.ExtractJobText(renderedHTML, contentSelectors, noiseSelectors)
			if extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	text = parsing.CleanText(text)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: page contained no readable text", ErrContentExtractionFailed)
	}
	return text, nil
}

// FromFile reads a job description from a local text file.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return parsing.CleanText(string(data)), nil
}
