package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest extracted text considered a successful
// static fetch. Anything shorter suggests a JavaScript-rendered page.
const MinContentLength = 500

// browserTimeout bounds a single headless render.
const browserTimeout = 30 * time.Second

// NeedsBrowser reports whether the statically extracted text is too short and
// a browser render should be attempted.
func NeedsBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// RenderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML. Requires Chrome or Chromium on the host.
func RenderWithBrowser(ctx context.Context, urlStr string, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] rendering %s", urlStr)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, browserTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate the description.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] rendered %d bytes", len(html))
	}
	return html, nil
}
