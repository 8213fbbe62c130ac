// Package parsing extracts plain resume text from uploaded PDF and DOCX files
// or from pasted text, and normalizes it for the scanning engine.
package parsing

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MinPastedWords is the smallest word count accepted for pasted resume text.
const MinPastedWords = 20

var (
	intraLineSpace = regexp.MustCompile(`[^\S\n]+`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
)

// Result holds extracted resume text and its word count.
type Result struct {
	Text      string
	WordCount int
}

// FromFile extracts resume text from an uploaded file, dispatching on the
// filename extension. Only .pdf, .docx, and .txt are supported.
func FromFile(filename string, data []byte) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FromPDF(data)
	case ".docx":
		return FromDOCX(data)
	case ".txt":
		return FromPaste(string(data))
	default:
		return nil, &UnsupportedTypeError{Filename: filename}
	}
}

// FromPDF extracts text from PDF file contents, concatenating all pages.
func FromPDF(data []byte) (*Result, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("could not read PDF file: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return nil, ErrEmptyPDF
	}
	return newResult(sb.String()), nil
}

// FromDOCX extracts text from DOCX file contents.
func FromDOCX(data []byte) (*Result, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("could not read DOCX file: %w", err)
	}
	defer func() { _ = doc.Close() }()

	text := doc.Editable().GetContent()
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDOCX
	}
	return newResult(text), nil
}

// FromPaste processes pasted resume text. Text shorter than MinPastedWords
// words is rejected as unlikely to be a full resume.
func FromPaste(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoResume
	}
	cleaned := CleanText(text)
	if len(strings.Fields(cleaned)) < MinPastedWords {
		return nil, ErrTextTooShort
	}
	return newResult(cleaned), nil
}

// CleanText normalizes whitespace in extracted text: intra-line whitespace
// collapses to single spaces, blank-line runs cap at one blank line, and
// every line is trimmed.
func CleanText(text string) string {
	text = intraLineSpace.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func newResult(raw string) *Result {
	cleaned := CleanText(raw)
	return &Result{Text: cleaned, WordCount: WordCount(cleaned)}
}
