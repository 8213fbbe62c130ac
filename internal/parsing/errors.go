package parsing

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResume is returned when neither a file nor pasted text was provided.
	ErrNoResume = errors.New("no resume provided: upload a file or paste your resume text")
	// ErrTextTooShort is returned when pasted text is too short to be a resume.
	ErrTextTooShort = errors.New("the pasted text seems too short to be a resume")
	// ErrEmptyPDF is returned when a PDF yields no text, e.g. scanned images.
	ErrEmptyPDF = errors.New("the PDF appears to be empty or contains only images/scanned content; try pasting your resume text directly")
	// ErrEmptyDOCX is returned when a DOCX file yields no text.
	ErrEmptyDOCX = errors.New("the DOCX file appears to be empty; try pasting your resume text directly")
)

// UnsupportedTypeError indicates an upload with an extension the parser
// cannot handle.
type UnsupportedTypeError struct {
	Filename string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (only PDF, DOCX, and plain text are accepted)", e.Filename)
}
