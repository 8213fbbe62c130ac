// Package server provides the HTTP REST API for the resume scanner.
package server

import (
	"fmt"
	"net/http"
)

// ErrMissingResume indicates no resume was supplied in any accepted form
type ErrMissingResume struct{}

func (e *ErrMissingResume) Error() string {
	return "no resume provided; upload a file or paste resume text"
}

// ErrMissingJob indicates no job description was supplied
type ErrMissingJob struct{}

func (e *ErrMissingJob) Error() string {
	return "no job description provided; paste the posting text or supply a URL"
}

// ErrTextTooShort indicates a supplied text is too short to analyze
type ErrTextTooShort struct {
	Field    string
	MinWords int
}

func (e *ErrTextTooShort) Error() string {
	return fmt.Sprintf("%s is too short: need at least %d words", e.Field, e.MinWords)
}

// ErrUploadTooLarge indicates the uploaded file exceeds the size limit
type ErrUploadTooLarge struct {
	Limit int64
}

func (e *ErrUploadTooLarge) Error() string {
	return fmt.Sprintf("uploaded file exceeds the %d byte limit", e.Limit)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStatsUnavailable indicates scan history is not configured
type ErrStatsUnavailable struct{}

func (e *ErrStatsUnavailable) Error() string {
	return "scan history is not configured on this server"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingResume, *ErrMissingJob, *ErrTextTooShort, *ErrValidation:
		return http.StatusBadRequest
	case *ErrUploadTooLarge:
		return http.StatusRequestEntityTooLarge
	case *ErrStatsUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
