package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing resume", &ErrMissingResume{}, http.StatusBadRequest},
		{"missing job", &ErrMissingJob{}, http.StatusBadRequest},
		{"text too short", &ErrTextTooShort{Field: "job_description", MinWords: 10}, http.StatusBadRequest},
		{"validation", &ErrValidation{Field: "job_url", Message: "url"}, http.StatusBadRequest},
		{"upload too large", &ErrUploadTooLarge{Limit: 5 << 20}, http.StatusRequestEntityTooLarge},
		{"stats unavailable", &ErrStatsUnavailable{}, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrTextTooShort{Field: "job_description", MinWords: 10}).Error(), "job_description")
	assert.Contains(t, (&ErrUploadTooLarge{Limit: 1024}).Error(), "1024")
	assert.Contains(t, (&ErrValidation{Field: "JobURL", Message: "url"}).Error(), "JobURL")
}
