package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scanner/internal/formatting"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/keywords"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/parsing"
	"github.com/jonathan/resume-scanner/internal/scan"
	"github.com/jonathan/resume-scanner/internal/suggest"
)

// minJobWords is the minimum length for a job description to be scored.
const minJobWords = 10

// ScanRequest is the JSON body for POST /api/scan. Multipart uploads carry
// the same fields as form values plus a "resume" file part.
type ScanRequest struct {
	ResumeText  string `json:"resume_text"`
	JobText     string `json:"job_description"`
	JobURL      string `json:"job_url" validate:"omitempty,url"`
	Suggestions bool   `json:"suggestions"`
}

// ScanResponse is the envelope returned by POST /api/scan. The match result
// is embedded so its fields serialize at the top level.
type ScanResponse struct {
	*matching.Result
	Formatting      *formatting.Report   `json:"formatting"`
	Suggestions     *suggest.Suggestions `json:"suggestions,omitempty"`
	ResumeWordCount int                  `json:"resume_word_count"`
	ScanID          string               `json:"scan_id,omitempty"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	req, resumeText, err := s.decodeScanRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobText, err := s.resolveJobText(r, req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := scan.Run(r.Context(), resumeText, jobText, scan.Options{
		Suggester:       s.suggester,
		WithSuggestions: req.Suggestions,
	})

	response := &ScanResponse{
		Result:          report.Match,
		Formatting:      report.Formatting,
		Suggestions:     report.Suggestions,
		ResumeWordCount: report.ResumeWordCount,
	}

	if s.db != nil {
		id, err := s.db.RecordScan(r.Context(), report.Match, report.ResumeWordCount)
		if err != nil {
			// History is best-effort; the scan result is still valid
			log.Printf("Failed to record scan: %v", err)
		} else {
			response.ScanID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// decodeScanRequest reads either a JSON body or a multipart form and
// returns the parsed request plus the cleaned resume text.
func (s *Server) decodeScanRequest(r *http.Request) (*ScanRequest, string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.decodeMultipartScan(r)
	}

	var req ScanRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.uploadLimit)).Decode(&req); err != nil {
		return nil, "", &ErrValidation{Field: "body", Message: "invalid JSON request body"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, "", validationError(err)
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, "", &ErrMissingResume{}
	}
	parsed, err := parsing.FromPaste(req.ResumeText)
	if err != nil {
		return nil, "", &ErrTextTooShort{Field: "resume_text", MinWords: parsing.MinPastedWords}
	}
	return &req, parsed.Text, nil
}

func (s *Server) decodeMultipartScan(r *http.Request) (*ScanRequest, string, error) {
	if err := r.ParseMultipartForm(s.uploadLimit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, "", &ErrUploadTooLarge{Limit: s.uploadLimit}
		}
		return nil, "", &ErrValidation{Field: "body", Message: "malformed multipart body"}
	}

	req := &ScanRequest{
		ResumeText:  r.FormValue("resume_text"),
		JobText:     r.FormValue("job_description"),
		JobURL:      r.FormValue("job_url"),
		Suggestions: r.FormValue("suggestions") == "true",
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		// No file part; fall back to pasted text
		if strings.TrimSpace(req.ResumeText) == "" {
			return nil, "", &ErrMissingResume{}
		}
		parsed, err := parsing.FromPaste(req.ResumeText)
		if err != nil {
			return nil, "", &ErrTextTooShort{Field: "resume_text", MinWords: parsing.MinPastedWords}
		}
		return req, parsed.Text, nil
	}
	defer file.Close()

	if header.Size > s.uploadLimit {
		return nil, "", &ErrUploadTooLarge{Limit: s.uploadLimit}
	}

	data, err := io.ReadAll(io.LimitReader(file, s.uploadLimit+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.uploadLimit {
		return nil, "", &ErrUploadTooLarge{Limit: s.uploadLimit}
	}

	parsed, err := parsing.FromFile(header.Filename, data)
	if err != nil {
		return nil, "", &ErrValidation{Field: "resume", Message: err.Error()}
	}
	return req, parsed.Text, nil
}

// resolveJobText returns the job description from inline text or by
// fetching the posting URL.
func (s *Server) resolveJobText(r *http.Request, req *ScanRequest) (string, error) {
	if strings.TrimSpace(req.JobText) != "" {
		if parsing.WordCount(req.JobText) < minJobWords {
			return "", &ErrTextTooShort{Field: "job_description", MinWords: minJobWords}
		}
		return parsing.CleanText(req.JobText), nil
	}

	if req.JobURL != "" {
		jobText, err := ingestion.FromURL(r.Context(), req.JobURL, s.useBrowser, false)
		if err != nil {
			return "", &ErrValidation{Field: "job_url", Message: err.Error()}
		}
		if parsing.WordCount(jobText) < minJobWords {
			return "", &ErrTextTooShort{Field: "job_url", MinWords: minJobWords}
		}
		return jobText, nil
	}

	return "", &ErrMissingJob{}
}

// MatchRequest is the JSON body for POST /api/match. Keyword lists are
// keyed by category name; unknown categories are ignored.
type MatchRequest struct {
	ResumeKeywords map[string][]string `json:"resume_keywords" validate:"required"`
	JobKeywords    map[string][]string `json:"job_keywords" validate:"required"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	result := matching.Score(keywords.FromLists(req.ResumeKeywords), keywords.FromLists(req.JobKeywords))
	s.jsonResponse(w, http.StatusOK, result)
}

// FormatCheckRequest is the JSON body for POST /api/format-check.
type FormatCheckRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

func (s *Server) handleFormatCheck(w http.ResponseWriter, r *http.Request) {
	var req FormatCheckRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.uploadLimit)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, formatting.Check(req.ResumeText))
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"ai_enabled": s.suggester != nil,
		"database":   s.db != nil,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStatsUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	stats, err := s.db.GetStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// validationError converts validator errors into a typed request error.
func validationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}
