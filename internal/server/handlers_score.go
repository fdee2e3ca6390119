package server

import (
	"net/http"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/keywords"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// ScoreInlineRequest scores a resume supplied in the request body. The job
// posting may be plain text or raw HTML (as saved from a job board page).
type ScoreInlineRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description,omitempty"`
	JobHTML        string        `json:"job_html,omitempty"`
}

// ScoreRequest scores a stored resume.
type ScoreRequest struct {
	JobDescription string `json:"job_description,omitempty"`
	JobHTML        string `json:"job_html,omitempty"`
}

// handleScoreInline scores a resume from the request body.
func (s *Server) handleScoreInline(w http.ResponseWriter, r *http.Request) {
	var req ScoreInlineRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	jobDescription, ok := s.resolveJobText(w, req.JobDescription, req.JobHTML)
	if !ok {
		return
	}

	report := s.scorer.Score(req.Resume, jobDescription)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleScoreResume scores a stored resume and persists the report.
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ScoreRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	jobDescription, ok := s.resolveJobText(w, req.JobDescription, req.JobHTML)
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	report := s.scorer.Score(resume, jobDescription)
	if err := s.db.SaveReport(r.Context(), id, report); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleGetResumeReport returns the latest stored report for a resume.
func (s *Server) handleGetResumeReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	report, err := s.db.GetLatestReport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if report == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume has not been scored")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// resolveJobText picks the job description text, extracting it from HTML
// when only job_html is supplied.
func (s *Server) resolveJobText(w http.ResponseWriter, description, html string) (string, bool) {
	if description != "" || html == "" {
		return description, true
	}
	text, err := keywords.FromHTML(html)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to extract job description: "+err.Error())
		return "", false
	}
	return text, true
}
