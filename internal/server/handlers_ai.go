package server

import (
	"net/http"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// SummaryRequest asks for an AI-drafted professional summary.
type SummaryRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description,omitempty"`
}

// BulletRequest asks for an AI rewrite of a single bullet point.
type BulletRequest struct {
	Bullet         string `json:"bullet" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

// KeywordsRequest asks which job keywords the resume is missing.
type KeywordsRequest struct {
	Resume         *types.Resume `json:"resume" validate:"required"`
	JobDescription string        `json:"job_description" validate:"required"`
}

// handleSuggestSummary drafts a professional summary.
func (s *Server) handleSuggestSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	summary, err := s.suggester.SuggestSummary(r.Context(), req.Resume, req.JobDescription)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"summary": summary})
}

// handleRewriteBullet rewrites a bullet point.
func (s *Server) handleRewriteBullet(w http.ResponseWriter, r *http.Request) {
	var req BulletRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	bullet, err := s.suggester.RewriteBullet(r.Context(), req.Bullet, req.JobDescription)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"bullet": bullet})
}

// handleSuggestKeywords lists missing job keywords.
func (s *Server) handleSuggestKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	keywords, err := s.suggester.SuggestKeywords(r.Context(), req.Resume, req.JobDescription)
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"keywords": keywords})
}
