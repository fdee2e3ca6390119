package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/db"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/schemas"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// handleCreateResume validates and stores a new resume document.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.decodeResume(w, r)
	if !ok {
		return
	}
	resume.ID = "" // server-assigned

	id, err := s.db.SaveResume(r.Context(), resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleGetResume returns a stored resume document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
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

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a stored resume document.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	resume, ok := s.decodeResume(w, r)
	if !ok {
		return
	}
	resume.ID = id.String()

	if _, err := s.db.SaveResume(r.Context(), resume); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleListResumes returns resume summaries with optional filters.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	filters := db.ResumeFilters{
		Title: r.URL.Query().Get("title"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filters.Limit = limit
		}
	}

	summaries, err := s.db.ListResumes(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": summaries,
		"count":   len(summaries),
	})
}

// handleDeleteResume deletes a resume and its artifacts.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		if err.Error() == "resume not found: "+id.String() {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// decodeResume reads a resume body, schema-validates it, and unmarshals it.
func (s *Server) decodeResume(w http.ResponseWriter, r *http.Request) (*types.Resume, bool) {
	body, ok := s.readBody(w, r)
	if !ok {
		return nil, false
	}
	if err := schemas.ValidateResume(body); err != nil {
		s.domainError(w, err)
		return nil, false
	}

	var resume types.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &resume, true
}
