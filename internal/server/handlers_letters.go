package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/schemas"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// handleCreateLetter validates and stores a new cover letter.
func (s *Server) handleCreateLetter(w http.ResponseWriter, r *http.Request) {
	letter, ok := s.decodeLetter(w, r)
	if !ok {
		return
	}
	letter.ID = ""

	id, err := s.db.SaveLetter(r.Context(), letter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleGetLetter returns a stored cover letter.
func (s *Server) handleGetLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	letter, err := s.db.GetLetter(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if letter == nil {
		s.errorResponse(w, http.StatusNotFound, "Letter not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, letter)
}

// handleUpdateLetter replaces a stored cover letter.
func (s *Server) handleUpdateLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	existing, err := s.db.GetLetter(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Letter not found")
		return
	}

	letter, ok := s.decodeLetter(w, r)
	if !ok {
		return
	}
	letter.ID = id.String()

	if _, err := s.db.SaveLetter(r.Context(), letter); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, letter)
}

// handleListLetters returns cover letter summaries.
func (s *Server) handleListLetters(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			limit = v
		}
	}

	summaries, err := s.db.ListLetters(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"letters": summaries,
		"count":   len(summaries),
	})
}

// handleDeleteLetter deletes a cover letter.
func (s *Server) handleDeleteLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteLetter(r.Context(), id); err != nil {
		if err.Error() == "letter not found: "+id.String() {
			s.errorResponse(w, http.StatusNotFound, "Letter not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleRenderLetter renders a stored cover letter.
func (s *Server) handleRenderLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RenderRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	format, err := types.ParseFormat(req.Format)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	letter, err := s.db.GetLetter(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if letter == nil {
		s.errorResponse(w, http.StatusNotFound, "Letter not found")
		return
	}

	out, err := s.letters.Render(r.Context(), letter, format)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.writeDocument(w, out, format, "cover_letter")
}

// decodeLetter reads a cover letter body, schema-validates it, and
// unmarshals it.
func (s *Server) decodeLetter(w http.ResponseWriter, r *http.Request) (*types.CoverLetter, bool) {
	body, ok := s.readBody(w, r)
	if !ok {
		return nil, false
	}
	if err := schemas.ValidateCoverLetter(body); err != nil {
		s.domainError(w, err)
		return nil, false
	}

	var letter types.CoverLetter
	if err := json.Unmarshal(body, &letter); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &letter, true
}
