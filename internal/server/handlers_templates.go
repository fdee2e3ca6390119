package server

import (
	"net/http"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/template"
)

// handleListTemplates returns metadata for every registered template.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	infos := s.registry.List()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": infos,
		"default":   s.registry.DefaultID(),
		"count":     len(infos),
	})
}

// handleGetTemplate returns metadata for a single template.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	renderer, err := s.registry.New(id)
	if err != nil {
		if _, ok := err.(*template.UnknownTemplateError); ok {
			s.errorResponse(w, http.StatusNotFound, "Template not found: "+id)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, renderer.Info())
}
