package server

import (
	"fmt"
	"net/http"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/render"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// RenderInlineRequest renders a resume supplied in the request body.
type RenderInlineRequest struct {
	Resume   *types.Resume `json:"resume" validate:"required"`
	Template string        `json:"template,omitempty"`
	Format   string        `json:"format" validate:"required"`
}

// RenderRequest renders a stored resume.
type RenderRequest struct {
	Template string `json:"template,omitempty"`
	Format   string `json:"format" validate:"required"`
}

// ExportRequest exports a stored resume to several formats at once. Empty
// Formats means every format the template supports.
type ExportRequest struct {
	Template string   `json:"template,omitempty"`
	Formats  []string `json:"formats,omitempty"`
}

// handleRenderInline renders a resume from the request body without storing
// anything.
func (s *Server) handleRenderInline(w http.ResponseWriter, r *http.Request) {
	var req RenderInlineRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	format, err := types.ParseFormat(req.Format)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	renderer, err := s.registry.New(req.Template)
	if err != nil {
		s.domainError(w, err)
		return
	}

	out, err := renderer.Render(r.Context(), req.Resume, format)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.writeDocument(w, out, format, "resume")
}

// handleRenderResume renders a stored resume and persists the artifact.
func (s *Server) handleRenderResume(w http.ResponseWriter, r *http.Request) {
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

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	renderer, err := s.registry.New(req.Template)
	if err != nil {
		s.domainError(w, err)
		return
	}

	out, err := renderer.Render(r.Context(), resume, format)
	if err != nil {
		s.domainError(w, err)
		return
	}

	if err := s.db.SaveArtifact(r.Context(), id, renderer.Info().ID, string(format), out); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.writeDocument(w, out, format, "resume")
}

// handleExportResume renders a stored resume to several formats
// concurrently and persists every artifact.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ExportRequest
	if !s.decodeJSON(w, r, &req) {
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

	renderer, err := s.registry.New(req.Template)
	if err != nil {
		s.domainError(w, err)
		return
	}

	var formats []types.Format
	if len(req.Formats) == 0 {
		formats = renderer.Info().Formats
	} else {
		for _, f := range req.Formats {
			format, err := types.ParseFormat(f)
			if err != nil {
				s.errorResponse(w, http.StatusBadRequest, err.Error())
				return
			}
			formats = append(formats, format)
		}
	}

	results, err := render.ExportAll(r.Context(), renderer, resume, formats)
	if err != nil {
		s.domainError(w, err)
		return
	}

	exported := make([]map[string]any, 0, len(results))
	for format, data := range results {
		if err := s.db.SaveArtifact(r.Context(), id, renderer.Info().ID, string(format), data); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		exported = append(exported, map[string]any{
			"format":     format,
			"size_bytes": len(data),
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_id": id.String(),
		"template":  renderer.Info().ID,
		"exports":   exported,
	})
}

// handleListResumeArtifacts lists stored artifacts for a resume.
func (s *Server) handleListResumeArtifacts(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_id": id.String(),
		"artifacts": artifacts,
		"count":     len(artifacts),
	})
}

// handleGetResumeArtifact downloads a stored artifact.
func (s *Server) handleGetResumeArtifact(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	templateID := r.PathValue("template")
	format, err := types.ParseFormat(r.PathValue("format"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := s.db.GetArtifact(r.Context(), id, templateID, string(format))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if data == nil {
		s.errorResponse(w, http.StatusNotFound, "Artifact not found")
		return
	}

	s.writeDocument(w, data, format, "resume")
}

// writeDocument writes a rendered document with download headers.
func (s *Server) writeDocument(w http.ResponseWriter, data []byte, format types.Format, basename string) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s.%s", basename, format.Extension()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
