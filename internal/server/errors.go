package server

import (
	"errors"
	"net/http"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/ai"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/render"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/schemas"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/template"
)

// HTTPStatus maps domain errors to HTTP status codes.
func HTTPStatus(err error) int {
	var (
		unknownTemplate *template.UnknownTemplateError
		formatErr       *render.FormatError
		execErr         *template.ExecError
		browserErr      *render.BrowserError
		validationErr   *schemas.ValidationError
		schemaLoadErr   *schemas.SchemaLoadError
		unavailable     *ai.UnavailableError
		generationErr   *ai.GenerationError
	)

	switch {
	case errors.As(err, &unknownTemplate):
		return http.StatusNotFound
	case errors.As(err, &formatErr):
		return http.StatusBadRequest
	case errors.As(err, &validationErr), errors.As(err, &schemaLoadErr):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &browserErr), errors.As(err, &generationErr):
		return http.StatusBadGateway
	case errors.As(err, &execErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// domainError writes an error response with the mapped status code.
func (s *Server) domainError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
