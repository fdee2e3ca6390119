package template

import (
	"fmt"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// UnknownTemplateError is returned when a template ID is not registered.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %q", e.ID)
}

// DuplicateTemplateError is returned when a template ID is registered twice.
type DuplicateTemplateError struct {
	ID string
}

func (e *DuplicateTemplateError) Error() string {
	return fmt.Sprintf("template already registered: %q", e.ID)
}

// ParseError represents a failure to parse a layout template source.
type ParseError struct {
	TemplateID string
	Format     types.Format
	Cause      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template %q: failed to parse %s layout: %v", e.TemplateID, e.Format, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ExecError represents a failure while executing a layout template.
type ExecError struct {
	TemplateID string
	Format     types.Format
	Cause      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("template %q: failed to render %s: %v", e.TemplateID, e.Format, e.Cause)
}

func (e *ExecError) Unwrap() error {
	return e.Cause
}

// ManifestError represents an invalid custom template bundle.
type ManifestError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template bundle %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("template bundle %s: %s", e.Path, e.Message)
}

func (e *ManifestError) Unwrap() error {
	return e.Cause
}
