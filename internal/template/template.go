// Package template implements the document template engine: a registry of
// pluggable visual templates, layout-backed renderers, and hot-reloaded
// custom template bundles.
package template

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/render"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// Info describes a registered template.
type Info struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Formats     []types.Format `json:"formats"`
	Builtin     bool           `json:"builtin"`
}

// Renderer renders a resume into one of its supported formats. Renderers
// must treat the resume as read-only and be safe for concurrent use.
type Renderer interface {
	Info() Info
	Render(ctx context.Context, resume *types.Resume, format types.Format) ([]byte, error)
}

// Factory constructs a Renderer. The registry calls it once per render
// request so custom templates can be swapped without invalidating callers.
type Factory func() (Renderer, error)

// Layout is the source definition of a layout-backed template: an
// html/template for HTML and PDF output and a text/template for LaTeX.
// Either may be empty; DOCX is always available through the structural
// serializer.
type Layout struct {
	ID          string
	Name        string
	Description string
	HTML        string
	LaTeX       string
	Builtin     bool
}

// PDFSettings configure PDF printing for layout renderers.
type PDFSettings struct {
	PageSize string
}

// layoutRenderer renders through parsed layout templates.
type layoutRenderer struct {
	info  Info
	html  *htmltemplate.Template
	latex *texttemplate.Template
	pdf   render.PDFOptions
}

// NewRenderer parses a layout's templates and returns a renderer for it.
func NewRenderer(layout Layout, pdf PDFSettings) (Renderer, error) {
	r := &layoutRenderer{
		pdf: render.PDFOptions{PageSize: pdf.PageSize},
	}

	formats := []types.Format{}
	if layout.HTML != "" {
		tmpl, err := htmltemplate.New(layout.ID).Funcs(htmltemplate.FuncMap{
			"dateRange": render.FormatDateRange,
			"join":      strings.Join,
		}).Parse(layout.HTML)
		if err != nil {
			return nil, &ParseError{TemplateID: layout.ID, Format: types.FormatHTML, Cause: err}
		}
		r.html = tmpl
		formats = append(formats, types.FormatPDF, types.FormatHTML)
	}
	if layout.LaTeX != "" {
		tmpl, err := texttemplate.New(layout.ID).Funcs(texttemplate.FuncMap{
			"escape":    render.EscapeLaTeX,
			"dateRange": render.FormatDateRange,
			"join":      strings.Join,
		}).Parse(layout.LaTeX)
		if err != nil {
			return nil, &ParseError{TemplateID: layout.ID, Format: types.FormatLaTeX, Cause: err}
		}
		r.latex = tmpl
		formats = append(formats, types.FormatLaTeX)
	}
	formats = append(formats, types.FormatDOCX)

	r.info = Info{
		ID:          layout.ID,
		Name:        layout.Name,
		Description: layout.Description,
		Formats:     formats,
		Builtin:     layout.Builtin,
	}
	return r, nil
}

func (r *layoutRenderer) Info() Info {
	return r.info
}

func (r *layoutRenderer) Render(ctx context.Context, resume *types.Resume, format types.Format) ([]byte, error) {
	switch format {
	case types.FormatHTML:
		return r.renderHTML(resume)
	case types.FormatLaTeX:
		return r.renderLaTeX(resume)
	case types.FormatPDF:
		html, err := r.renderHTML(resume)
		if err != nil {
			return nil, err
		}
		return render.PrintPDF(ctx, html, r.pdf)
	case types.FormatDOCX:
		return render.ResumeDOCX(resume)
	default:
		return nil, &render.FormatError{TemplateID: r.info.ID, Format: string(format)}
	}
}

func (r *layoutRenderer) renderHTML(resume *types.Resume) ([]byte, error) {
	if r.html == nil {
		return nil, &render.FormatError{TemplateID: r.info.ID, Format: string(types.FormatHTML)}
	}
	var buf bytes.Buffer
	if err := r.html.Execute(&buf, resume); err != nil {
		return nil, &ExecError{TemplateID: r.info.ID, Format: types.FormatHTML, Cause: err}
	}
	return buf.Bytes(), nil
}

func (r *layoutRenderer) renderLaTeX(resume *types.Resume) ([]byte, error) {
	if r.latex == nil {
		return nil, &render.FormatError{TemplateID: r.info.ID, Format: string(types.FormatLaTeX)}
	}
	var buf bytes.Buffer
	if err := r.latex.Execute(&buf, resume); err != nil {
		return nil, &ExecError{TemplateID: r.info.ID, Format: types.FormatLaTeX, Cause: err}
	}
	return buf.Bytes(), nil
}
