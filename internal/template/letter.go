package template

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/render"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// LetterRenderer renders cover letters. Letters use a single fixed layout
// rather than the resume template registry.
type LetterRenderer struct {
	html  *htmltemplate.Template
	latex *texttemplate.Template
	pdf   render.PDFOptions
}

// NewLetterRenderer parses the letter layout templates.
func NewLetterRenderer(pdf PDFSettings) (*LetterRenderer, error) {
	html, err := htmltemplate.New("letter").Parse(letterHTML)
	if err != nil {
		return nil, &ParseError{TemplateID: "letter", Format: types.FormatHTML, Cause: err}
	}
	latex, err := texttemplate.New("letter").Funcs(texttemplate.FuncMap{
		"escape": render.EscapeLaTeX,
	}).Parse(letterLaTeX)
	if err != nil {
		return nil, &ParseError{TemplateID: "letter", Format: types.FormatLaTeX, Cause: err}
	}
	return &LetterRenderer{
		html:  html,
		latex: latex,
		pdf:   render.PDFOptions{PageSize: pdf.PageSize},
	}, nil
}

// Render produces the letter in the requested format.
func (r *LetterRenderer) Render(ctx context.Context, letter *types.CoverLetter, format types.Format) ([]byte, error) {
	switch format {
	case types.FormatHTML:
		return r.renderHTML(letter)
	case types.FormatLaTeX:
		var buf bytes.Buffer
		if err := r.latex.Execute(&buf, letter); err != nil {
			return nil, &ExecError{TemplateID: "letter", Format: types.FormatLaTeX, Cause: err}
		}
		return buf.Bytes(), nil
	case types.FormatPDF:
		html, err := r.renderHTML(letter)
		if err != nil {
			return nil, err
		}
		return render.PrintPDF(ctx, html, r.pdf)
	case types.FormatDOCX:
		return render.LetterDOCX(letter)
	default:
		return nil, &render.FormatError{TemplateID: "letter", Format: string(format)}
	}
}

func (r *LetterRenderer) renderHTML(letter *types.CoverLetter) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.html.Execute(&buf, letter); err != nil {
		return nil, &ExecError{TemplateID: "letter", Format: types.FormatHTML, Cause: err}
	}
	return buf.Bytes(), nil
}

const letterHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Contact.Name}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; color: #1a1a1a; max-width: 46rem; margin: 0 auto; padding: 2.5rem 2rem; font-size: 11pt; line-height: 1.55; }
.sender { margin-bottom: 1.6rem; }
.sender .name { font-weight: bold; font-size: 13pt; }
.recipient { margin-bottom: 1.6rem; }
p { margin: 0 0 .9rem; }
.closing { margin-top: 1.8rem; }
.signature { margin-top: 2.2rem; }
</style>
</head>
<body>
<div class="sender">
<div class="name">{{.Contact.Name}}</div>
<div>{{.Contact.Email}}{{if .Contact.Phone}} &middot; {{.Contact.Phone}}{{end}}</div>
{{if .Contact.Location}}<div>{{.Contact.Location}}</div>{{end}}
</div>
{{if .Date}}<p>{{.Date}}</p>{{end}}
<div class="recipient">
{{if .Recipient.Name}}<div>{{.Recipient.Name}}</div>{{end}}
{{if .Recipient.Role}}<div>{{.Recipient.Role}}</div>{{end}}
{{if .Recipient.Company}}<div>{{.Recipient.Company}}</div>{{end}}
{{if .Recipient.Address}}<div>{{.Recipient.Address}}</div>{{end}}
</div>
<p>{{.SalutationOrDefault}}</p>
{{range .Body}}<p>{{.}}</p>
{{end}}<p class="closing">{{.ClosingOrDefault}}</p>
<p class="signature">{{.Contact.Name}}</p>
</body>
</html>
`

const letterLaTeX = `\documentclass[11pt]{article}
\usepackage[margin=1.1in]{geometry}
\pagestyle{empty}
\setlength{\parindent}{0pt}
\setlength{\parskip}{8pt}
\begin{document}
\textbf{\large {{escape .Contact.Name}}}\\
{{escape .Contact.Email}}{{if .Contact.Phone}} $\cdot$ {{escape .Contact.Phone}}{{end}}{{if .Contact.Location}}\\
{{escape .Contact.Location}}{{end}}

{{if .Date}}{{escape .Date}}

{{end}}{{if .Recipient.Name}}{{escape .Recipient.Name}}\\
{{end}}{{if .Recipient.Role}}{{escape .Recipient.Role}}\\
{{end}}{{if .Recipient.Company}}{{escape .Recipient.Company}}\\
{{end}}
{{escape .SalutationOrDefault}}

{{range .Body}}{{escape .}}

{{end}}{{escape .ClosingOrDefault}}

\vspace{18pt}
{{escape .Contact.Name}}
\end{document}
`
