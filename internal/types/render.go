package types

import "fmt"

// Format identifies a document export format.
type Format string

// Supported export formats.
const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatLaTeX Format = "latex"
	FormatHTML  Format = "html"
)

// AllFormats lists every supported format in preference order.
var AllFormats = []Format{FormatPDF, FormatDOCX, FormatLaTeX, FormatHTML}

// ParseFormat parses a format string (case-sensitive, with "tex" accepted as
// an alias for latex). Returns an error for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	case "latex", "tex":
		return FormatLaTeX, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format: %q (expected pdf, docx, latex, or html)", s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatLaTeX:
		return "application/x-latex"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension (without dot) for the format.
func (f Format) Extension() string {
	if f == FormatLaTeX {
		return "tex"
	}
	return string(f)
}

// Valid reports whether the format is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatLaTeX, FormatHTML:
		return true
	}
	return false
}
