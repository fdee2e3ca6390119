// Package render provides the format-level serializers used by document
// templates: LaTeX escaping, headless-browser PDF printing, OOXML (DOCX)
// assembly, and the concurrent multi-format export fan-out.
package render

import "fmt"

// BrowserError represents a failure to start or drive the headless browser
// used for PDF printing. Chrome/Chromium must be installed on the host.
type BrowserError struct {
	Message string
	Cause   error
}

func (e *BrowserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("browser error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("browser error: %s", e.Message)
}

func (e *BrowserError) Unwrap() error {
	return e.Cause
}

// FormatError represents a request for a format a renderer does not support.
type FormatError struct {
	TemplateID string
	Format     string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("template %q does not support format %q", e.TemplateID, e.Format)
}
