package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// DOCX assembly. A .docx file is a zip of OOXML parts; the exporter writes
// the minimal part set (content types, package rels, document, styles,
// numbering) that Word, LibreOffice, and ATS parsers all accept.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="Normal" w:default="1">
    <w:name w:val="Normal"/>
    <w:rPr><w:sz w:val="21"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Title">
    <w:name w:val="Title"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="36"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="240" w:after="60"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="26"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading2">
    <w:name w:val="heading 2"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="120" w:after="40"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="22"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="ListParagraph">
    <w:name w:val="List Paragraph"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:ind w:left="360"/></w:pPr>
  </w:style>
</w:styles>`

const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="0">
    <w:lvl w:ilvl="0">
      <w:numFmt w:val="bullet"/>
      <w:lvlText w:val="&#8226;"/>
      <w:pPr><w:ind w:left="360" w:hanging="180"/></w:pPr>
    </w:lvl>
  </w:abstractNum>
  <w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
</w:numbering>`

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// docxBuilder accumulates document.xml paragraphs and packages the parts.
type docxBuilder struct {
	body strings.Builder
}

func (b *docxBuilder) para(style, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.body.WriteString(`<w:p><w:pPr><w:pStyle w:val="`)
	b.body.WriteString(style)
	b.body.WriteString(`"/></w:pPr><w:r><w:t xml:space="preserve">`)
	b.body.WriteString(xmlEscaper.Replace(text))
	b.body.WriteString(`</w:t></w:r></w:p>`)
}

func (b *docxBuilder) bullet(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.body.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/>` +
		`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr>` +
		`<w:r><w:t xml:space="preserve">`)
	b.body.WriteString(xmlEscaper.Replace(text))
	b.body.WriteString(`</w:t></w:r></w:p>`)
}

func (b *docxBuilder) bytes() ([]byte, error) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + b.body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", document},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create docx part %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("failed to write docx part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx package: %w", err)
	}
	return buf.Bytes(), nil
}

// ResumeDOCX serializes a resume into a DOCX document. The layout is
// deliberately structural (headings, paragraphs, bullet lists): DOCX output
// exists so screeners can parse the content, not to carry the visual theme.
func ResumeDOCX(resume *types.Resume) ([]byte, error) {
	b := &docxBuilder{}

	b.para("Title", resume.Contact.Name)
	b.para("Normal", contactLine(resume.Contact))

	if resume.Summary != "" {
		b.para("Heading1", "Summary")
		b.para("Normal", resume.Summary)
	}

	if len(resume.Experience) > 0 {
		b.para("Heading1", "Experience")
		for _, e := range resume.SortedExperience() {
			title := e.Role
			if e.Company != "" {
				title = e.Role + ", " + e.Company
			}
			b.para("Heading2", title)
			b.para("Normal", joinNonEmpty(" | ", FormatDateRange(e.StartDate, e.EndDate), e.Location))
			for _, bullet := range e.Bullets {
				b.bullet(bullet)
			}
		}
	}

	if len(resume.Education) > 0 {
		b.para("Heading1", "Education")
		for _, ed := range resume.Education {
			b.para("Heading2", joinNonEmpty(", ", ed.Degree, ed.Field))
			b.para("Normal", joinNonEmpty(" | ", ed.Institution, FormatDateRange(ed.StartDate, ed.EndDate)))
			b.para("Normal", ed.Notes)
		}
	}

	if len(resume.SkillGroups) > 0 {
		b.para("Heading1", "Skills")
		for _, g := range resume.SkillGroups {
			b.para("Normal", g.Label+": "+strings.Join(g.Skills, ", "))
		}
	}

	if len(resume.Projects) > 0 {
		b.para("Heading1", "Projects")
		for _, p := range resume.Projects {
			b.para("Heading2", p.Name)
			b.para("Normal", p.Description)
			for _, h := range p.Highlights {
				b.bullet(h)
			}
		}
	}

	if len(resume.Certifications) > 0 {
		b.para("Heading1", "Certifications")
		for _, c := range resume.Certifications {
			b.para("Normal", joinNonEmpty(" — ", c.Name, joinNonEmpty(", ", c.Issuer, c.Date)))
		}
	}

	return b.bytes()
}

// LetterDOCX serializes a cover letter into a DOCX document.
func LetterDOCX(letter *types.CoverLetter) ([]byte, error) {
	b := &docxBuilder{}

	b.para("Title", letter.Contact.Name)
	b.para("Normal", contactLine(letter.Contact))
	b.para("Normal", letter.Date)
	b.para("Normal", joinNonEmpty(", ", letter.Recipient.Name, letter.Recipient.Company))
	b.para("Normal", letter.Recipient.Address)
	b.para("Normal", letter.SalutationOrDefault())
	for _, paragraph := range letter.Body {
		b.para("Normal", paragraph)
	}
	b.para("Normal", letter.ClosingOrDefault())
	b.para("Normal", letter.Contact.Name)

	return b.bytes()
}

// FormatDateRange formats a "YYYY-MM" range for display; "present" becomes
// "Present". Empty components are omitted.
func FormatDateRange(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if strings.EqualFold(end, "present") {
		end = "Present"
	}
	if end == "" {
		return start
	}
	if start == "" {
		return end
	}
	return start + " – " + end
}

func contactLine(c types.Contact) string {
	parts := []string{c.Email, c.Phone, c.Location}
	for _, l := range c.Links {
		parts = append(parts, l.URL)
	}
	return joinNonEmpty(" | ", parts...)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
