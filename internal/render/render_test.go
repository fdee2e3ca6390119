package render

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLaTeX_SpecialCharacters(t *testing.T) {
	assert.Equal(t, `\&`, EscapeLaTeX("&"))
	assert.Equal(t, `50\%`, EscapeLaTeX("50%"))
	assert.Equal(t, `\_\{\}`, EscapeLaTeX("_{}"))
	assert.Equal(t, `\textbackslash{}`, EscapeLaTeX(`\`))
	assert.Equal(t, "plain text", EscapeLaTeX("plain text"))
	assert.Equal(t, "", EscapeLaTeX(""))
}

func readDocxPart(t *testing.T, docx []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found in docx", name)
	return ""
}

func TestResumeDOCX_ValidPackage(t *testing.T) {
	resume := &types.Resume{
		Contact: types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Summary: "Engineer & builder.",
		Experience: []types.Experience{{
			Company: "Acme", Role: "Engineer",
			StartDate: "2020-01", EndDate: "present",
			Bullets: []string{"Shipped <things> fast"},
		}},
		SkillGroups: []types.SkillGroup{{Label: "Languages", Skills: []string{"Go"}}},
	}

	docx, err := ResumeDOCX(resume)
	require.NoError(t, err)

	doc := readDocxPart(t, docx, "word/document.xml")
	assert.Contains(t, doc, "Jane Doe")
	assert.Contains(t, doc, "Engineer, Acme")
	assert.Contains(t, doc, "2020-01 – Present")
	// XML escaping of user content
	assert.Contains(t, doc, "Engineer &amp; builder.")
	assert.Contains(t, doc, "Shipped &lt;things&gt; fast")
	assert.NotContains(t, doc, "<things>")

	// All required parts present
	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/styles.xml", "word/numbering.xml"} {
		readDocxPart(t, docx, part)
	}
}

func TestResumeDOCX_EmptySectionsOmitted(t *testing.T) {
	docx, err := ResumeDOCX(&types.Resume{Contact: types.Contact{Name: "Jane"}})
	require.NoError(t, err)

	doc := readDocxPart(t, docx, "word/document.xml")
	assert.NotContains(t, doc, "Experience")
	assert.NotContains(t, doc, "Education")
	assert.NotContains(t, doc, "Skills")
}

func TestLetterDOCX(t *testing.T) {
	letter := &types.CoverLetter{
		Contact:   types.Contact{Name: "Jane Doe"},
		Recipient: types.Recipient{Company: "Acme", Name: "Mr. Roe"},
		Body:      []string{"First paragraph.", "Second paragraph."},
	}

	docx, err := LetterDOCX(letter)
	require.NoError(t, err)

	doc := readDocxPart(t, docx, "word/document.xml")
	assert.Contains(t, doc, "Dear Mr. Roe,")
	assert.Contains(t, doc, "First paragraph.")
	assert.Contains(t, doc, "Sincerely,")
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "2020-01 – 2021-06", FormatDateRange("2020-01", "2021-06"))
	assert.Equal(t, "2020-01 – Present", FormatDateRange("2020-01", "present"))
	assert.Equal(t, "2020-01", FormatDateRange("2020-01", ""))
	assert.Equal(t, "", FormatDateRange("", ""))
}

type fakeRenderer struct {
	fail types.Format
}

func (f *fakeRenderer) Render(_ context.Context, _ *types.Resume, format types.Format) ([]byte, error) {
	if format == f.fail {
		return nil, errors.New("boom")
	}
	return []byte(string(format) + "-output"), nil
}

func TestExportAll_AllFormats(t *testing.T) {
	formats := []types.Format{types.FormatHTML, types.FormatLaTeX, types.FormatDOCX}
	results, err := ExportAll(context.Background(), &fakeRenderer{}, &types.Resume{}, formats)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []byte("html-output"), results[types.FormatHTML])
}

func TestExportAll_FirstErrorWins(t *testing.T) {
	formats := []types.Format{types.FormatHTML, types.FormatLaTeX}
	results, err := ExportAll(context.Background(), &fakeRenderer{fail: types.FormatLaTeX}, &types.Resume{}, formats)
	assert.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "boom")
}

func TestPaperSize(t *testing.T) {
	w, h := paperSize(PageSizeLetter)
	assert.Equal(t, 8.5, w)
	assert.Equal(t, 11.0, h)

	w, h = paperSize("")
	assert.Equal(t, 8.27, w)
	assert.Equal(t, 11.69, h)
}

func TestBrowserError_Unwrap(t *testing.T) {
	cause := errors.New("exec not found")
	err := &BrowserError{Message: "failed to start", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to start")
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a | b", joinNonEmpty(" | ", "a", "", "b"))
	assert.Equal(t, "", joinNonEmpty(" | ", "", " "))
	assert.False(t, strings.HasSuffix(joinNonEmpty(", ", "x", ""), ", "))
}
