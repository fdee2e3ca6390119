package template

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/render"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		Title: "Backend Engineer",
		Contact: types.Contact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Portland, OR",
			Links:    []types.Link{{Label: "GitHub", URL: "https://github.com/janedoe"}},
		},
		Summary: "Backend engineer focused on data & infrastructure.",
		Experience: []types.Experience{{
			Company:   "Acme",
			Role:      "Engineer",
			StartDate: "2020-01",
			EndDate:   "present",
			Bullets:   []string{"Cut p99 latency by 40%"},
		}},
		Education: []types.Education{{
			Institution: "State University",
			Degree:      "BSc",
			Field:       "Computer Science",
			StartDate:   "2014-09",
			EndDate:     "2018-06",
		}},
		SkillGroups: []types.SkillGroup{{Label: "Languages", Skills: []string{"Go", "SQL"}}},
	}
}

func TestNewRegistry_RegistersBuiltins(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	infos := reg.List()
	require.Len(t, infos, 3)
	// sorted by ID
	assert.Equal(t, "classic", infos[0].ID)
	assert.Equal(t, "minimal", infos[1].ID)
	assert.Equal(t, "modern", infos[2].ID)
	for _, info := range infos {
		assert.True(t, info.Builtin)
		assert.Contains(t, info.Formats, types.FormatDOCX)
	}
	assert.Equal(t, "classic", reg.DefaultID())
}

func TestRegistry_New_UnknownTemplate(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	_, err = reg.New("nonexistent")
	var unknown *UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistent", unknown.ID)
}

func TestRegistry_New_EmptyIDUsesDefault(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	renderer, err := reg.New("")
	require.NoError(t, err)
	assert.Equal(t, "classic", renderer.Info().ID)
}

func TestRegistry_SetDefault(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	require.NoError(t, reg.SetDefault("minimal"))
	assert.Equal(t, "minimal", reg.DefaultID())

	err = reg.SetDefault("nope")
	var unknown *UnknownTemplateError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "minimal", reg.DefaultID())
}

func TestLayoutRenderer_HTML(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)
	renderer, err := reg.New("classic")
	require.NoError(t, err)

	out, err := renderer.Render(context.Background(), sampleResume(), types.FormatHTML)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "2020-01 – Present")
	assert.Contains(t, html, "Go, SQL")
	// html/template escapes user content
	assert.Contains(t, html, "data &amp; infrastructure")
}

func TestLayoutRenderer_HTMLEscapesMarkup(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)
	renderer, err := reg.New("classic")
	require.NoError(t, err)

	resume := sampleResume()
	resume.Summary = "<script>alert(1)</script>"
	out, err := renderer.Render(context.Background(), resume, types.FormatHTML)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>alert(1)</script>")
}

func TestLayoutRenderer_LaTeX(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)
	renderer, err := reg.New("classic")
	require.NoError(t, err)

	out, err := renderer.Render(context.Background(), sampleResume(), types.FormatLaTeX)
	require.NoError(t, err)

	tex := string(out)
	assert.Contains(t, tex, `\begin{document}`)
	assert.Contains(t, tex, "Jane Doe")
	assert.Contains(t, tex, `data \& infrastructure`)
	assert.Contains(t, tex, `40\%`)
}

func TestLayoutRenderer_UnsupportedFormat(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)
	// modern has no LaTeX source
	renderer, err := reg.New("modern")
	require.NoError(t, err)
	assert.NotContains(t, renderer.Info().Formats, types.FormatLaTeX)

	_, err = renderer.Render(context.Background(), sampleResume(), types.FormatLaTeX)
	var formatErr *render.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestLayoutRenderer_DOCX(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)
	renderer, err := reg.New("modern")
	require.NoError(t, err)

	out, err := renderer.Render(context.Background(), sampleResume(), types.FormatDOCX)
	require.NoError(t, err)
	// zip magic
	assert.Equal(t, []byte("PK"), out[:2])
}

func TestNewRenderer_InvalidSource(t *testing.T) {
	_, err := NewRenderer(Layout{ID: "broken", Name: "Broken", HTML: "{{.Oops"}, PDFSettings{})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken", parseErr.TemplateID)
	assert.Equal(t, types.FormatHTML, parseErr.Format)
}

func TestRegistry_ReplaceCustom_ShadowsBuiltin(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	custom := Layout{ID: "classic", Name: "House Classic", HTML: "<p>{{.Contact.Name}}</p>"}
	require.NoError(t, reg.ReplaceCustom([]Factory{layoutFactory(custom, PDFSettings{})}))

	renderer, err := reg.New("classic")
	require.NoError(t, err)
	assert.Equal(t, "House Classic", renderer.Info().Name)
	assert.False(t, renderer.Info().Builtin)

	// clearing the custom set restores the builtin
	require.NoError(t, reg.ReplaceCustom(nil))
	renderer, err = reg.New("classic")
	require.NoError(t, err)
	assert.True(t, renderer.Info().Builtin)
}

func TestRegistry_ReplaceCustom_InvalidKeepsPrevious(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	good := Layout{ID: "house", Name: "House", HTML: "<p>{{.Contact.Name}}</p>"}
	require.NoError(t, reg.ReplaceCustom([]Factory{layoutFactory(good, PDFSettings{})}))

	bad := Layout{ID: "house", Name: "House", HTML: "{{.Oops"}
	err = reg.ReplaceCustom([]Factory{layoutFactory(bad, PDFSettings{})})
	require.Error(t, err)

	// previous set survives the failed swap
	renderer, err := reg.New("house")
	require.NoError(t, err)
	assert.Equal(t, "House", renderer.Info().Name)
}

func writeBundle(t *testing.T, dir, id string, files map[string]string) {
	t.Helper()
	bundle := filepath.Join(dir, id)
	require.NoError(t, os.MkdirAll(bundle, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(bundle, name), []byte(content), 0o644))
	}
}

func TestLoadDir_LoadsBundles(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "corporate", map[string]string{
		"template.yaml": "id: corporate\nname: Corporate\nhtml: layout.html\n",
		"layout.html":   "<h1>{{.Contact.Name}}</h1>",
	})
	// directory without a manifest is ignored
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))

	factories, err := LoadDir(dir, PDFSettings{})
	require.NoError(t, err)
	require.Len(t, factories, 1)

	renderer, err := factories[0]()
	require.NoError(t, err)
	assert.Equal(t, "corporate", renderer.Info().ID)
	assert.False(t, renderer.Info().Builtin)

	out, err := renderer.Render(context.Background(), sampleResume(), types.FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Jane Doe")
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	factories, err := LoadDir(filepath.Join(t.TempDir(), "nope"), PDFSettings{})
	require.NoError(t, err)
	assert.Empty(t, factories)
}

func TestLoadDir_InvalidManifest(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "broken", map[string]string{
		"template.yaml": "name: No ID\nhtml: layout.html\n",
		"layout.html":   "<p>x</p>",
	})

	_, err := LoadDir(dir, PDFSettings{})
	var manifestErr *ManifestError
	require.ErrorAs(t, err, &manifestErr)
	assert.Contains(t, manifestErr.Message, "id")
}

func TestLoadDir_ReferenceEscapesBundle(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "sneaky", map[string]string{
		"template.yaml": "id: sneaky\nname: Sneaky\nhtml: ../../etc/passwd\n",
	})

	_, err := LoadDir(dir, PDFSettings{})
	var manifestErr *ManifestError
	require.ErrorAs(t, err, &manifestErr)
	assert.Contains(t, manifestErr.Message, "escapes bundle")
}

func TestWatcher_InitialLoadAndReload(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "corporate", map[string]string{
		"template.yaml": "id: corporate\nname: Corporate\nhtml: layout.html\n",
		"layout.html":   "<h1>{{.Contact.Name}}</h1>",
	})

	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)
	w, err := NewWatcher(reg, dir, PDFSettings{}, zap.NewNop())
	require.NoError(t, err)

	_, err = reg.New("corporate")
	require.NoError(t, err)

	// breaking a bundle must not evict the loaded set
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corporate", "template.yaml"), []byte("id: [broken"), 0o644))
	require.Error(t, w.reload())
	_, err = reg.New("corporate")
	assert.NoError(t, err)

	// fixing it swaps the new definition in
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corporate", "template.yaml"),
		[]byte("id: corporate\nname: Corporate v2\nhtml: layout.html\n"), 0o644))
	require.NoError(t, w.reload())
	renderer, err := reg.New("corporate")
	require.NoError(t, err)
	assert.Equal(t, "Corporate v2", renderer.Info().Name)
}

func TestLetterRenderer_HTML(t *testing.T) {
	r, err := NewLetterRenderer(PDFSettings{})
	require.NoError(t, err)

	letter := &types.CoverLetter{
		Contact:   types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
		Recipient: types.Recipient{Company: "Acme"},
		Body:      []string{"I am writing to apply."},
	}
	out, err := r.Render(context.Background(), letter, types.FormatHTML)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Dear Hiring Manager,")
	assert.Contains(t, html, "I am writing to apply.")
	assert.Contains(t, html, "Sincerely,")
}

func TestLetterRenderer_LaTeX(t *testing.T) {
	r, err := NewLetterRenderer(PDFSettings{})
	require.NoError(t, err)

	letter := &types.CoverLetter{
		Contact:   types.Contact{Name: "Jane Doe"},
		Recipient: types.Recipient{Name: "Dr. Roe", Company: "R&D Labs"},
		Body:      []string{"100% committed."},
	}
	out, err := r.Render(context.Background(), letter, types.FormatLaTeX)
	require.NoError(t, err)

	tex := string(out)
	assert.Contains(t, tex, "Dear Dr. Roe,")
	assert.Contains(t, tex, `R\&D Labs`)
	assert.Contains(t, tex, `100\% committed.`)
}

func TestLetterRenderer_UnsupportedFormat(t *testing.T) {
	r, err := NewLetterRenderer(PDFSettings{})
	require.NoError(t, err)

	_, err = r.Render(context.Background(), &types.CoverLetter{}, types.Format("odt"))
	var formatErr *render.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg, err := NewRegistry(PDFSettings{})
	require.NoError(t, err)

	dup := Layout{ID: "classic", Name: "Dup", HTML: "<p>x</p>"}
	err = reg.Register(layoutFactory(dup, PDFSettings{}))
	var dupErr *DuplicateTemplateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "classic", dupErr.ID)
}
