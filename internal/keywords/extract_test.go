package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Aliases(t *testing.T) {
	assert.Equal(t, "go", Normalize("Golang"))
	assert.Equal(t, "kubernetes", Normalize("K8s"))
	assert.Equal(t, "postgresql", Normalize("Postgres"))
	assert.Equal(t, "javascript", Normalize("JS"))
}

func TestNormalize_TrimsPunctuation(t *testing.T) {
	assert.Equal(t, "python", Normalize("  Python, "))
	assert.Equal(t, "c++", Normalize("C++"))
	assert.Equal(t, "", Normalize("..."))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeAll_Dedupes(t *testing.T) {
	got := NormalizeAll([]string{"Go", "golang", "SQL", "sql", ""})
	assert.Equal(t, []string{"go", "sql"}, got)
}

func TestExtract_RanksFrequentTerms(t *testing.T) {
	text := strings.Repeat("kubernetes ", 5) + strings.Repeat("terraform ", 3) + "helm"
	kws := Extract(text, 10)
	require.NotEmpty(t, kws)
	assert.Equal(t, "kubernetes", kws[0].Term)
	assert.Equal(t, 5, kws[0].Count)
	assert.InDelta(t, 1.0, kws[0].Weight, 1e-9)
}

func TestExtract_DropsStopwordsAndNumbers(t *testing.T) {
	kws := Extract("the and with 2024 12345 go go go", 10)
	require.Len(t, kws, 1)
	assert.Equal(t, "go", kws[0].Term)
}

func TestExtract_MultiWordPhrases(t *testing.T) {
	text := "We need machine learning expertise. Machine learning pipelines in production."
	kws := Extract(text, 10)

	var found bool
	for _, kw := range kws {
		if kw.Term == "machine learning" {
			found = true
			assert.Equal(t, 2, kw.Count)
		}
		// Constituents must not leak out as separate keywords.
		assert.NotEqual(t, "machine", kw.Term)
		assert.NotEqual(t, "learning", kw.Term)
	}
	assert.True(t, found, "expected multi-word phrase to be extracted")
}

func TestExtract_RespectsLimit(t *testing.T) {
	kws := Extract("go rust python java kotlin swift ruby scala perl haskell elixir", 3)
	assert.Len(t, kws, 3)
}

func TestExtract_EmptyInput(t *testing.T) {
	assert.Nil(t, Extract("", 10))
	assert.Nil(t, Extract("the and of", 10))
}

func TestFromHTML_StripsMarkup(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
		<body><nav>Home | About</nav>
		<h1>Senior Go Engineer</h1>
		<p>Build distributed systems with Go and PostgreSQL.</p>
		<script>track();</script>
		<footer>© Acme</footer></body></html>`

	text, err := FromHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "PostgreSQL")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Home | About")
}

func TestFromHTML_PlainFragment(t *testing.T) {
	text, err := FromHTML("<p>Go   and \n\n SQL</p>")
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL", text)
}
