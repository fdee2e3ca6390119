package keywords

import (
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Keyword is a ranked term extracted from a job description.
type Keyword struct {
	Term   string  `json:"term"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"` // 0-1, relative to the top-ranked term
}

// DefaultLimit caps how many keywords Extract returns when the caller passes
// a non-positive limit.
const DefaultLimit = 25

// phrases are multi-word technical terms matched before single-token
// extraction so they are not split apart.
var phrases = []string{
	"machine learning", "deep learning", "data engineering", "data science",
	"google cloud", "unit testing", "continuous integration",
	"continuous delivery", "project management", "product management",
	"rest api", "rest apis", "distributed systems", "version control",
	"object oriented", "test driven", "agile development",
}

// Extract tokenizes a plain-text job description and returns ranked keywords.
// Ranking combines term frequency with a position bonus: terms appearing in
// the first fifth of the text (title, intro, requirements header) rank above
// equally frequent terms from the tail.
func Extract(text string, limit int) []Keyword {
	if limit <= 0 {
		limit = DefaultLimit
	}
	lower := strings.ToLower(text)

	counts := make(map[string]int)
	early := make(map[string]bool) // first seen in the leading fifth of the text

	// Multi-word phrases first, then mask them so their constituent words
	// are not double counted.
	for _, p := range phrases {
		n := strings.Count(lower, p)
		if n == 0 {
			continue
		}
		canonical := Normalize(p)
		counts[canonical] += n
		if strings.Index(lower, p) <= len(lower)/5 {
			early[canonical] = true
		}
		lower = strings.ReplaceAll(lower, p, " ")
	}

	tokens := strings.FieldsFunc(lower, splitToken)
	for i, raw := range tokens {
		tok := Normalize(raw)
		if tok == "" || len(tok) < 2 || stopwords[tok] || isNumeric(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen && i <= len(tokens)/5 {
			early[tok] = true
		}
		counts[tok]++
	}

	if len(counts) == 0 {
		return nil
	}

	type scored struct {
		term  string
		score float64
		count int
	}
	ranked := make([]scored, 0, len(counts))
	for term, count := range counts {
		score := float64(count)
		if early[term] {
			score *= 1.5
		}
		ranked = append(ranked, scored{term: term, score: score, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := ranked[0].score
	out := make([]Keyword, len(ranked))
	for i, s := range ranked {
		out[i] = Keyword{Term: s.term, Count: s.count, Weight: s.score / top}
	}
	return out
}

// FromHTML strips markup from an HTML job posting and returns its visible
// text. Script, style, and chrome elements (nav, header, footer) are dropped.
func FromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Document without a body tag; fall back to the whole tree.
		text = doc.Text()
	}
	return collapseWhitespace(text), nil
}

func splitToken(r rune) bool {
	// Keep characters that appear inside tech terms: c++, ci/cd, .net, c#.
	switch r {
	case '+', '#', '/', '.', '-':
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '-' {
			return false
		}
	}
	return true
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
