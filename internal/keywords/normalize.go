// Package keywords provides keyword extraction from job descriptions and
// skill-name normalization used by the ATS scorer.
package keywords

import "strings"

// aliases maps common spelling variants to a canonical token.
// Matching is case-insensitive; canonical forms are lowercase so they compare
// directly against tokenized resume text.
var aliases = map[string]string{
	"golang":   "go",
	"go lang":  "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"react.js": "react",
	"reactjs":  "react",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"node.js":  "nodejs",
	"node":     "nodejs",
	"postgres": "postgresql",
	"psql":     "postgresql",
	"gcp":      "google cloud",
	"ci/cd":    "ci/cd",
	"cicd":     "ci/cd",
	"ml":       "machine learning",

	"amazon web services": "aws",
}

// Normalize lowercases a token, trims surrounding punctuation, and resolves
// known aliases. Returns "" for tokens that normalize to nothing.
func Normalize(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.Trim(t, ".,;:!?()[]{}\"'`")
	if t == "" {
		return ""
	}
	if canonical, ok := aliases[t]; ok {
		return canonical
	}
	return t
}

// NormalizeAll normalizes and deduplicates a list of tokens, preserving the
// order of first occurrence.
func NormalizeAll(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		n := Normalize(tok)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
