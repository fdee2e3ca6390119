package ats

import (
	"fmt"
	"strings"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/keywords"
	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// checkKeywords measures how much of the job description's keyword weight the
// resume covers. Returns the check result plus matched and missing terms,
// both in rank order.
func (s *Scorer) checkKeywords(resume *types.Resume, jobDescription string) (types.CheckResult, []string, []string) {
	result := types.CheckResult{
		ID:     "keyword_match",
		Label:  "Keyword match",
		Weight: keywordWeight,
	}

	targets := keywords.Extract(jobDescription, s.opts.KeywordLimit)
	if len(targets) == 0 {
		result.Score = 1.0
		result.Passed = true
		result.Findings = append(result.Findings, "no keywords found in job description")
		return result, nil, nil
	}

	// Normalized resume text; substring matching covers multi-word terms
	// and skills embedded in bullet prose.
	resumeText := normalizeText(resume.PlainText())

	var matched, missing []string
	matchedWeight, totalWeight := 0.0, 0.0
	for _, kw := range targets {
		totalWeight += kw.Weight
		if containsTerm(resumeText, kw.Term) {
			matchedWeight += kw.Weight
			matched = append(matched, kw.Term)
		} else {
			missing = append(missing, kw.Term)
		}
	}

	result.Score = clamp01(matchedWeight / totalWeight)
	result.Passed = result.Score >= 0.5
	result.Findings = append(result.Findings,
		fmt.Sprintf("matched %d of %d job keywords", len(matched), len(targets)))
	if len(missing) > 0 {
		top := missing
		if len(top) > 5 {
			top = top[:5]
		}
		result.Findings = append(result.Findings,
			"consider adding: "+strings.Join(top, ", "))
	}
	return result, matched, missing
}

// normalizeText lowercases text and normalizes each token in place so alias
// forms in the resume (e.g. "Golang") match canonical keywords ("go").
func normalizeText(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	for i, f := range fields {
		fields[i] = keywords.Normalize(f)
	}
	return " " + strings.Join(fields, " ") + " "
}

// containsTerm reports whether the term occurs in the normalized text on
// token boundaries. Multi-word terms match as phrases.
func containsTerm(normalizedText, term string) bool {
	return strings.Contains(normalizedText, " "+term+" ")
}
