package ats

import (
	"fmt"
	"strings"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// minSummaryWords is the threshold below which a summary counts as trivial.
const minSummaryWords = 8

// checkSections verifies the sections automated screeners expect: summary,
// work experience, education, and skills. Each present, non-trivial section
// contributes equally.
func (s *Scorer) checkSections(resume *types.Resume) types.CheckResult {
	result := types.CheckResult{
		ID:     "section_completeness",
		Label:  "Section completeness",
		Weight: sectionWeight,
	}

	type section struct {
		name    string
		present bool
	}
	sections := []section{
		{"summary", len(strings.Fields(resume.Summary)) >= minSummaryWords},
		{"experience", hasExperienceContent(resume)},
		{"education", len(resume.Education) > 0},
		{"skills", len(resume.AllSkills()) > 0},
	}

	present := 0
	for _, sec := range sections {
		if sec.present {
			present++
			continue
		}
		result.Findings = append(result.Findings,
			fmt.Sprintf("missing or empty section: %s", sec.name))
	}

	result.Score = float64(present) / float64(len(sections))
	result.Passed = present == len(sections)
	return result
}

func hasExperienceContent(resume *types.Resume) bool {
	for _, e := range resume.Experience {
		if e.Company != "" && len(e.Bullets) > 0 {
			return true
		}
	}
	return false
}
