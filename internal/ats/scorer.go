// Package ats implements the heuristic ATS (Applicant Tracking System)
// compatibility scorer. The score estimates how well a resume survives
// automated keyword screening and recruiter skim reading.
package ats

import (
	"math"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// Weights for scoring components. They sum to 1.0; the keyword weight is
// redistributed pro-rata over the remaining checks when no job description
// is supplied.
const (
	keywordWeight    = 0.35
	sectionWeight    = 0.20
	bulletWeight     = 0.20
	formattingWeight = 0.15
	contactWeight    = 0.10
)

// Options tune the scorer.
type Options struct {
	// KeywordLimit caps how many job-description keywords are matched
	// against the resume. Zero means the extractor default.
	KeywordLimit int
}

// Scorer computes ATS compatibility reports.
type Scorer struct {
	opts Options
}

// NewScorer creates a scorer with the given options.
func NewScorer(opts Options) *Scorer {
	return &Scorer{opts: opts}
}

// Score evaluates a resume, optionally against a plain-text job description.
// Each check produces a 0-1 score and findings; the total is the weighted sum
// scaled to 0-100.
func (s *Scorer) Score(resume *types.Resume, jobDescription string) *types.Report {
	report := &types.Report{}

	checks := []types.CheckResult{
		s.checkSections(resume),
		s.checkBullets(resume),
		s.checkFormatting(resume),
		s.checkContact(resume),
	}

	if jobDescription != "" {
		kw, matched, missing := s.checkKeywords(resume, jobDescription)
		checks = append([]types.CheckResult{kw}, checks...)
		report.MatchedKeywords = matched
		report.MissingKeywords = missing
	} else {
		// Without a job description the keyword check cannot run; spread
		// its weight over the remaining checks so the scale stays 0-100.
		scale := 1.0 / (1.0 - keywordWeight)
		for i := range checks {
			checks[i].Weight = round2(checks[i].Weight * scale)
		}
	}

	total := 0.0
	for _, c := range checks {
		total += c.Weight * c.Score
	}
	report.Checks = checks
	report.Score = int(math.Round(clamp01(total) * 100))
	return report
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
