package ats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// Bullet length bounds in characters. Below the minimum a bullet reads as a
// fragment; above the maximum it wraps past two lines in most layouts.
const (
	minBulletChars = 30
	maxBulletChars = 220
)

// actionVerbs are common resume action verbs in lowercase base or past form.
// A bullet leading with one of these reads as an accomplishment rather than
// a duty description.
var actionVerbs = map[string]bool{
	"achieved": true, "architected": true, "automated": true, "built": true,
	"created": true, "cut": true, "decreased": true, "delivered": true,
	"designed": true, "developed": true, "drove": true, "eliminated": true,
	"engineered": true, "established": true, "expanded": true, "grew": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "maintained": true, "managed": true, "mentored": true,
	"migrated": true, "optimized": true, "owned": true, "reduced": true,
	"refactored": true, "released": true, "resolved": true, "scaled": true,
	"shipped": true, "streamlined": true, "tested": true, "wrote": true,
}

// checkBullets scores bullet quality: action-verb leads, quantified results,
// and sane lengths. Each sub-signal is the fraction of bullets satisfying it.
func (s *Scorer) checkBullets(resume *types.Resume) types.CheckResult {
	result := types.CheckResult{
		ID:     "bullet_quality",
		Label:  "Bullet quality",
		Weight: bulletWeight,
	}

	bullets := resume.AllBullets()
	if len(bullets) == 0 {
		result.Findings = append(result.Findings, "no bullet points found")
		return result
	}

	verbLed, quantified, sized := 0, 0, 0
	for _, b := range bullets {
		if leadsWithActionVerb(b) {
			verbLed++
		}
		if hasQuantification(b) {
			quantified++
		}
		if n := len(b); n >= minBulletChars && n <= maxBulletChars {
			sized++
		}
	}

	n := float64(len(bullets))
	verbScore := float64(verbLed) / n
	quantScore := float64(quantified) / n
	sizeScore := float64(sized) / n

	// Quantification is the weakest expectation: not every bullet has a
	// number, so half the bullets quantified already earns full credit.
	quantScore = clamp01(quantScore * 2)

	result.Score = clamp01(0.4*verbScore + 0.3*quantScore + 0.3*sizeScore)
	result.Passed = result.Score >= 0.6

	if verbLed < len(bullets) {
		result.Findings = append(result.Findings,
			fmt.Sprintf("%d of %d bullets do not lead with an action verb", len(bullets)-verbLed, len(bullets)))
	}
	if quantified == 0 {
		result.Findings = append(result.Findings, "no bullet quantifies an outcome (numbers, percentages)")
	}
	if sized < len(bullets) {
		result.Findings = append(result.Findings,
			fmt.Sprintf("%d of %d bullets are shorter than %d or longer than %d characters",
				len(bullets)-sized, len(bullets), minBulletChars, maxBulletChars))
	}
	return result
}

func leadsWithActionVerb(bullet string) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,;:"))
	return actionVerbs[first]
}

func hasQuantification(bullet string) bool {
	for _, r := range bullet {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return strings.ContainsRune(bullet, '%')
}
