package ats

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// maxSummaryChars bounds the professional summary; screeners truncate long
// free-text fields.
const maxSummaryChars = 600

var phonePattern = regexp.MustCompile(`^[+()\d][\d\s().-]{6,19}$`)

// checkFormatting verifies machine-parseable structure: well-formed dates,
// chronological consistency, and a summary within bounds.
func (s *Scorer) checkFormatting(resume *types.Resume) types.CheckResult {
	result := types.CheckResult{
		ID:     "formatting",
		Label:  "Formatting",
		Weight: formattingWeight,
	}

	checks, passed := 0, 0

	for i, e := range resume.Experience {
		checks++
		if err := validateDateRange(e.StartDate, e.EndDate); err != nil {
			result.Findings = append(result.Findings,
				fmt.Sprintf("experience[%d] (%s): %v", i, e.Company, err))
		} else {
			passed++
		}
	}

	checks++
	if len(resume.Summary) <= maxSummaryChars {
		passed++
	} else {
		result.Findings = append(result.Findings,
			fmt.Sprintf("summary is %d characters; screeners may truncate after %d", len(resume.Summary), maxSummaryChars))
	}

	result.Score = float64(passed) / float64(checks)
	result.Passed = passed == checks
	return result
}

// checkContact verifies the header fields recruiters auto-import: a name, a
// parseable email address, and a plausible phone number.
func (s *Scorer) checkContact(resume *types.Resume) types.CheckResult {
	result := types.CheckResult{
		ID:     "contact_info",
		Label:  "Contact information",
		Weight: contactWeight,
	}

	passed, checks := 0, 3

	if strings.TrimSpace(resume.Contact.Name) != "" {
		passed++
	} else {
		result.Findings = append(result.Findings, "name is missing")
	}

	if _, err := mail.ParseAddress(resume.Contact.Email); err == nil && resume.Contact.Email != "" {
		passed++
	} else {
		result.Findings = append(result.Findings, "email is missing or malformed")
	}

	if phonePattern.MatchString(strings.TrimSpace(resume.Contact.Phone)) {
		passed++
	} else {
		result.Findings = append(result.Findings, "phone number is missing or malformed")
	}

	result.Score = float64(passed) / float64(checks)
	result.Passed = passed == checks
	return result
}

// validateDateRange checks "YYYY-MM" dates and start <= end ordering.
// EndDate may be empty or "present".
func validateDateRange(start, end string) error {
	startDate, err := time.Parse("2006-01", start)
	if err != nil {
		return fmt.Errorf("start date %q is not YYYY-MM", start)
	}
	if end == "" || strings.EqualFold(end, "present") {
		return nil
	}
	endDate, err := time.Parse("2006-01", end)
	if err != nil {
		return fmt.Errorf("end date %q is not YYYY-MM", end)
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("end date %s precedes start date %s", end, start)
	}
	return nil
}
