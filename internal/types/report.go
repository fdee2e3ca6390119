package types

// Report is the ATS compatibility report produced by the scorer.
// Score is the weighted total on a 0-100 scale; each check carries its own
// 0-1 score and the findings that explain it.
type Report struct {
	Score           int           `json:"score"`
	Checks          []CheckResult `json:"checks"`
	MatchedKeywords []string      `json:"matched_keywords,omitempty"`
	MissingKeywords []string      `json:"missing_keywords,omitempty"`
}

// CheckResult is the outcome of a single scoring heuristic.
type CheckResult struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Weight   float64  `json:"weight"`
	Score    float64  `json:"score"` // 0-1
	Passed   bool     `json:"passed"`
	Findings []string `json:"findings,omitempty"`
}

// Check looks up a check result by ID. Returns nil if absent.
func (r *Report) Check(id string) *CheckResult {
	for i := range r.Checks {
		if r.Checks[i].ID == id {
			return &r.Checks[i]
		}
	}
	return nil
}
