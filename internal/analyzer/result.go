// Package analyzer holds the four heuristic category analyzers. All of
// them are pure functions over an immutable SegmentedDocument: same input,
// same result, on every call.
package analyzer

import "atscore/internal/types"

// Category display names
const (
	CategoryImpact       = "Quantitative Impact"
	CategoryLength       = "Resume Length"
	CategoryCompleteness = "Completeness"
	CategoryKeyword      = "Keyword Relevance"
)

// clampScore bounds a score to [0, 100]
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// statusFor maps a score to its qualitative tier using the given thresholds
func statusFor(score int, t StatusThresholds) types.CategoryStatus {
	switch {
	case score >= t.Excellent:
		return types.StatusExcellent
	case score >= t.Good:
		return types.StatusGood
	case score >= t.NeedsImprovement:
		return types.StatusNeedsImprovement
	default:
		return types.StatusPoor
	}
}

// BuildResult assembles a CategoryResult from an externally supplied score,
// applying the same clamping and status derivation as the rule-based
// analyzers. Used when a validated collaborator insight replaces a
// rule-based result.
func BuildResult(category string, score int, t StatusThresholds, issues, recommendations []string) types.CategoryResult {
	return newResult(category, score, t, issues, recommendations)
}

// newResult assembles a CategoryResult with a clamped score and derived
// status. Issues and recommendations are never nil so the JSON form is
// stable.
func newResult(category string, score int, t StatusThresholds, issues, recommendations []string) types.CategoryResult {
	if issues == nil {
		issues = []string{}
	}
	if recommendations == nil {
		recommendations = []string{}
	}
	clamped := clampScore(score)
	return types.CategoryResult{
		Category:        category,
		Score:           clamped,
		Status:          statusFor(clamped, t),
		Issues:          issues,
		Recommendations: recommendations,
	}
}
