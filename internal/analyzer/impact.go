package analyzer

import (
	"fmt"
	"strings"

	"atscore/internal/textsim"
	"atscore/internal/types"
)

// AnalyzeImpact scores quantified achievements and job relevance. The
// dimension is defined only relative to a target role: with no job title
// and no job description the score is forced to 0, not skipped.
func AnalyzeImpact(doc *types.SegmentedDocument, jobTitle, jobDescription string, cfg Config) types.CategoryResult {
	if strings.TrimSpace(jobTitle) == "" && strings.TrimSpace(jobDescription) == "" {
		return newResult(CategoryImpact, 0, cfg.Status,
			[]string{"No target job context was supplied; impact cannot be scored against a role"},
			[]string{"Provide a job title or job description to measure quantitative impact"})
	}

	ic := cfg.Impact
	score := ic.BaseScore
	var issues, recommendations []string

	// Quantified achievements: percentages, counts, currency, durations
	quantified := countQuantifiedMatches(doc.RawText)
	if quantified < ic.MinQuantified {
		score -= ic.FewQuantifiedPenalty
		issues = append(issues, fmt.Sprintf(
			"Only %d quantified achievements found (want at least %d)", quantified, ic.MinQuantified))
		recommendations = append(recommendations,
			"Add measurable results: percentages, counts, monetary amounts, or durations")
	}

	// Relevance: fraction of job keywords present in the document
	jobTokens := distinct(textsim.TokenizeMinLength(jobDescription, 4))
	if len(jobTokens) > 0 {
		docLower := strings.ToLower(doc.RawText)
		matched := 0
		for _, tok := range jobTokens {
			if strings.Contains(docLower, tok) {
				matched++
			}
		}
		relevance := float64(matched) / float64(len(jobTokens))
		if relevance < ic.MinRelevance {
			score -= ic.LowRelevancePenalty
			issues = append(issues, fmt.Sprintf(
				"Only %d of %d job description keywords appear in the resume (%.0f%%)",
				matched, len(jobTokens), relevance*100))
			recommendations = append(recommendations,
				"Mirror the vocabulary of the target role in your achievements")
		}
	}

	// Implementation vocabulary
	if !containsAny(strings.ToLower(doc.RawText), projectVocabulary) {
		score -= ic.MissingProjectPenalty
		issues = append(issues, "No project or implementation vocabulary detected")
		recommendations = append(recommendations,
			"Describe concrete projects you implemented, built, or delivered")
	}

	return newResult(CategoryImpact, score, cfg.Status, issues, recommendations)
}

// countQuantifiedMatches counts distinct quantified-achievement matches
// across all patterns
func countQuantifiedMatches(text string) int {
	seen := make(map[string]struct{})
	for _, pattern := range quantifiedPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			seen[strings.TrimSpace(match)] = struct{}{}
		}
	}
	return len(seen)
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func distinct(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
