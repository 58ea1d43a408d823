package analyzer

import (
	"fmt"
	"math"

	"atscore/internal/types"
)

// AnalyzeLength scores the document word count against the optimal band.
// Insufficiency is penalized harder than verbosity.
func AnalyzeLength(doc *types.SegmentedDocument, cfg Config) types.CategoryResult {
	lc := cfg.Length
	words := doc.Metadata.WordCount

	if words >= lc.OptimalMin && words <= lc.OptimalMax {
		return newResult(CategoryLength, 100, cfg.Status, nil, nil)
	}

	var issues, recommendations []string
	score := 100

	if words < lc.OptimalMin {
		// Penalty scales with the severity of the shortfall
		shortfall := float64(lc.OptimalMin-words) / float64(lc.OptimalMin)
		score -= int(math.Round(shortfall * float64(lc.ShortMaxPenalty)))
		issues = append(issues, fmt.Sprintf(
			"Resume is too short: %d words (optimal range is %d-%d)",
			words, lc.OptimalMin, lc.OptimalMax))
		recommendations = append(recommendations,
			"Expand your experience and skills sections with concrete detail")
	} else {
		over := (words - lc.OptimalMax) / 100
		penalty := over * lc.OverPenaltyPer100
		if penalty > lc.OverMaxPenalty {
			penalty = lc.OverMaxPenalty
		}
		if penalty < lc.OverPenaltyPer100 {
			penalty = lc.OverPenaltyPer100
		}
		score -= penalty
		issues = append(issues, fmt.Sprintf(
			"Resume is long: %d words (optimal range is %d-%d)",
			words, lc.OptimalMin, lc.OptimalMax))
		recommendations = append(recommendations,
			"Trim older or less relevant entries to keep the resume focused")
	}

	return newResult(CategoryLength, score, cfg.Status, issues, recommendations)
}
