package benchmark

import (
	"math"

	"atscore/internal/types"
)

// CategoryScore pairs a raw category score with the benchmark weight key
// it aggregates under
type CategoryScore struct {
	Key      string
	Category string
	Score    int
}

// Improvement potential caps. The higher cap applies only when an external
// collaborator flags high urgency.
const (
	improvementCap       = 25.0
	improvementCapUrgent = 30.0
)

// Aggregate computes the industry-benchmarked composite for the four
// category scores
func (r *Registry) Aggregate(scores []CategoryScore, industry string, highUrgency bool) types.CompositeScore {
	bench := r.Profile(industry)

	rawSum := 0
	weightedSum := 0.0
	breakdown := make([]types.CategoryBreakdown, 0, len(scores))
	for _, cs := range scores {
		weight := bench.Weights[cs.Key]
		weighted := float64(cs.Score) * weight
		rawSum += cs.Score
		weightedSum += weighted
		breakdown = append(breakdown, types.CategoryBreakdown{
			Category:      cs.Category,
			RawScore:      cs.Score,
			WeightedScore: round2(weighted),
			Weight:        weight,
			Percentile:    round2(percentile(float64(cs.Score), bench)),
			Grade:         Grade(cs.Score),
		})
	}

	overall := 0
	if len(scores) > 0 {
		overall = int(math.Round(float64(rawSum) / float64(len(scores))))
	}
	weightedScore := int(math.Round(weightedSum))

	pct := percentile(float64(weightedScore), bench)

	potentialCap := improvementCap
	if highUrgency {
		potentialCap = improvementCapUrgent
	}
	potential := math.Min(float64(100-weightedScore), potentialCap)
	if potential < 0 {
		potential = 0
	}

	return types.CompositeScore{
		OverallScore:       overall,
		WeightedScore:      weightedScore,
		IndustryPercentile: round2(pct),
		OverallGrade:       Grade(weightedScore),
		Breakdown:          breakdown,
		CompetitiveAnalysis: types.CompetitiveAnalysis{
			VsAverageCandidate: round2(float64(weightedScore) - bench.AverageScore),
			VsTopPercentile:    round2(float64(weightedScore) - bench.TopPercentileScore),
			MarketPosition:     MarketPosition(pct),
		},
		ImprovementPotential: potential,
	}
}

// percentile maps a score onto the benchmark distribution piecewise
// linearly: below average covers 0-50, average to top covers 50-90, and
// beyond top scales into 90-100.
func percentile(score float64, bench types.IndustryBenchmark) float64 {
	switch {
	case score >= bench.TopPercentileScore:
		span := 100 - bench.TopPercentileScore
		if span <= 0 {
			return 100
		}
		pct := 90 + (score-bench.TopPercentileScore)/span*10
		return math.Min(pct, 100)
	case score >= bench.AverageScore:
		return 50 + (score-bench.AverageScore)/(bench.TopPercentileScore-bench.AverageScore)*40
	default:
		if bench.AverageScore <= 0 {
			return 0
		}
		pct := score / bench.AverageScore * 50
		return math.Max(pct, 0)
	}
}

// Grade maps a 0-100 score onto a letter grade. Non-decreasing in score.
func Grade(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	case score >= 80:
		return "B"
	case score >= 75:
		return "C+"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// MarketPosition maps a percentile onto a qualitative tier
func MarketPosition(percentile float64) string {
	switch {
	case percentile >= 90:
		return "Top 10%"
	case percentile >= 75:
		return "Top 25%"
	case percentile >= 60:
		return "Above Average"
	case percentile >= 40:
		return "Average"
	default:
		return "Below Average"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
