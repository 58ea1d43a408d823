// Package benchmark contextualizes raw category scores against industry
// reference profiles: weighted composites, percentiles, grades, and
// competitive position.
package benchmark

import (
	"fmt"
	"math"

	"atscore/internal/errors"
	"atscore/internal/types"
)

// Weight keys shared by every profile
const (
	WeightParsing  = "parsing"
	WeightKeywords = "keywords"
	WeightContent  = "content"
	WeightFormat   = "format"
)

// DefaultIndustry is used when no industry keyword scores above zero
const DefaultIndustry = "general"

// Registry holds validated benchmark profiles keyed by industry name
type Registry struct {
	profiles map[string]types.IndustryBenchmark
	order    []string
}

// NewRegistry validates every profile and fails fast on a structural
// violation: weights not summing to 1.0 is a configuration error, never a
// per-request error.
func NewRegistry(profiles []types.IndustryBenchmark) (*Registry, error) {
	r := &Registry{profiles: make(map[string]types.IndustryBenchmark, len(profiles))}
	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidBenchmark,
				fmt.Sprintf("invalid benchmark profile %q", p.Name), err)
		}
		r.profiles[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	if _, ok := r.profiles[DefaultIndustry]; !ok {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidBenchmark,
			"benchmark registry requires a \"general\" profile", nil)
	}
	return r, nil
}

// NewDefaultRegistry builds the registry from the built-in profiles.
// The built-ins are known valid; a failure here is a programming error.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(defaultProfiles())
	if err != nil {
		panic(err)
	}
	return r
}

// Profile returns the benchmark for the industry, falling back to the
// general profile for unknown names
func (r *Registry) Profile(industry string) types.IndustryBenchmark {
	if p, ok := r.profiles[industry]; ok {
		return p
	}
	return r.profiles[DefaultIndustry]
}

func validateProfile(p types.IndustryBenchmark) error {
	if p.Name == "" {
		return fmt.Errorf("profile name is empty")
	}
	sum := 0.0
	for _, key := range []string{WeightParsing, WeightKeywords, WeightContent, WeightFormat} {
		w, ok := p.Weights[key]
		if !ok {
			return fmt.Errorf("missing weight %q", key)
		}
		if w < 0 {
			return fmt.Errorf("negative weight %q", key)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("weights sum to %g, want 1.0", sum)
	}
	if p.AverageScore <= 0 || p.TopPercentileScore <= p.AverageScore {
		return fmt.Errorf("score anchors must satisfy 0 < average < top, got %g and %g",
			p.AverageScore, p.TopPercentileScore)
	}
	return nil
}

func defaultProfiles() []types.IndustryBenchmark {
	return []types.IndustryBenchmark{
		{
			Name:               "technology",
			AverageScore:       72,
			TopPercentileScore: 91,
			Weights: map[string]float64{
				WeightParsing:  0.20,
				WeightKeywords: 0.35,
				WeightContent:  0.30,
				WeightFormat:   0.15,
			},
			KeyFocusAreas: []string{
				"Technical skill keywords", "Quantified engineering impact", "Modern tooling",
			},
		},
		{
			Name:               "finance",
			AverageScore:       70,
			TopPercentileScore: 89,
			Weights: map[string]float64{
				WeightParsing:  0.25,
				WeightKeywords: 0.30,
				WeightContent:  0.30,
				WeightFormat:   0.15,
			},
			KeyFocusAreas: []string{
				"Regulatory and compliance terms", "Quantified portfolio results", "Certifications",
			},
		},
		{
			Name:               "healthcare",
			AverageScore:       68,
			TopPercentileScore: 88,
			Weights: map[string]float64{
				WeightParsing:  0.25,
				WeightKeywords: 0.30,
				WeightContent:  0.25,
				WeightFormat:   0.20,
			},
			KeyFocusAreas: []string{
				"Clinical terminology", "Licenses and certifications", "Patient outcomes",
			},
		},
		{
			Name:               "marketing",
			AverageScore:       69,
			TopPercentileScore: 88,
			Weights: map[string]float64{
				WeightParsing:  0.20,
				WeightKeywords: 0.30,
				WeightContent:  0.35,
				WeightFormat:   0.15,
			},
			KeyFocusAreas: []string{
				"Campaign metrics", "Channel and platform names", "Brand storytelling",
			},
		},
		{
			Name:               "general",
			AverageScore:       65,
			TopPercentileScore: 85,
			Weights: map[string]float64{
				WeightParsing:  0.25,
				WeightKeywords: 0.25,
				WeightContent:  0.25,
				WeightFormat:   0.25,
			},
			KeyFocusAreas: []string{
				"Clear structure", "Relevant keywords", "Concrete achievements",
			},
		},
	}
}
