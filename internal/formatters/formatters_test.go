package formatters

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"atscore/internal/types"
)

func sampleReport() *types.Report {
	return &types.Report{
		Metadata: types.DocumentMetadata{
			WordCount:    350,
			HasEmail:     true,
			HasPhone:     true,
			SectionCount: 4,
		},
		Categories: []types.CategoryResult{
			{
				Category:        "Completeness",
				Score:           88,
				Status:          types.StatusExcellent,
				Issues:          []string{},
				Recommendations: []string{},
			},
			{
				Category:        "Keyword Relevance",
				Score:           55,
				Status:          types.StatusNeedsImprovement,
				Issues:          []string{"3 of 8 job keywords matched exactly"},
				Recommendations: []string{"Work 5 more of the job posting's keywords into your resume"},
			},
		},
		OverallScore: 72,
		Industry:     "technology",
		Composite: &types.CompositeScore{
			OverallScore:       72,
			WeightedScore:      70,
			IndustryPercentile: 45.5,
			OverallGrade:       "C",
			Breakdown: []types.CategoryBreakdown{
				{Category: "Completeness", RawScore: 88, WeightedScore: 17.6, Weight: 0.2, Percentile: 75, Grade: "B+"},
			},
			CompetitiveAnalysis: types.CompetitiveAnalysis{
				VsAverageCandidate: -2,
				VsTopPercentile:    -21,
				MarketPosition:     "Average",
			},
			ImprovementPotential: 25,
		},
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleReport(), "json")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded types.Report
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.OverallScore != 72 {
		t.Errorf("overallScore = %d, want 72", decoded.OverallScore)
	}
	if decoded.Composite == nil || decoded.Composite.OverallGrade != "C" {
		t.Error("composite lost in JSON round trip")
	}
}

func TestTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleReport(), "text")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	for _, want := range []string{
		"=== ATS COMPATIBILITY REPORT ===",
		"Overall Score: 72/100",
		"technology",
		"Keyword Relevance",
		"=== INDUSTRY BENCHMARK ===",
		"Grade",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	out, err := registry.Format(sampleReport(), "markdown")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(out, "| Category | Score | Weight | Percentile | Grade |") {
		t.Errorf("markdown output missing breakdown table:\n%s", out)
	}
	if !strings.Contains(out, "Completeness") {
		t.Errorf("markdown output missing category name:\n%s", out)
	}
}

func TestFormatAcceptsValueAndPointer(t *testing.T) {
	registry := NewFormatterRegistry()

	if _, err := registry.Format(*sampleReport(), "text"); err != nil {
		t.Errorf("value report rejected: %v", err)
	}
	if _, err := registry.Format(sampleReport(), "text"); err != nil {
		t.Errorf("pointer report rejected: %v", err)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()
	if _, err := registry.Format(sampleReport(), "xml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestJSONFallbackForArbitraryData(t *testing.T) {
	registry := NewFormatterRegistry()
	out, err := registry.Format(map[string]int{"a": 1}, "json")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, `"a": 1`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := NewFormatterRegistry().GetSupportedFormats()
	for _, want := range []string{"json", "text", "markdown"} {
		if !slices.Contains(formats, want) {
			t.Errorf("supported formats %v missing %q", formats, want)
		}
	}
}
