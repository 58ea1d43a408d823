package benchmark

import (
	"math"
	"strings"
	"testing"

	"atscore/internal/types"
)

func validProfile(name string) types.IndustryBenchmark {
	return types.IndustryBenchmark{
		Name:               name,
		AverageScore:       65,
		TopPercentileScore: 85,
		Weights: map[string]float64{
			WeightParsing:  0.25,
			WeightKeywords: 0.25,
			WeightContent:  0.25,
			WeightFormat:   0.25,
		},
	}
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name     string
		profiles func() []types.IndustryBenchmark
		wantErr  string
	}{
		{
			name: "weights must sum to 1",
			profiles: func() []types.IndustryBenchmark {
				p := validProfile("general")
				p.Weights[WeightParsing] = 0.5
				return []types.IndustryBenchmark{p}
			},
			wantErr: "weights sum",
		},
		{
			name: "missing weight key",
			profiles: func() []types.IndustryBenchmark {
				p := validProfile("general")
				delete(p.Weights, WeightFormat)
				return []types.IndustryBenchmark{p}
			},
			wantErr: "missing weight",
		},
		{
			name: "negative weight",
			profiles: func() []types.IndustryBenchmark {
				p := validProfile("general")
				p.Weights[WeightParsing] = -0.25
				p.Weights[WeightKeywords] = 0.75
				return []types.IndustryBenchmark{p}
			},
			wantErr: "negative weight",
		},
		{
			name: "top percentile below average",
			profiles: func() []types.IndustryBenchmark {
				p := validProfile("general")
				p.TopPercentileScore = 60
				return []types.IndustryBenchmark{p}
			},
			wantErr: "score anchors",
		},
		{
			name: "general profile required",
			profiles: func() []types.IndustryBenchmark {
				return []types.IndustryBenchmark{validProfile("technology")}
			},
			wantErr: "general",
		},
		{
			name: "empty name",
			profiles: func() []types.IndustryBenchmark {
				return []types.IndustryBenchmark{validProfile("")}
			},
			wantErr: "name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.profiles())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	for _, industry := range []string{"technology", "finance", "healthcare", "marketing", "general"} {
		if p := r.Profile(industry); p.Name != industry {
			t.Errorf("Profile(%q).Name = %q", industry, p.Name)
		}
	}
}

func TestProfileFallsBackToGeneral(t *testing.T) {
	r := NewDefaultRegistry()
	if p := r.Profile("agriculture"); p.Name != DefaultIndustry {
		t.Errorf("unknown industry resolved to %q, want %q", p.Name, DefaultIndustry)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A+"}, {95, "A+"},
		{94, "A"}, {90, "A"},
		{89, "B+"}, {85, "B+"},
		{84, "B"}, {80, "B"},
		{79, "C+"}, {75, "C+"},
		{74, "C"}, {70, "C"},
		{69, "D"}, {60, "D"},
		{59, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestGradeMonotonic(t *testing.T) {
	order := map[string]int{"F": 0, "D": 1, "C": 2, "C+": 3, "B": 4, "B+": 5, "A": 6, "A+": 7}
	prev := 0
	for score := 0; score <= 100; score++ {
		rank := order[Grade(score)]
		if rank < prev {
			t.Fatalf("grade rank decreased at score %d", score)
		}
		prev = rank
	}
}

func TestMarketPosition(t *testing.T) {
	tests := []struct {
		percentile float64
		want       string
	}{
		{95, "Top 10%"},
		{90, "Top 10%"},
		{80, "Top 25%"},
		{65, "Above Average"},
		{50, "Average"},
		{20, "Below Average"},
	}
	for _, tt := range tests {
		if got := MarketPosition(tt.percentile); got != tt.want {
			t.Errorf("MarketPosition(%g) = %q, want %q", tt.percentile, got, tt.want)
		}
	}
}

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "technology",
			text: "Software engineer building backend services with python and kubernetes on cloud infrastructure",
			want: "technology",
		},
		{
			name: "finance",
			text: "Managed investment portfolio risk and compliance audit for a banking treasury desk",
			want: "finance",
		},
		{
			name: "healthcare",
			text: "Clinical nursing experience in a hospital, patient intake and pharmacy coordination",
			want: "healthcare",
		},
		{
			name: "marketing",
			text: "Led brand campaign strategy across social media with seo and conversion analytics",
			want: "marketing",
		},
		{
			name: "no match",
			text: "Oil painting and gallery curation",
			want: DefaultIndustry,
		},
		{
			name: "empty",
			text: "",
			want: DefaultIndustry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIndustry(tt.text); got != tt.want {
				t.Errorf("DetectIndustry = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggregateGeneralProfile(t *testing.T) {
	r := NewDefaultRegistry()
	scores := []CategoryScore{
		{Key: WeightParsing, Category: "Completeness", Score: 80},
		{Key: WeightKeywords, Category: "Keyword Relevance", Score: 80},
		{Key: WeightContent, Category: "Quantitative Impact", Score: 80},
		{Key: WeightFormat, Category: "Resume Length", Score: 80},
	}

	composite := r.Aggregate(scores, "general", false)

	if composite.OverallScore != 80 {
		t.Errorf("OverallScore = %d, want 80", composite.OverallScore)
	}
	if composite.WeightedScore != 80 {
		t.Errorf("WeightedScore = %d, want 80", composite.WeightedScore)
	}
	// General profile: average 65, top 85. 50 + (80-65)/(85-65)*40 = 80.
	if math.Abs(composite.IndustryPercentile-80) > 1e-9 {
		t.Errorf("IndustryPercentile = %g, want 80", composite.IndustryPercentile)
	}
	if composite.OverallGrade != "B" {
		t.Errorf("OverallGrade = %q, want B", composite.OverallGrade)
	}
	if composite.CompetitiveAnalysis.VsAverageCandidate != 15 {
		t.Errorf("VsAverageCandidate = %g, want 15", composite.CompetitiveAnalysis.VsAverageCandidate)
	}
	if composite.CompetitiveAnalysis.VsTopPercentile != -5 {
		t.Errorf("VsTopPercentile = %g, want -5", composite.CompetitiveAnalysis.VsTopPercentile)
	}
	if composite.CompetitiveAnalysis.MarketPosition != "Top 25%" {
		t.Errorf("MarketPosition = %q, want Top 25%%", composite.CompetitiveAnalysis.MarketPosition)
	}
	if composite.ImprovementPotential != 20 {
		t.Errorf("ImprovementPotential = %g, want 20", composite.ImprovementPotential)
	}
	if len(composite.Breakdown) != 4 {
		t.Fatalf("expected 4 breakdown entries, got %d", len(composite.Breakdown))
	}
	for _, entry := range composite.Breakdown {
		if entry.RawScore != 80 {
			t.Errorf("breakdown raw score = %d, want 80", entry.RawScore)
		}
		if entry.Weight != 0.25 {
			t.Errorf("breakdown weight = %g, want 0.25", entry.Weight)
		}
		if entry.WeightedScore != 20 {
			t.Errorf("breakdown weighted score = %g, want 20", entry.WeightedScore)
		}
	}
}

func TestAggregateImprovementPotentialCaps(t *testing.T) {
	r := NewDefaultRegistry()
	scores := []CategoryScore{
		{Key: WeightParsing, Category: "Completeness", Score: 40},
		{Key: WeightKeywords, Category: "Keyword Relevance", Score: 40},
		{Key: WeightContent, Category: "Quantitative Impact", Score: 40},
		{Key: WeightFormat, Category: "Resume Length", Score: 40},
	}

	normal := r.Aggregate(scores, "general", false)
	if normal.ImprovementPotential != 25 {
		t.Errorf("ImprovementPotential = %g, want cap 25", normal.ImprovementPotential)
	}

	urgent := r.Aggregate(scores, "general", true)
	if urgent.ImprovementPotential != 30 {
		t.Errorf("urgent ImprovementPotential = %g, want cap 30", urgent.ImprovementPotential)
	}
}

func TestAggregatePerfectScoreHasNoImprovementPotential(t *testing.T) {
	r := NewDefaultRegistry()
	scores := []CategoryScore{
		{Key: WeightParsing, Category: "Completeness", Score: 100},
		{Key: WeightKeywords, Category: "Keyword Relevance", Score: 100},
		{Key: WeightContent, Category: "Quantitative Impact", Score: 100},
		{Key: WeightFormat, Category: "Resume Length", Score: 100},
	}

	composite := r.Aggregate(scores, "general", false)
	if composite.ImprovementPotential != 0 {
		t.Errorf("ImprovementPotential = %g, want 0", composite.ImprovementPotential)
	}
	if composite.IndustryPercentile != 100 {
		t.Errorf("IndustryPercentile = %g, want 100", composite.IndustryPercentile)
	}
	if composite.OverallGrade != "A+" {
		t.Errorf("OverallGrade = %q, want A+", composite.OverallGrade)
	}
}

func TestAggregateUsesIndustryWeights(t *testing.T) {
	r := NewDefaultRegistry()
	// Technology weights keywords 0.35; general weighs it 0.25. A resume
	// strong only on keywords benefits from the technology profile.
	scores := []CategoryScore{
		{Key: WeightParsing, Category: "Completeness", Score: 50},
		{Key: WeightKeywords, Category: "Keyword Relevance", Score: 100},
		{Key: WeightContent, Category: "Quantitative Impact", Score: 50},
		{Key: WeightFormat, Category: "Resume Length", Score: 50},
	}

	tech := r.Aggregate(scores, "technology", false)
	general := r.Aggregate(scores, "general", false)

	if tech.WeightedScore <= general.WeightedScore {
		t.Errorf("technology weighted %d should exceed general weighted %d",
			tech.WeightedScore, general.WeightedScore)
	}
	if tech.OverallScore != general.OverallScore {
		t.Errorf("raw overall must not depend on industry: %d vs %d",
			tech.OverallScore, general.OverallScore)
	}
}
