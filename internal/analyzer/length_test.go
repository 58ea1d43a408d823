package analyzer

import (
	"testing"

	"atscore/internal/types"
)

func docWithWordCount(words int) *types.SegmentedDocument {
	return &types.SegmentedDocument{
		Metadata: types.DocumentMetadata{WordCount: words},
	}
}

func TestAnalyzeLength(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		words     int
		wantScore int
	}{
		{"optimal lower bound", 200, 100},
		{"optimal upper bound", 600, 100},
		{"mid band", 400, 100},
		{"half shortfall", 100, 70},  // (200-100)/200 * 60 = 30
		{"near empty", 10, 43},       // (200-10)/200 * 60 = 57
		{"slightly long", 650, 95},   // below per-100 granularity, floor penalty 5
		{"long", 850, 90},            // 250 over -> 2 * 5 = 10
		{"very long", 2000, 70},      // capped at 30
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeLength(docWithWordCount(tt.words), cfg)
			if result.Score != tt.wantScore {
				t.Errorf("score for %d words = %d, want %d", tt.words, result.Score, tt.wantScore)
			}
		})
	}
}

func TestAnalyzeLengthIssuesOnlyOutsideBand(t *testing.T) {
	cfg := DefaultConfig()

	if result := AnalyzeLength(docWithWordCount(300), cfg); len(result.Issues) != 0 {
		t.Errorf("in-band document should report no issues, got %v", result.Issues)
	}
	if result := AnalyzeLength(docWithWordCount(50), cfg); len(result.Issues) == 0 {
		t.Error("short document should report an issue")
	}
	if result := AnalyzeLength(docWithWordCount(1500), cfg); len(result.Issues) == 0 {
		t.Error("long document should report an issue")
	}
}

func TestAnalyzeLengthShortfallHarsherThanVerbosity(t *testing.T) {
	cfg := DefaultConfig()

	// 100 words short of the band versus 300 words over it
	short := AnalyzeLength(docWithWordCount(cfg.Length.OptimalMin-100), cfg)
	long := AnalyzeLength(docWithWordCount(cfg.Length.OptimalMax+300), cfg)

	if short.Score >= long.Score {
		t.Errorf("half-length resume (%d) should score below double-length (%d)",
			short.Score, long.Score)
	}
}
