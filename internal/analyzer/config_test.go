package analyzer

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "signal weights must sum to 1",
			mutate: func(c *Config) {
				c.Keyword.SignalWeights.ExactMatch = 0.5
			},
			wantErr: "signal weights",
		},
		{
			name: "length band inverted",
			mutate: func(c *Config) {
				c.Length.OptimalMin = 600
				c.Length.OptimalMax = 200
			},
			wantErr: "length band",
		},
		{
			name: "length band zero minimum",
			mutate: func(c *Config) {
				c.Length.OptimalMin = 0
			},
			wantErr: "length band",
		},
		{
			name: "status thresholds not decreasing",
			mutate: func(c *Config) {
				c.Status.Good = c.Status.Excellent
			},
			wantErr: "status thresholds",
		},
		{
			name: "keyword status thresholds not decreasing",
			mutate: func(c *Config) {
				c.Keyword.Status.NeedsImprovement = c.Keyword.Status.Good
			},
			wantErr: "keyword status thresholds",
		},
		{
			name: "top term count must be positive",
			mutate: func(c *Config) {
				c.Keyword.TopTermCount = 0
			},
			wantErr: "topTermCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBuildResultClampsAndDerivesStatus(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name       string
		score      int
		wantScore  int
		wantStatus string
	}{
		{"above range clamps to 100", 180, 100, "excellent"},
		{"excellent boundary", 85, 85, "excellent"},
		{"good boundary", 70, 70, "good"},
		{"needs improvement boundary", 50, 50, "needs-improvement"},
		{"poor", 49, 49, "poor"},
		{"below range clamps to 0", -20, 0, "poor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildResult("Test", tt.score, cfg.Status, nil, nil)
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}
			if string(result.Status) != tt.wantStatus {
				t.Errorf("status = %q, want %q", result.Status, tt.wantStatus)
			}
			if result.Issues == nil || result.Recommendations == nil {
				t.Error("issues and recommendations must never be nil")
			}
		})
	}
}
