package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"atscore/internal/analyzer"
	"atscore/internal/types"
)

type fakeKeywordProvider struct {
	insight *types.KeywordInsight
	err     error
	waitCtx bool
	calls   int
}

func (p *fakeKeywordProvider) KeywordInsight(ctx context.Context, req InsightRequest) (*types.KeywordInsight, error) {
	p.calls++
	if p.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return p.insight, p.err
}

type fakeCompletenessProvider struct {
	insight *types.CompletenessInsight
	err     error
	calls   int
}

func (p *fakeCompletenessProvider) CompletenessInsight(ctx context.Context, req InsightRequest) (*types.CompletenessInsight, error) {
	p.calls++
	return p.insight, p.err
}

const testResume = `jane@example.com +62 812 9876 5432

Summary
Experienced software engineer who developed Go backend services, reduced costs by 30%. Led a team of 8. Delivered three launches.

Experience
Built payment services processing 2M transactions daily over 5 years.

Education
BSc Computer Science

Skills
Go, PostgreSQL, Kubernetes, Docker`

func categoryByName(t *testing.T, report *types.Report, name string) types.CategoryResult {
	t.Helper()
	for _, c := range report.Categories {
		if c.Category == name {
			return c
		}
	}
	t.Fatalf("category %q not found in report", name)
	return types.CategoryResult{}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	bad := analyzer.DefaultConfig()
	bad.Keyword.SignalWeights.ExactMatch = 0.9

	_, err := New(Options{Tuning: func() analyzer.Config { return bad }})
	if err == nil {
		t.Fatal("expected error for invalid tuning")
	}
}

func TestAnalyzeWithoutProviders(t *testing.T) {
	eng, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{
		ResumeText: testResume,
		JobTitle:   "Software Engineer",
		JobDescription: "Go developer with Kubernetes and PostgreSQL experience " +
			"building backend services",
	})

	if report == nil {
		t.Fatal("Analyze returned nil")
	}
	if len(report.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(report.Categories))
	}
	if report.Composite == nil {
		t.Fatal("composite score missing")
	}
	if report.Industry != "technology" {
		t.Errorf("industry = %q, want technology", report.Industry)
	}
	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Errorf("overall score %d out of range", report.OverallScore)
	}
}

func TestAnalyzeIndustryOverride(t *testing.T) {
	eng, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{
		ResumeText: testResume,
		Industry:   "finance",
	})
	if report.Industry != "finance" {
		t.Errorf("industry = %q, want override finance", report.Industry)
	}
	if report.Composite == nil {
		t.Fatal("composite score missing")
	}
	for _, row := range report.Composite.Breakdown {
		if row.Category == analyzer.CategoryKeyword && row.Weight != 0.30 {
			t.Errorf("keyword weight = %g, want finance profile 0.30", row.Weight)
		}
		if row.Category == analyzer.CategoryLength && row.Weight != 0.15 {
			t.Errorf("length weight = %g, want finance profile 0.15", row.Weight)
		}
	}
}

func TestAnalyzeEmptyInputNeverFails(t *testing.T) {
	eng, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{})
	if report == nil {
		t.Fatal("Analyze returned nil for empty input")
	}
	if len(report.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(report.Categories))
	}

	keyword := categoryByName(t, report, analyzer.CategoryKeyword)
	if keyword.Score != 0 {
		t.Errorf("keyword score = %d, want 0 without job context", keyword.Score)
	}
	impact := categoryByName(t, report, analyzer.CategoryImpact)
	if impact.Score != 0 {
		t.Errorf("impact score = %d, want 0 without job context", impact.Score)
	}
}

func TestKeywordDelegationReplacesRuleBasedResult(t *testing.T) {
	provider := &fakeKeywordProvider{
		insight: &types.KeywordInsight{
			Score:           91,
			Issues:          []string{"one minor gap"},
			Recommendations: []string{"add GraphQL"},
		},
	}
	eng, err := New(Options{Keyword: provider})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{
		ResumeText: testResume,
		JobTitle:   "Software Engineer",
	})

	keyword := categoryByName(t, report, analyzer.CategoryKeyword)
	if keyword.Score != 91 {
		t.Errorf("keyword score = %d, want delegated 91", keyword.Score)
	}
	if keyword.Status != types.StatusExcellent {
		t.Errorf("status = %q, want excellent under keyword thresholds", keyword.Status)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestKeywordDelegationFallsBackOnError(t *testing.T) {
	provider := &fakeKeywordProvider{err: fmt.Errorf("upstream unavailable")}
	eng, err := New(Options{Keyword: provider})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := types.AnalyzeInput{ResumeText: testResume, JobTitle: "Software Engineer"}
	withProvider := eng.Analyze(context.Background(), input)

	baseline, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	without := baseline.Analyze(context.Background(), input)

	got := categoryByName(t, withProvider, analyzer.CategoryKeyword)
	want := categoryByName(t, without, analyzer.CategoryKeyword)
	if got.Score != want.Score {
		t.Errorf("fallback score = %d, want rule-based %d", got.Score, want.Score)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestKeywordDelegationFallsBackOnInvalidResponse(t *testing.T) {
	tests := []struct {
		name    string
		insight *types.KeywordInsight
	}{
		{"nil insight", nil},
		{"score above range", &types.KeywordInsight{Score: 150, Issues: []string{}, Recommendations: []string{}}},
		{"score below range", &types.KeywordInsight{Score: -1, Issues: []string{}, Recommendations: []string{}}},
		{"nil issues", &types.KeywordInsight{Score: 50, Recommendations: []string{}}},
		{"nil recommendations", &types.KeywordInsight{Score: 50, Issues: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeKeywordProvider{insight: tt.insight}
			eng, err := New(Options{Keyword: provider})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			report := eng.Analyze(context.Background(), types.AnalyzeInput{
				ResumeText: testResume,
				JobTitle:   "Software Engineer",
			})

			keyword := categoryByName(t, report, analyzer.CategoryKeyword)
			if keyword.Score == 150 {
				t.Error("invalid delegated score must not be trusted")
			}
			if provider.calls != 1 {
				t.Errorf("provider called %d times, want 1", provider.calls)
			}
		})
	}
}

func TestKeywordDelegationSkippedWithoutJobContext(t *testing.T) {
	provider := &fakeKeywordProvider{
		insight: &types.KeywordInsight{Score: 95, Issues: []string{}, Recommendations: []string{}},
	}
	eng, err := New(Options{Keyword: provider})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{ResumeText: testResume})

	if provider.calls != 0 {
		t.Errorf("provider must not be consulted without job context, called %d times", provider.calls)
	}
	keyword := categoryByName(t, report, analyzer.CategoryKeyword)
	if keyword.Score != 0 {
		t.Errorf("keyword score = %d, want forced 0", keyword.Score)
	}
}

func TestKeywordDelegationSkippedWithWhitespaceJobContext(t *testing.T) {
	provider := &fakeKeywordProvider{
		insight: &types.KeywordInsight{Score: 90, Issues: []string{}, Recommendations: []string{}},
	}
	eng, err := New(Options{Keyword: provider})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{
		ResumeText:     testResume,
		JobTitle:       "   ",
		JobDescription: "\n\t ",
	})

	if provider.calls != 0 {
		t.Errorf("provider must not be consulted with whitespace-only job context, called %d times", provider.calls)
	}
	keyword := categoryByName(t, report, analyzer.CategoryKeyword)
	if keyword.Score != 0 {
		t.Errorf("keyword score = %d, want forced 0", keyword.Score)
	}
}

func TestKeywordDelegationTimesOut(t *testing.T) {
	provider := &fakeKeywordProvider{waitCtx: true}
	eng, err := New(Options{Keyword: provider, InsightTimeout: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	start := time.Now()
	report := eng.Analyze(context.Background(), types.AnalyzeInput{
		ResumeText: testResume,
		JobTitle:   "Software Engineer",
	})
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("analysis blocked for %v despite timeout", elapsed)
	}
	if report == nil {
		t.Fatal("Analyze returned nil after provider timeout")
	}
}

func TestCompletenessDelegation(t *testing.T) {
	provider := &fakeCompletenessProvider{
		insight: &types.CompletenessInsight{
			Score:           62,
			Issues:          []string{"sparse experience detail"},
			Recommendations: []string{"expand role descriptions"},
			SpellingScore:   90,
			GrammarScore:    88,
			MissingElements: []string{"certifications"},
		},
	}
	eng, err := New(Options{Completeness: provider})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	report := eng.Analyze(context.Background(), types.AnalyzeInput{ResumeText: testResume})

	completeness := categoryByName(t, report, analyzer.CategoryCompleteness)
	if completeness.Score != 62 {
		t.Errorf("completeness score = %d, want delegated 62", completeness.Score)
	}

	found := false
	for _, issue := range completeness.Issues {
		if issue == "Missing element: certifications" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing elements not folded into issues: %v", completeness.Issues)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
}

func TestCompletenessHighUrgencyRaisesImprovementCap(t *testing.T) {
	lowInsight := func(urgent bool) *types.CompletenessInsight {
		return &types.CompletenessInsight{
			Score:           10,
			Issues:          []string{"document is not a usable resume"},
			Recommendations: []string{"rewrite from scratch"},
			MissingElements: []string{},
			HighUrgency:     urgent,
		}
	}

	run := func(urgent bool) *types.Report {
		eng, err := New(Options{Completeness: &fakeCompletenessProvider{insight: lowInsight(urgent)}})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return eng.Analyze(context.Background(), types.AnalyzeInput{ResumeText: "short note"})
	}

	normal := run(false)
	urgent := run(true)

	if normal.Composite.ImprovementPotential != 25 {
		t.Errorf("normal improvement potential = %g, want 25", normal.Composite.ImprovementPotential)
	}
	if urgent.Composite.ImprovementPotential != 30 {
		t.Errorf("urgent improvement potential = %g, want 30", urgent.Composite.ImprovementPotential)
	}
}

func TestValidateKeywordInsight(t *testing.T) {
	valid := &types.KeywordInsight{Score: 50, Issues: []string{}, Recommendations: []string{}}
	if err := ValidateKeywordInsight(valid); err != nil {
		t.Errorf("valid insight rejected: %v", err)
	}
	if err := ValidateKeywordInsight(nil); err == nil {
		t.Error("nil insight accepted")
	}
}

func TestValidateCompletenessInsight(t *testing.T) {
	valid := &types.CompletenessInsight{
		Score: 50, SpellingScore: 80, GrammarScore: 75,
		Issues: []string{}, Recommendations: []string{}, MissingElements: []string{},
	}
	if err := ValidateCompletenessInsight(valid); err != nil {
		t.Errorf("valid insight rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*types.CompletenessInsight)
	}{
		{"score out of range", func(i *types.CompletenessInsight) { i.Score = 101 }},
		{"spelling out of range", func(i *types.CompletenessInsight) { i.SpellingScore = -1 }},
		{"grammar out of range", func(i *types.CompletenessInsight) { i.GrammarScore = 200 }},
		{"nil missing elements", func(i *types.CompletenessInsight) { i.MissingElements = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := *valid
			tt.mutate(&ins)
			if err := ValidateCompletenessInsight(&ins); err == nil {
				t.Error("invalid insight accepted")
			}
		})
	}
}
