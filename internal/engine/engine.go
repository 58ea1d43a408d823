// Package engine sequences segmentation, the four category analyzers, and
// benchmark aggregation into a single analysis pipeline. The rule-based
// path is always computed; optional AI collaborators can only replace a
// dimension's result after their response validates, so the engine returns
// a complete, internally consistent report even when every delegation
// fails.
package engine

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"atscore/internal/analyzer"
	"atscore/internal/benchmark"
	"atscore/internal/errors"
	"atscore/internal/segment"
	"atscore/internal/types"
)

// DefaultInsightTimeout bounds a single collaborator call
const DefaultInsightTimeout = 20 * time.Second

// Options configures an Engine
type Options struct {
	// Tuning returns the current analyzer tuning. Called once per
	// analysis so hot-reloaded configuration takes effect without
	// restarting.
	Tuning func() analyzer.Config

	Benchmarks *benchmark.Registry
	Logger     *errors.Logger

	// Optional collaborators; nil disables delegation for that dimension
	Keyword      KeywordInsightProvider
	Completeness CompletenessInsightProvider

	// InsightTimeout bounds each collaborator call; zero means
	// DefaultInsightTimeout
	InsightTimeout time.Duration
}

// Engine is the analysis orchestrator
type Engine struct {
	tuning         func() analyzer.Config
	benchmarks     *benchmark.Registry
	logger         *errors.Logger
	keyword        KeywordInsightProvider
	completeness   CompletenessInsightProvider
	insightTimeout time.Duration
}

// New creates an engine. The analyzer tuning is validated fatally here:
// a bad weighting scheme is a configuration error, not a per-request one.
func New(opts Options) (*Engine, error) {
	tuning := opts.Tuning
	if tuning == nil {
		def := analyzer.DefaultConfig()
		tuning = func() analyzer.Config { return def }
	}
	if err := tuning().Validate(); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"invalid analyzer tuning", err)
	}

	benchmarks := opts.Benchmarks
	if benchmarks == nil {
		benchmarks = benchmark.NewDefaultRegistry()
	}

	timeout := opts.InsightTimeout
	if timeout <= 0 {
		timeout = DefaultInsightTimeout
	}

	return &Engine{
		tuning:         tuning,
		benchmarks:     benchmarks,
		logger:         opts.Logger,
		keyword:        opts.Keyword,
		completeness:   opts.Completeness,
		insightTimeout: timeout,
	}, nil
}

// Analyze runs the full pipeline over the input. It never fails for
// well-formed (even empty) string inputs; degraded input is represented
// as low scores with explanatory issues.
func (e *Engine) Analyze(ctx context.Context, input types.AnalyzeInput) *types.Report {
	cfg := e.tuning()
	doc := segment.Segment(input.ResumeText)

	// The analyzers share no mutable state and only read the immutable
	// document, so they run concurrently.
	var impact, length, completeness, keyword types.CategoryResult
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		impact = analyzer.AnalyzeImpact(doc, input.JobTitle, input.JobDescription, cfg)
	}()
	go func() {
		defer wg.Done()
		length = analyzer.AnalyzeLength(doc, cfg)
	}()
	go func() {
		defer wg.Done()
		completeness = analyzer.AnalyzeCompleteness(doc, cfg)
	}()
	go func() {
		defer wg.Done()
		keyword = analyzer.AnalyzeKeywords(doc, input.JobDescription, input.JobTitle, cfg)
	}()
	wg.Wait()

	highUrgency := false

	// Optional AI delegation with mandatory fallback. The no-job-context
	// policy stays deterministic: no delegation can undo the forced zero.
	// Trimmed like the analyzers trim, so whitespace-only job context does
	// not re-enable delegation over a forced-zero result.
	hasJobContext := strings.TrimSpace(input.JobTitle) != "" ||
		strings.TrimSpace(input.JobDescription) != ""
	if e.keyword != nil && hasJobContext {
		if result, ok := e.keywordDelegate(ctx, input, cfg); ok {
			keyword = result
		}
	}
	if e.completeness != nil {
		if result, urgent, ok := e.completenessDelegate(ctx, input, cfg); ok {
			completeness = result
			highUrgency = urgent
		}
	}

	categories := []types.CategoryResult{impact, length, completeness, keyword}
	overall := int(math.Round(float64(impact.Score+length.Score+completeness.Score+keyword.Score) / 4))

	industry := input.Industry
	if industry == "" {
		industry = benchmark.DetectIndustry(input.ResumeText)
	}
	composite := e.benchmarks.Aggregate([]benchmark.CategoryScore{
		{Key: benchmark.WeightParsing, Category: completeness.Category, Score: completeness.Score},
		{Key: benchmark.WeightKeywords, Category: keyword.Category, Score: keyword.Score},
		{Key: benchmark.WeightContent, Category: impact.Category, Score: impact.Score},
		{Key: benchmark.WeightFormat, Category: length.Category, Score: length.Score},
	}, industry, highUrgency)

	return &types.Report{
		Metadata:     doc.Metadata,
		Categories:   categories,
		OverallScore: overall,
		Industry:     industry,
		Composite:    &composite,
	}
}

func (e *Engine) keywordDelegate(ctx context.Context, input types.AnalyzeInput, cfg analyzer.Config) (types.CategoryResult, bool) {
	callCtx, cancel := context.WithTimeout(ctx, e.insightTimeout)
	defer cancel()

	ins, err := e.keyword.KeywordInsight(callCtx, InsightRequest{
		DocumentText:   input.ResumeText,
		JobTitle:       input.JobTitle,
		JobDescription: input.JobDescription,
	})
	if err != nil {
		e.warn(err, "keyword insight provider failed, using rule-based result")
		return types.CategoryResult{}, false
	}
	if err := ValidateKeywordInsight(ins); err != nil {
		e.warn(err, "keyword insight response malformed, using rule-based result")
		return types.CategoryResult{}, false
	}

	return analyzer.BuildResult(analyzer.CategoryKeyword, ins.Score,
		cfg.Keyword.Status, ins.Issues, ins.Recommendations), true
}

func (e *Engine) completenessDelegate(ctx context.Context, input types.AnalyzeInput, cfg analyzer.Config) (types.CategoryResult, bool, bool) {
	callCtx, cancel := context.WithTimeout(ctx, e.insightTimeout)
	defer cancel()

	ins, err := e.completeness.CompletenessInsight(callCtx, InsightRequest{
		DocumentText:   input.ResumeText,
		JobTitle:       input.JobTitle,
		JobDescription: input.JobDescription,
	})
	if err != nil {
		e.warn(err, "completeness insight provider failed, using rule-based result")
		return types.CategoryResult{}, false, false
	}
	if err := ValidateCompletenessInsight(ins); err != nil {
		e.warn(err, "completeness insight response malformed, using rule-based result")
		return types.CategoryResult{}, false, false
	}

	issues := ins.Issues
	for _, missing := range ins.MissingElements {
		issues = append(issues, "Missing element: "+missing)
	}

	return analyzer.BuildResult(analyzer.CategoryCompleteness, ins.Score,
		cfg.Status, issues, ins.Recommendations), ins.HighUrgency, true
}

func (e *Engine) warn(err error, message string) {
	if e.logger != nil {
		e.logger.Warn(message, "error", err.Error())
	}
}
