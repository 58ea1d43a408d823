package engine

import (
	"context"
	"fmt"

	"atscore/internal/types"
)

// InsightRequest is the request contract for both collaborator extension
// points
type InsightRequest struct {
	DocumentText   string `json:"documentText"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
}

// KeywordInsightProvider is the optional external collaborator for the
// keyword-relevance dimension. Implementations may take as long as their
// context allows; the engine bounds every call with a timeout and falls
// back to the rule-based analyzer on any error.
type KeywordInsightProvider interface {
	KeywordInsight(ctx context.Context, req InsightRequest) (*types.KeywordInsight, error)
}

// CompletenessInsightProvider is the optional external collaborator for
// the completeness dimension
type CompletenessInsightProvider interface {
	CompletenessInsight(ctx context.Context, req InsightRequest) (*types.CompletenessInsight, error)
}

// ValidateKeywordInsight checks the collaborator response shape before it
// is trusted. A schema violation triggers fallback, never an error to the
// caller.
func ValidateKeywordInsight(ins *types.KeywordInsight) error {
	if ins == nil {
		return fmt.Errorf("nil insight")
	}
	if ins.Score < 0 || ins.Score > 100 {
		return fmt.Errorf("score %d out of range [0, 100]", ins.Score)
	}
	if ins.Issues == nil || ins.Recommendations == nil {
		return fmt.Errorf("issues and recommendations must be present")
	}
	return nil
}

// ValidateCompletenessInsight checks the completeness variant, which
// additionally carries spelling/grammar scores and missing elements
func ValidateCompletenessInsight(ins *types.CompletenessInsight) error {
	if ins == nil {
		return fmt.Errorf("nil insight")
	}
	if ins.Score < 0 || ins.Score > 100 {
		return fmt.Errorf("score %d out of range [0, 100]", ins.Score)
	}
	if ins.SpellingScore < 0 || ins.SpellingScore > 100 {
		return fmt.Errorf("spellingScore %d out of range [0, 100]", ins.SpellingScore)
	}
	if ins.GrammarScore < 0 || ins.GrammarScore > 100 {
		return fmt.Errorf("grammarScore %d out of range [0, 100]", ins.GrammarScore)
	}
	if ins.Issues == nil || ins.Recommendations == nil || ins.MissingElements == nil {
		return fmt.Errorf("issues, recommendations, and missingElements must be present")
	}
	return nil
}
