package ai

import (
	"context"

	"atscore/internal/engine"
	"atscore/internal/types"
)

// AIProvider is the contract for external insight collaborators.
// All methods return token usage information - callers can ignore it if
// not needed.
type AIProvider interface {
	KeywordInsight(ctx context.Context, req engine.InsightRequest) (*types.KeywordInsight, *TokenUsage, error)
	CompletenessInsight(ctx context.Context, req engine.InsightRequest) (*types.CompletenessInsight, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
