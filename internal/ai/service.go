package ai

import (
	"context"
	"fmt"

	"atscore/internal/config"
	"atscore/internal/engine"
	"atscore/internal/errors"
	"atscore/internal/types"
)

// Service handles AI insight operations for a single extension point. It
// satisfies the engine's provider interfaces, so a Service built for the
// keyword operation plugs straight into the engine as its keyword
// collaborator.
type Service struct {
	Provider AIProvider // Exported for access from server package
	config   *config.OperationAIConfig
	logger   *errors.Logger
}

var (
	_ engine.KeywordInsightProvider      = (*Service)(nil)
	_ engine.CompletenessInsightProvider = (*Service)(nil)
)

// NewService creates a new AI service instance with configuration for a
// specific extension point ("keyword" or "completeness")
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	var provider AIProvider
	var err error

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		logger:   logger,
	}, nil
}

// KeywordInsight implements engine.KeywordInsightProvider
func (s *Service) KeywordInsight(ctx context.Context, req engine.InsightRequest) (*types.KeywordInsight, error) {
	insight, usage, err := s.Provider.KeywordInsight(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logTokenUsage("keyword_insight", usage)
	return insight, nil
}

// CompletenessInsight implements engine.CompletenessInsightProvider
func (s *Service) CompletenessInsight(ctx context.Context, req engine.InsightRequest) (*types.CompletenessInsight, error) {
	insight, usage, err := s.Provider.CompletenessInsight(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logTokenUsage("completeness_insight", usage)
	return insight, nil
}

func (s *Service) logTokenUsage(operation string, usage *TokenUsage) {
	if usage == nil {
		return
	}
	s.logger.Debug("AI token usage",
		"operation", operation,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}

// Close releases provider resources
func (s *Service) Close() error {
	return s.Provider.Close()
}
