package cli

import (
	"atscore/internal/ai"
	"atscore/internal/analyzer"
	"atscore/internal/config"
	"atscore/internal/engine"
	"atscore/internal/errors"
)

// buildEngine constructs the analysis engine from the loaded configuration.
// When withAI is true and an AI provider is configured, keyword and
// completeness insight providers are attached; the engine falls back to
// heuristics on its own when they fail. The returned cleanup function closes
// any AI services and is safe to call even when AI is disabled.
// A non-nil tuning func overrides the config's analysis section, which lets
// the serve command swap tuning in on config file changes.
func buildEngine(cfg *config.Config, logger *errors.Logger, withAI bool, tuning func() analyzer.Config) (*engine.Engine, func(), error) {
	if tuning == nil {
		tuning = func() analyzer.Config {
			return cfg.Analysis
		}
	}
	opts := engine.Options{
		Tuning: tuning,
		Logger: logger,
	}

	var services []*ai.Service
	cleanup := func() {
		for _, svc := range services {
			if err := svc.Close(); err != nil {
				logger.Warn("Failed to close AI service", "error", err)
			}
		}
	}

	if withAI && cfg.AI.Enabled {
		keywordCfg := cfg.GetKeywordConfig()
		keywordSvc, err := ai.NewService(&keywordCfg, "keyword", logger)
		if err != nil {
			return nil, cleanup, err
		}
		services = append(services, keywordSvc)

		completenessCfg := cfg.GetCompletenessConfig()
		completenessSvc, err := ai.NewService(&completenessCfg, "completeness", logger)
		if err != nil {
			return nil, cleanup, err
		}
		services = append(services, completenessSvc)

		opts.Keyword = keywordSvc
		opts.Completeness = completenessSvc
		if keywordCfg.Timeout != nil && *keywordCfg.Timeout > 0 {
			opts.InsightTimeout = *keywordCfg.Timeout
		}
	}

	eng, err := engine.New(opts)
	if err != nil {
		return nil, cleanup, err
	}
	return eng, cleanup, nil
}
