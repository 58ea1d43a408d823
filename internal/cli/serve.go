package cli

import (
	"fmt"
	"sync/atomic"
	"time"

	"atscore/internal/analyzer"
	"atscore/internal/config"
	"atscore/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for resume compatibility analysis",
	Long: `Start an HTTP server that provides REST API endpoints for resume analysis.

Available endpoints:
- POST /api/v1/analyze: Analyze a resume for ATS compatibility
- GET /health: Health check endpoint
- GET /stats: Server statistics, rate limiting and cache info

TLS Configuration:
- Use --tls-mode to set TLS mode: disabled, server
- Use --cert-file and --key-file for TLS certificates

Config hot reload:
- Use --watch-config to watch a config file and pick up analysis tuning
  changes without restarting the server`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
	serveCmd.Flags().String("tls-mode", "", "TLS mode: disabled, server (overrides config)")
	serveCmd.Flags().String("cert-file", "", "Server certificate file (PEM, overrides config)")
	serveCmd.Flags().String("key-file", "", "Server private key file (PEM, overrides config)")
	serveCmd.Flags().String("watch-config", "", "Config file to watch for analysis tuning changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	applyServeOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid server configuration: %w", err)
	}

	// Analysis tuning is read through an atomic pointer so a config watcher
	// can swap it while requests are in flight.
	var tuning atomic.Pointer[analyzer.Config]
	initial := cfg.Analysis
	tuning.Store(&initial)

	watchFile, _ := cmd.Flags().GetString("watch-config")
	if watchFile != "" {
		watcher, err := config.NewTuningWatcher(watchFile, time.Second, func(newCfg *config.Config) {
			updated := newCfg.Analysis
			tuning.Store(&updated)
			logger.Info("Analysis tuning reloaded", "config_file", watchFile)
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
		defer func() {
			if err := watcher.Stop(); err != nil {
				logger.Warn("Failed to stop config watcher", "error", err)
			}
		}()
	}

	eng, cleanup, err := buildEngine(cfg, logger, true, func() analyzer.Config {
		return *tuning.Load()
	})
	defer cleanup()
	if err != nil {
		return fmt.Errorf("failed to initialize analysis engine: %w", err)
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		TLSConfig:      cfg.Server.TLS,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		RateLimit:      &cfg.Server.RateLimit,
		Cache:          &cfg.Server.Cache,
	}
	return server.NewServer(cfg, serverCfg, eng, logger).Start()
}

// applyServeOverrides copies explicitly set serve flags over the loaded config.
func applyServeOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("port"); v != "" {
		cfg.Server.Port = v
	}
	if v, _ := cmd.Flags().GetString("host"); v != "" {
		cfg.Server.Host = v
	}
	if v, _ := cmd.Flags().GetString("tls-mode"); v != "" {
		cfg.Server.TLS.Mode = v
	}
	if v, _ := cmd.Flags().GetString("cert-file"); v != "" {
		cfg.Server.TLS.CertFile = v
	}
	if v, _ := cmd.Flags().GetString("key-file"); v != "" {
		cfg.Server.TLS.KeyFile = v
	}
}
