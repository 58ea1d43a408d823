package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"atscore/internal/ai"
	"atscore/internal/observability"
	"atscore/internal/types"
)

const healthCheckTimeout = 10 * time.Second

// createAnalyzeHandler returns the handler for the analyze endpoint
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeErrorResponse(w, "Method not allowed", "Only POST is supported", http.StatusMethodNotAllowed)
			return
		}

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			writeErrorResponse(w, "Invalid request", "resumeText is required", http.StatusBadRequest)
			return
		}

		input := types.AnalyzeInput{
			ResumeText:     req.ResumeText,
			JobTitle:       req.JobTitle,
			JobDescription: req.JobDescription,
			Industry:       req.Industry,
		}

		var cacheKey string
		if s.Cache != nil {
			cacheKey = s.Cache.Key(input)
			if report, ok := s.Cache.Get(cacheKey); ok {
				if om != nil {
					om.GetMetrics().RecordCacheAccess(r.Context(), true)
				}
				s.Logger.Debug("Serving analysis report from cache",
					"client_ip", getClientIP(r))
				writeJSONResponse(w, report)
				return
			}
			if om != nil {
				om.GetMetrics().RecordCacheAccess(r.Context(), false)
			}
		}

		start := time.Now()
		report := s.Engine.Analyze(r.Context(), input)

		if om != nil {
			om.GetMetrics().RecordAnalysis(r.Context(), time.Since(start),
				report.Industry, req.JobDescription != "" || req.JobTitle != "")
		}

		if s.Cache != nil {
			s.Cache.Set(cacheKey, report)
		}

		s.Logger.Info("Analysis completed",
			"overall_score", report.OverallScore,
			"industry", report.Industry,
			"word_count", report.Metadata.WordCount,
			"duration_ms", time.Since(start).Milliseconds())

		writeJSONResponse(w, report)
	}
}

// healthHandler provides a health check endpoint including AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "atscore",
		"version": s.Version,
	}

	aiStatus := s.checkAIModelsHealth()
	response["ai_models"] = aiStatus

	// The engine is fully functional without AI, so an unavailable model
	// degrades the service rather than failing it
	overallHealthy := true
	for _, modelStatus := range aiStatus {
		if modelInfo, ok := modelStatus.(map[string]any); ok {
			if available, exists := modelInfo["available"]; exists {
				if avail, ok := available.(bool); ok && !avail {
					overallHealthy = false
					break
				}
			}
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkAIModelsHealth checks the models used by the two insight extension points
func (s *Server) checkAIModelsHealth() map[string]any {
	aiStatus := make(map[string]any)

	if !s.AppConfig.AI.Enabled {
		aiStatus["enabled"] = false
		return aiStatus
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	keywordConfig := s.AppConfig.GetKeywordConfig()
	if keywordService, err := ai.NewService(&keywordConfig, "keyword", s.Logger); err == nil {
		aiStatus["keyword"] = keywordService.GetModelInfo(ctx)
	} else {
		aiStatus["keyword"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create keyword service: %v", err),
		}
	}

	completenessConfig := s.AppConfig.GetCompletenessConfig()
	if completenessService, err := ai.NewService(&completenessConfig, "completeness", s.Logger); err == nil {
		aiStatus["completeness"] = completenessService.GetModelInfo(ctx)
	} else {
		aiStatus["completeness"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create completeness service: %v", err),
		}
	}

	return aiStatus
}

// statsHandler provides server statistics including rate limiting and cache info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "atscore",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	if s.Cache != nil {
		response["report_cache"] = s.Cache.Stats()
	} else {
		response["report_cache"] = map[string]any{
			"enabled": false,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType != "application/json" && !strings.HasPrefix(contentType, "application/json;") {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeJSONResponse writes a JSON success response
func writeJSONResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
