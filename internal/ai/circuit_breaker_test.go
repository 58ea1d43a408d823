package ai

import (
	goerrors "errors"
	"fmt"
	"testing"
	"time"

	"atscore/internal/config"
	"atscore/internal/errors"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

func testLogger(t *testing.T) *errors.Logger {
	t.Helper()
	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("errors.New: %v", err)
	}
	return logger
}

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      2,
			FailureThreshold: 0.5,
		},
	}
}

func TestNewAICircuitBreakerDisabled(t *testing.T) {
	cb := NewAICircuitBreaker("keyword", breakerConfig(false), testLogger(t))
	if cb != nil {
		t.Fatal("disabled config should return nil breaker")
	}

	// A nil breaker executes the call directly.
	resp, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	})
	if err != nil || resp == nil {
		t.Errorf("nil breaker passthrough: resp=%v err=%v", resp, err)
	}

	if !cb.IsHealthy() {
		t.Error("nil breaker should report healthy")
	}
	stats := cb.GetStats()
	if stats["enabled"] != false {
		t.Errorf("nil breaker stats = %v", stats)
	}
}

func TestAICircuitBreakerExecute(t *testing.T) {
	cb := NewAICircuitBreaker("keyword", breakerConfig(true), testLogger(t))
	if cb == nil {
		t.Fatal("enabled config should return a breaker")
	}

	want := &genai.GenerateContentResponse{}
	resp, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		return want, nil
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp != want {
		t.Error("Execute should return the function's response")
	}

	if !cb.IsHealthy() {
		t.Error("breaker should be healthy after a success")
	}
}

func TestAICircuitBreakerTripsOnFailures(t *testing.T) {
	cb := NewAICircuitBreaker("keyword", breakerConfig(true), testLogger(t))

	boom := fmt.Errorf("upstream unavailable")
	for i := 0; i < 2; i++ {
		if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
			return nil, boom
		}); !goerrors.Is(err, boom) {
			t.Fatalf("failure %d: err = %v, want %v", i, err, boom)
		}
	}

	// Two failures out of two requests exceeds the 0.5 threshold.
	if cb.IsHealthy() {
		t.Fatal("breaker should be open after consecutive failures")
	}

	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		t.Error("function should not run while breaker is open")
		return nil, nil
	})
	if !goerrors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}

	stats := cb.GetStats()
	if stats["enabled"] != true {
		t.Errorf("enabled breaker stats = %v", stats)
	}
	if stats["name"] != "AI-keyword" {
		t.Errorf("breaker name = %v", stats["name"])
	}
}

func TestNewModelCircuitBreaker(t *testing.T) {
	cb := NewModelCircuitBreaker("keyword", breakerConfig(true), testLogger(t))
	if cb == nil {
		t.Fatal("enabled config should return a model breaker")
	}

	model, err := cb.ExecuteModel(func() (*genai.Model, error) {
		return &genai.Model{Name: "gemini-2.0-flash"}, nil
	})
	if err != nil {
		t.Fatalf("ExecuteModel: %v", err)
	}
	if model == nil || model.Name != "gemini-2.0-flash" {
		t.Errorf("model = %+v", model)
	}
	if !cb.IsModelHealthy() {
		t.Error("model breaker should be healthy")
	}

	var disabled *ModelCircuitBreaker
	if !disabled.IsModelHealthy() {
		t.Error("nil model breaker should report healthy")
	}
	if stats := disabled.GetModelStats(); stats["enabled"] != false {
		t.Errorf("nil model breaker stats = %v", stats)
	}
}

func TestBreakersAreIndependentPerOperation(t *testing.T) {
	logger := testLogger(t)
	keyword := NewAICircuitBreaker("keyword", breakerConfig(true), logger)
	completeness := NewAICircuitBreaker("completeness", breakerConfig(true), logger)

	boom := fmt.Errorf("quota exceeded")
	for i := 0; i < 2; i++ {
		keyword.Execute(func() (*genai.GenerateContentResponse, error) {
			return nil, boom
		})
	}

	if keyword.IsHealthy() {
		t.Error("keyword breaker should be open")
	}
	if !completeness.IsHealthy() {
		t.Error("completeness breaker must not share state with keyword")
	}
}
