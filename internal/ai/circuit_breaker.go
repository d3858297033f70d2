package ai

import (
	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"

	"talentscout/internal/config"
	"talentscout/internal/errors"
)

// AICircuitBreaker wraps completion calls with the circuit breaker pattern so
// a dead upstream fails fast into the conversation engine's local fallbacks
// instead of stalling every turn on timeouts.
type AICircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[*genai.GenerateContentResponse]
}

// NewAICircuitBreaker creates a circuit breaker from configuration. Returns
// nil when disabled; Execute on a nil breaker is a direct pass-through.
func NewAICircuitBreaker(cfg config.CircuitBreakerConfig, logger *errors.Logger) *AICircuitBreaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "AI-completion",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"failure_threshold", cfg.FailureThreshold)
		},
	}

	return &AICircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[*genai.GenerateContentResponse](settings),
	}
}

// Execute runs fn through the breaker when enabled.
func (b *AICircuitBreaker) Execute(fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	if b == nil {
		return fn()
	}
	return b.cb.Execute(fn)
}

// IsHealthy reports whether the breaker is closed (or absent).
func (b *AICircuitBreaker) IsHealthy() bool {
	if b == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}

// GetStats returns breaker counters for the stats endpoint.
func (b *AICircuitBreaker) GetStats() map[string]any {
	if b == nil {
		return map[string]any{"enabled": false}
	}
	counts := b.cb.Counts()
	return map[string]any{
		"enabled":              true,
		"state":                b.cb.State().String(),
		"requests":             counts.Requests,
		"total_successes":      counts.TotalSuccesses,
		"total_failures":       counts.TotalFailures,
		"consecutive_failures": counts.ConsecutiveFailures,
	}
}
