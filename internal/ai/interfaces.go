package ai

import (
	"context"

	"talentscout/internal/errors"
)

// ErrFieldNotFound is returned by ExtractField when the model reports the
// requested field is absent from the utterance. Callers treat it exactly
// like a transport failure: fall back to the verbatim input.
var ErrFieldNotFound = errors.NewAIError(errors.ErrCodeFieldNotFound,
	"field not found in input", nil)

// Provider is the text-completion collaborator behind the conversation
// engine. Implementations are best-effort: the engine recovers from any
// error locally and never surfaces it to the candidate.
type Provider interface {
	// ExtractField pulls a named field ("full name", "email address", ...)
	// out of a free-text utterance. Returns ErrFieldNotFound when the model
	// reports the NOT_FOUND sentinel.
	ExtractField(ctx context.Context, field, text string) (string, error)

	// GenerateQuestions produces up to max technical questions for the given
	// tech stack, in the order the model emitted them.
	GenerateQuestions(ctx context.Context, techStack string, max int) ([]string, error)

	// GetModelInfo checks readiness of the configured model for health checks.
	GetModelInfo(ctx context.Context) *ModelInfo

	Close() error
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}
