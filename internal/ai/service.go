package ai

import (
	"context"

	"talentscout/internal/config"
	"talentscout/internal/errors"
)

// Service provides AI-powered text operations for the interview flow.
type Service struct {
	Provider Provider
	logger   *errors.Logger
}

// NewService creates an AI service with the specified provider. An empty
// provider name yields a service with no Provider; the conversation engine
// then runs entirely on its local fallbacks.
func NewService(ctx context.Context, cfg config.AIConfig, logger *errors.Logger) (*Service, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.APIKey == "" {
			logger.Warn("No API key configured, running in fallback mode",
				"provider", cfg.Provider)
			return &Service{logger: logger}, nil
		}
		provider, err := NewGeminiProvider(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &Service{Provider: provider, logger: logger}, nil
	case "":
		logger.Warn("No AI provider configured, running in fallback mode")
		return &Service{logger: logger}, nil
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"unsupported AI provider", nil).
			WithContext("provider", cfg.Provider)
	}
}

// Close releases provider resources.
func (s *Service) Close() error {
	if s.Provider == nil {
		return nil
	}
	return s.Provider.Close()
}
