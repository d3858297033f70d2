package server

import (
	"time"

	"talentscout/internal/ai"
	"talentscout/internal/config"
	"talentscout/internal/conversation"
	talentscoutErrors "talentscout/internal/errors"
	"talentscout/internal/observability"
)

// MessageRequest represents the request body for the message endpoint
type MessageRequest struct {
	Message string `json:"message"`
}

// MessageResponse is one assistant turn.
type MessageResponse struct {
	Reply string `json:"reply"`
	State string `json:"state"`
	Ended bool   `json:"ended"`
}

// SessionResponse describes a session's current flow position.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Ended     bool   `json:"ended"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimiter *LimiterManager

	// Interview components
	Provider ai.Provider
	Sessions *SessionManager
	Metrics  *observability.Metrics

	Logger    *talentscoutErrors.Logger
	startTime time.Time
}

// NewServer creates a Server wired to the given AI service. aiService.Provider
// may be nil; engines then run in fallback-only mode.
func NewServer(cfg *config.Config, version string, aiService *ai.Service,
	metrics *observability.Metrics, logger *talentscoutErrors.Logger) *Server {

	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.Server.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *LimiterManager
	if cfg.Server.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.Server.RateLimit.RequestsPerMin,
			cfg.Server.RateLimit.BurstCapacity,
			logger,
		)
	}

	provider := observability.InstrumentProvider(aiService.Provider, metrics)
	newEngine := func() *conversation.Engine {
		return conversation.NewEngine(provider, cfg.InterviewSettings().MaxQuestions, logger)
	}

	sessions := NewSessionManager(
		cfg.Server.Session.TTL,
		cfg.Server.Session.CleanupInterval,
		cfg.Server.Session.MaxSessions,
		newEngine, metrics, logger,
	)

	return &Server{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        version,
		AppConfig:      cfg,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.Server.MaxRequestSize,
		RateLimiter:    rateLimiter,
		Provider:       provider,
		Sessions:       sessions,
		Metrics:        metrics,
		Logger:         logger,
		startTime:      time.Now(),
	}
}
