package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: "gemini",
			Model:    "gemini-2.0-flash",
		},
		Interview: InterviewConfig{MaxQuestions: 4},
		Server: ServerConfig{
			Session: SessionConfig{TTL: 30 * time.Minute},
		},
		App: AppConfig{
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "csv"},
		},
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.AI.Provider != "gemini" {
		t.Errorf("ai.provider = %q, want gemini", cfg.AI.Provider)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("ai.model = %q", cfg.AI.Model)
	}
	if cfg.Interview.MaxQuestions != 4 {
		t.Errorf("interview.maxQuestions = %d, want 4", cfg.Interview.MaxQuestions)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server.port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Session.TTL != 30*time.Minute {
		t.Errorf("server.session.ttl = %v", cfg.Server.Session.TTL)
	}
	if cfg.App.DefaultFormat != "json" {
		t.Errorf("app.defaultFormat = %q", cfg.App.DefaultFormat)
	}
	if !cfg.AI.CircuitBreaker.Enabled {
		t.Error("circuit breaker should be enabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "empty provider allowed",
			mutate: func(c *Config) { c.AI.Provider = "" },
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.AI.Provider = "openai" },
			wantErr: true,
		},
		{
			name:    "zero questions",
			mutate:  func(c *Config) { c.Interview.MaxQuestions = 0 },
			wantErr: true,
		},
		{
			name:    "too many questions",
			mutate:  func(c *Config) { c.Interview.MaxQuestions = 11 },
			wantErr: true,
		},
		{
			name:    "default format not supported",
			mutate:  func(c *Config) { c.App.DefaultFormat = "xml" },
			wantErr: true,
		},
		{
			name: "rate limit enabled without rate",
			mutate: func(c *Config) {
				c.Server.RateLimit.Enabled = true
				c.Server.RateLimit.RequestsPerMin = 0
			},
			wantErr: true,
		},
		{
			name:    "zero session ttl",
			mutate:  func(c *Config) { c.Server.Session.TTL = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
