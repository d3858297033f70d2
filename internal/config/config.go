package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// API key precedence order:
// 1. Vault (if configured) - highest priority
// 2. Config file values
// 3. Environment variables (TALENTSCOUT_AI_APIKEY, GEMINI_API_KEY)
// 4. Default values - lowest priority
type Config struct {
	AI            AIConfig            `mapstructure:"ai"`
	Interview     InterviewConfig     `mapstructure:"interview"`
	Server        ServerConfig        `mapstructure:"server"`
	App           AppConfig           `mapstructure:"app"`
	Vault         VaultConfig         `mapstructure:"vault"`
	Observability ObservabilityConfig `mapstructure:"observability"`

	// viper instance retained for change watching; not decoded.
	viper *viper.Viper `mapstructure:"-"`

	// mu guards the sections ApplyReload republishes (Interview, App).
	// Every other section is fixed once the process starts.
	mu sync.RWMutex `mapstructure:"-"`
}

// AIConfig holds text-completion provider configuration. An empty APIKey is
// a valid mode: the conversation engine then runs on templated fallbacks and
// never calls out.
type AIConfig struct {
	Provider       string               `mapstructure:"provider"`
	Model          string               `mapstructure:"model"`
	APIKey         string               `mapstructure:"apiKey"`
	Timeout        time.Duration        `mapstructure:"timeout"`
	MaxRetries     int                  `mapstructure:"maxRetries"`
	Temperature    float32              `mapstructure:"temperature"`
	CustomPrompts  PromptConfig         `mapstructure:"customPrompts"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`
}

// PromptConfig allows overriding the built-in prompt templates.
type PromptConfig struct {
	ExtractField      string `mapstructure:"extractField"`
	GenerateQuestions string `mapstructure:"generateQuestions"`
}

// CircuitBreakerConfig represents circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxRequests      uint32        `mapstructure:"maxRequests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MinRequests      uint32        `mapstructure:"minRequests"`
	FailureThreshold float64       `mapstructure:"failureThreshold"`
}

// InterviewConfig tunes the conversation flow.
type InterviewConfig struct {
	MaxQuestions int `mapstructure:"maxQuestions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"`

	// Request size limit in bytes
	MaxRequestSize int64 `mapstructure:"maxRequestSize"`

	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Session   SessionConfig   `mapstructure:"session"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	RequestsPerMin int           `mapstructure:"requestsPerMin"`
	BurstCapacity  int           `mapstructure:"burstCapacity"`
	Window         time.Duration `mapstructure:"window"`
}

// SessionConfig governs the in-memory session store.
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanupInterval"`
	MaxSessions     int           `mapstructure:"maxSessions"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
}

// ObservabilityConfig holds tracing and metrics configuration.
type ObservabilityConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	ServiceName    string  `mapstructure:"serviceName"`
	ConsoleTraces  bool    `mapstructure:"consoleTraces"`
	SampleRate     float64 `mapstructure:"sampleRate"`
	MetricsEnabled bool    `mapstructure:"metricsEnabled"`
}

// LoadConfig loads configuration from defaults, an optional YAML config file
// and TALENTSCOUT_* environment variables, in increasing precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TALENTSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/talentscout/")
	v.AddConfigPath("$HOME/.talentscout")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyFallbacks()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Keep the viper instance for change watching
	config.viper = v

	return &config, nil
}

// applyFallbacks applies legacy environment variable fallbacks.
func (c *Config) applyFallbacks() {
	if c.AI.APIKey == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.AI.APIKey = key
		}
	}

	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("TALENTSCOUT_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = strings.Split(apiKeysEnv, ",")
			for i, key := range c.Server.APIKeys {
				c.Server.APIKeys[i] = strings.TrimSpace(key)
			}
		}
	}
}

// Validate checks the configuration for inconsistencies that would only
// surface later at request time.
func (c *Config) Validate() error {
	if c.AI.Provider != "gemini" && c.AI.Provider != "" {
		return fmt.Errorf("unsupported ai provider: %s", c.AI.Provider)
	}
	if c.Interview.MaxQuestions < 1 || c.Interview.MaxQuestions > 10 {
		return fmt.Errorf("interview.maxQuestions must be in [1,10], got %d", c.Interview.MaxQuestions)
	}
	if !slices.Contains(c.App.SupportedFormats, c.App.DefaultFormat) {
		return fmt.Errorf("app.defaultFormat %q is not among supported formats %v",
			c.App.DefaultFormat, c.App.SupportedFormats)
	}
	if c.Server.RateLimit.Enabled && c.Server.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("server.rateLimit.requestsPerMin must be positive when rate limiting is enabled")
	}
	if c.Server.Session.TTL <= 0 {
		return fmt.Errorf("server.session.ttl must be positive")
	}
	return nil
}
