package config

import (
	"fmt"
	"os"
	"strings"

	"talentscout/internal/errors"

	"github.com/hashicorp/vault/api"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	Secrets VaultSecrets `mapstructure:"secrets"`
}

// VaultSecrets defines where to find secrets in Vault.
type VaultSecrets struct {
	// GeminiKey is the KV path of the Gemini API key, e.g.
	// "secret/data/talentscout/gemini". The secret is expected to carry an
	// "api_key" field.
	GeminiKey string `mapstructure:"geminiKey"`
}

// ResolveVaultSecrets overlays secrets from Vault onto the configuration.
// With Vault disabled it is a no-op; with Vault enabled a failure is fatal,
// since silently proceeding without the expected credential would put the
// service into fallback-only mode by accident.
func (c *Config) ResolveVaultSecrets(logger *errors.Logger) error {
	if !c.Vault.Enabled {
		logger.Debug("Vault integration disabled")
		return nil
	}

	client, err := newVaultClient(c.Vault, logger)
	if err != nil {
		return err
	}

	if c.Vault.Secrets.GeminiKey != "" {
		key, err := readVaultField(client, c.Vault.Secrets.GeminiKey, "api_key")
		if err != nil {
			return errors.NewConfigError(errors.ErrCodeMissingAPIKey,
				"failed to read Gemini API key from Vault", err).
				WithContext("secret_path", c.Vault.Secrets.GeminiKey)
		}
		c.AI.APIKey = key
		logger.Info("Resolved AI API key from Vault",
			"secret_path", c.Vault.Secrets.GeminiKey)
	}

	return nil
}

// newVaultClient creates and authenticates a Vault API client.
func newVaultClient(cfg VaultConfig, logger *errors.Logger) (*api.Client, error) {
	vaultConfig := api.DefaultConfig()
	if cfg.Address != "" {
		vaultConfig.Address = cfg.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	token, err := resolveVaultToken(cfg)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	logger.Debug("Vault client initialized",
		"address", vaultConfig.Address,
		"namespace", cfg.Namespace)

	return client, nil
}

// resolveVaultToken resolves the Vault token from config, token file or the
// VAULT_TOKEN environment variable, in that order.
func resolveVaultToken(cfg VaultConfig) (string, error) {
	if cfg.Token != "" {
		return cfg.Token, nil
	}

	if cfg.TokenFile != "" {
		data, err := os.ReadFile(cfg.TokenFile)
		if err != nil {
			return "", fmt.Errorf("failed to read vault token file %s: %w", cfg.TokenFile, err)
		}
		token := strings.TrimSpace(string(data))
		if token == "" {
			return "", fmt.Errorf("vault token file %s is empty", cfg.TokenFile)
		}
		return token, nil
	}

	if token := os.Getenv("VAULT_TOKEN"); token != "" {
		return token, nil
	}

	return "", fmt.Errorf("no vault token configured (set vault.token, vault.tokenFile or VAULT_TOKEN)")
}

// readVaultField reads one field of a KV secret, handling both KV v2
// ("data" nesting) and v1 layouts.
func readVaultField(client *api.Client, path, field string) (string, error) {
	secret, err := client.Logical().Read(path)
	if err != nil {
		return "", fmt.Errorf("vault read %s: %w", path, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", path)
	}

	data := secret.Data
	if nested, ok := secret.Data["data"].(map[string]any); ok {
		data = nested
	}

	value, ok := data[field].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("vault secret %s has no %q field", path, field)
	}
	return value, nil
}
