package config

import (
	"github.com/fsnotify/fsnotify"

	"talentscout/internal/errors"
)

// InterviewSettings returns the current interview tunables. It is the read
// side of ApplyReload and is safe against a concurrent reload.
func (c *Config) InterviewSettings() InterviewConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Interview
}

// AppSettings returns the current general application settings.
func (c *Config) AppSettings() AppConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.App
}

// ApplyReload publishes the hot-reloadable sections from a freshly loaded
// config. The callback passed to Watch runs on viper's watch goroutine while
// request handlers keep reading, so the swap happens under the config lock
// and readers go through InterviewSettings/AppSettings.
func (c *Config) ApplyReload(fresh *Config) {
	c.mu.Lock()
	c.Interview = fresh.Interview
	c.App = fresh.App
	c.mu.Unlock()
}

// Watch registers a callback invoked whenever the loaded config file changes
// on disk. Callers publish tunables from the fresh *Config via ApplyReload;
// connections and listeners are not rebuilt on the fly. A config loaded
// purely from defaults and environment has nothing to watch and Watch is a
// no-op.
func (c *Config) Watch(logger *errors.Logger, onChange func(*Config)) {
	if c.viper == nil || c.viper.ConfigFileUsed() == "" {
		return
	}

	c.viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("Config file changed, reloading", "file", e.Name, "op", e.Op.String())

		var fresh Config
		if err := c.viper.Unmarshal(&fresh); err != nil {
			logger.LogError(err, "Failed to unmarshal changed config, keeping previous")
			return
		}
		fresh.applyFallbacks()
		if err := fresh.Validate(); err != nil {
			logger.LogError(err, "Changed config is invalid, keeping previous")
			return
		}
		fresh.viper = c.viper
		onChange(&fresh)
	})
	c.viper.WatchConfig()
}
