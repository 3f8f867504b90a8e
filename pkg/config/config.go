// Package config loads the process configuration from an optional YAML
// file overlaid with environment variables. Environment wins.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	// ListenAddr is the gateway bind address.
	ListenAddr string `yaml:"listen_addr"`

	// Provider selects the text/chat model backend; media and admin
	// always run on Gemini.
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	// APIKey is the Gemini key. Required: the process refuses to start
	// without one.
	APIKey string `yaml:"api_key"`

	// HistoryDSN selects the history backend by scheme; empty means
	// in-memory. HistoryRetention caps entries per session.
	HistoryDSN       string `yaml:"history_dsn"`
	HistoryRetention int    `yaml:"history_retention"`

	// Video poll loop bounds.
	VideoPollInterval    time.Duration `yaml:"video_poll_interval"`
	VideoMaxPollAttempts int           `yaml:"video_max_poll_attempts"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the baseline configuration before file and
// environment overlays.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Provider:   "gemini",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path (skipped when path is empty or the
// file does not exist), overlays the environment and validates. A
// missing API key is a hard failure.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.overlayEnv()

	if cfg.APIKey == "" {
		return Config{}, errors.New("missing API_KEY or GEMINI_API_KEY")
	}
	return cfg, nil
}

func (c *Config) overlayEnv() {
	setString(&c.ListenAddr, "INDOMIND_LISTEN_ADDR")
	setString(&c.Provider, "INDOMIND_PROVIDER")
	setString(&c.Model, "INDOMIND_MODEL")
	setString(&c.HistoryDSN, "INDOMIND_HISTORY_DSN")
	setInt(&c.HistoryRetention, "INDOMIND_HISTORY_RETENTION")
	setDuration(&c.VideoPollInterval, "INDOMIND_VIDEO_POLL_INTERVAL")
	setInt(&c.VideoMaxPollAttempts, "INDOMIND_VIDEO_MAX_POLL_ATTEMPTS")
	setString(&c.LogLevel, "INDOMIND_LOG_LEVEL")

	setString(&c.APIKey, "API_KEY")
	if c.APIKey == "" {
		setString(&c.APIKey, "GEMINI_API_KEY")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
