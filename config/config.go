// Package config loads the CLI's settings. Values come from, in order of
// precedence: environment variables (OPENAI_*), an optional
// ~/.openaikit/config.yaml, and built-in defaults. A .env file in the
// working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings are the resolved CLI settings.
type Settings struct {
	APIKey       string
	BaseURL      string
	Organization string
	DefaultModel string
	Timeout      time.Duration
}

// Load resolves settings from the environment and the optional config file.
// A missing config file is not an error; a malformed one is.
func Load() (*Settings, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("OPENAI")
	v.AutomaticEnv()

	v.SetDefault("default_model", "gpt-3.5-turbo")
	v.SetDefault("timeout", "60s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.openaikit")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", v.GetString("timeout"), err)
	}

	return &Settings{
		APIKey:       v.GetString("api_key"),
		BaseURL:      v.GetString("base_url"),
		Organization: v.GetString("organization"),
		DefaultModel: v.GetString("default_model"),
		Timeout:      timeout,
	}, nil
}
