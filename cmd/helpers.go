package cmd

import (
	"fmt"
	"time"

	"ragview/internal/api"
	"ragview/internal/config"
)

// loadConfig loads and validates the config, applying the --base-url
// override when set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newClient creates an API client from config.
func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
}
