package main

import (
	"fmt"

	"github.com/phrazzld/bloomtrack-api/internal/config"
)

// loadAppConfig loads and validates configuration from defaults, config.yaml
// and BLOOM_* environment variables.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
