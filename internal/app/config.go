package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SeedPath    string // .hcl file or directory of .hcl files
	ModulesPath string // root directory holding <module>/manifest.hcl files

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SeedPath == "" {
		return nil, errors.New("SeedPath is a required configuration field and cannot be empty")
	}
	if cfg.ModulesPath == "" {
		return nil, errors.New("ModulesPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
