package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ParamDir   string // mineral parameter files, one per mineral
	PhaseDir   string // phase interaction files, one per solution
	OutputPath string // generated XML database

	DatasetID   string
	DatasetName string

	// TaxonomyPath optionally points at an HCL file replacing the built-in
	// phase taxonomy.
	TaxonomyPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it. The three path fields are hard
// preconditions of a run.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ParamDir == "" {
		return nil, errors.New("ParamDir is a required configuration field and cannot be empty")
	}
	if cfg.PhaseDir == "" {
		return nil, errors.New("PhaseDir is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
