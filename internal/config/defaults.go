package config

import (
	_ "embed"
)

//go:embed defaults/solver.yaml
var defaultSolverYAML []byte

// DefaultConfig returns the default solver configuration. Matches the
// embedded defaults/solver.yaml.
func DefaultConfig() Config {
	return Config{
		MoveLimit: 0,
		Ensemble: EnsembleConfig{
			NoiseRuns:      3,
			NoiseMagnitude: 8,
		},
	}
}
