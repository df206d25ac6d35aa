// Package config provides YAML-based solver configuration loading for
// the sortsolve tool: move caps, ensemble settings and strategy weight
// profiles.
package config

import "github.com/warmaxegames/sort-resort-solver/internal/solver"

// Config contains all tunables for the solving entry points.
type Config struct {
	// MoveLimit caps every attempt when positive; 0 keeps the cap
	// proportional to the level's item count.
	MoveLimit  int               `yaml:"move_limit"`
	Ensemble   EnsembleConfig    `yaml:"ensemble"`
	Strategies []StrategyProfile `yaml:"strategies,omitempty"`
}

// EnsembleConfig controls SolveLevelBest's restart schedule.
type EnsembleConfig struct {
	NoiseRuns      int `yaml:"noise_runs"`
	NoiseMagnitude int `yaml:"noise_magnitude"`
}

// StrategyProfile is a scorer weight profile. Omitted weights default
// to 1.0 so a profile can override a single axis.
type StrategyProfile struct {
	Name          string   `yaml:"name"`
	PairWeight    *float64 `yaml:"pair_weight,omitempty"`
	RevealWeight  *float64 `yaml:"reveal_weight,omitempty"`
	CautionWeight *float64 `yaml:"caution_weight,omitempty"`
}

// SolverStrategies converts the configured profiles for the solver.
// An empty list means the built-in ensemble.
func (c Config) SolverStrategies() []solver.Strategy {
	if len(c.Strategies) == 0 {
		return solver.DefaultStrategies()
	}
	out := make([]solver.Strategy, 0, len(c.Strategies))
	for _, p := range c.Strategies {
		out = append(out, solver.Strategy{
			Name:          p.Name,
			PairWeight:    weightOr(p.PairWeight, 1.0),
			RevealWeight:  weightOr(p.RevealWeight, 1.0),
			CautionWeight: weightOr(p.CautionWeight, 1.0),
		})
	}
	return out
}

// StrategyByName finds a configured (or built-in) profile by name.
func (c Config) StrategyByName(name string) (solver.Strategy, bool) {
	for _, s := range c.SolverStrategies() {
		if s.Name == name {
			return s, true
		}
	}
	return solver.Strategy{}, false
}

// BestOptions assembles the ensemble options for SolveLevelBest.
func (c Config) BestOptions() solver.BestOptions {
	return solver.BestOptions{
		Strategies:     c.SolverStrategies(),
		NoiseRuns:      c.Ensemble.NoiseRuns,
		NoiseMagnitude: c.Ensemble.NoiseMagnitude,
		MoveLimit:      c.MoveLimit,
	}
}

func weightOr(w *float64, fallback float64) float64 {
	if w == nil {
		return fallback
	}
	return *w
}
