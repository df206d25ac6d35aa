package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	body := `
move_limit: 250
ensemble:
  noise_runs: 5
  noise_magnitude: 12
strategies:
  - name: custom
    pair_weight: 1.5
  - name: plain
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MoveLimit != 250 {
		t.Errorf("MoveLimit = %d, want 250", cfg.MoveLimit)
	}
	if cfg.Ensemble.NoiseRuns != 5 || cfg.Ensemble.NoiseMagnitude != 12 {
		t.Errorf("ensemble = %+v", cfg.Ensemble)
	}

	strategies := cfg.SolverStrategies()
	if len(strategies) != 2 {
		t.Fatalf("strategies = %d, want 2", len(strategies))
	}
	if strategies[0].PairWeight != 1.5 {
		t.Errorf("custom pair weight = %v", strategies[0].PairWeight)
	}
	// Omitted weights default to 1.0.
	if strategies[0].RevealWeight != 1.0 || strategies[1].PairWeight != 1.0 {
		t.Errorf("default weights = %v, %v", strategies[0].RevealWeight, strategies[1].PairWeight)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestEmbeddedDefault(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MoveLimit != 0 {
		t.Errorf("MoveLimit = %d, want 0 (proportional cap)", cfg.MoveLimit)
	}
	if cfg.Ensemble.NoiseRuns != 3 || cfg.Ensemble.NoiseMagnitude != 8 {
		t.Errorf("ensemble = %+v", cfg.Ensemble)
	}

	strategies := cfg.SolverStrategies()
	if len(strategies) != 5 {
		t.Fatalf("strategies = %d, want 5", len(strategies))
	}
	names := make(map[string]bool, len(strategies))
	for _, s := range strategies {
		names[s.Name] = true
	}
	for _, want := range []string{"balanced", "pair_focused", "reveal_focused", "cautious", "aggressive"} {
		if !names[want] {
			t.Errorf("missing built-in strategy %q", want)
		}
	}
}

func TestStrategyByName(t *testing.T) {
	cfg := DefaultConfig()

	s, ok := cfg.StrategyByName("reveal_focused")
	if !ok {
		t.Fatal("reveal_focused not found")
	}
	if s.RevealWeight <= s.PairWeight {
		t.Errorf("reveal_focused weights = pair %v reveal %v", s.PairWeight, s.RevealWeight)
	}

	if _, ok := cfg.StrategyByName("nonexistent"); ok {
		t.Error("unknown strategy should not resolve")
	}
}
