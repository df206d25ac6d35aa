package solver

import "strconv"

// Strategy is a weight profile for the move scorer. The weights scale
// the pair-building, reveal and penalty contributions of a move's
// score; 1.0 everywhere reproduces the baseline behavior. A non-zero
// NoiseMagnitude adds seeded noise of up to that many points to each
// candidate, which is how the ensemble diversifies its restarts.
type Strategy struct {
	Name           string
	PairWeight     float64
	RevealWeight   float64
	CautionWeight  float64
	NoiseMagnitude int
}

// Balanced is the baseline profile.
func Balanced() Strategy {
	return Strategy{Name: "balanced", PairWeight: 1, RevealWeight: 1, CautionWeight: 1}
}

// PairFocused favors building pairs over uncovering stock.
func PairFocused() Strategy {
	return Strategy{Name: "pair_focused", PairWeight: 1.4, RevealWeight: 0.85, CautionWeight: 1}
}

// RevealFocused favors uncovering stock over building pairs.
func RevealFocused() Strategy {
	return Strategy{Name: "reveal_focused", PairWeight: 0.85, RevealWeight: 1.4, CautionWeight: 1}
}

// Cautious amplifies penalties, avoiding board-tightening moves.
func Cautious() Strategy {
	return Strategy{Name: "cautious", PairWeight: 1, RevealWeight: 0.9, CautionWeight: 1.6}
}

// Aggressive dampens penalties and chases reveals.
func Aggressive() Strategy {
	return Strategy{Name: "aggressive", PairWeight: 1.1, RevealWeight: 1.3, CautionWeight: 0.5}
}

// DefaultStrategies returns the built-in ensemble in its run order.
func DefaultStrategies() []Strategy {
	return []Strategy{Balanced(), PairFocused(), RevealFocused(), Cautious(), Aggressive()}
}

// withNoise derives a restart profile with the given noise magnitude.
func (s Strategy) withNoise(magnitude, run int) Strategy {
	out := s
	out.Name = s.Name + "_n" + strconv.Itoa(run)
	out.NoiseMagnitude = magnitude
	return out
}
