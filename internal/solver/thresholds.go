package solver

import "math"

// StarThresholds derives the four star move thresholds from the best
// known move count: [3-star, 2-star, 1-star, fail]. Performing at or
// under a cutoff earns that rating. The spread matches the generator's
// calibration, which assumes the ensemble solver's counts, not a
// hypothetical optimal solver's.
func StarThresholds(bestMoves int) [4]int {
	optimal := bestMoves
	if optimal < 2 {
		optimal = 2
	}

	t3 := optimal
	t2 := max(t3+1, roundMult(optimal, 1.15))
	t1 := max(t2+1, roundMult(optimal, 1.30))
	fail := max(t1+1, roundMult(optimal, 1.40))

	return [4]int{t3, t2, t1, fail}
}

// roundMult rounds half to even, reproducing the generator's rounding
// (so 25*1.30 = 32.5 gives 32, not 33).
func roundMult(n int, factor float64) int {
	return int(math.RoundToEven(float64(n) * factor))
}
