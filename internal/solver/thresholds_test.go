package solver

import "testing"

func TestStarThresholds(t *testing.T) {
	tests := []struct {
		name      string
		bestMoves int
		expected  [4]int
	}{
		{
			name:      "tutorial floor",
			bestMoves: 2,
			expected:  [4]int{2, 3, 4, 5},
		},
		{
			name:      "zero-move level floors to tutorial",
			bestMoves: 0,
			expected:  [4]int{2, 3, 4, 5},
		},
		{
			name:      "small level keeps +1 spacing",
			bestMoves: 5,
			expected:  [4]int{5, 6, 7, 8},
		},
		{
			name:      "mid level uses percentage spread",
			bestMoves: 20,
			expected:  [4]int{20, 23, 26, 28},
		},
		{
			// 25*1.30 is exactly 32.5; half rounds to even, so the
			// 1-star cutoff is 32, not 33.
			name:      "half values round to even",
			bestMoves: 25,
			expected:  [4]int{25, 29, 32, 35},
		},
		{
			name:      "large level",
			bestMoves: 100,
			expected:  [4]int{100, 115, 130, 140},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StarThresholds(tt.bestMoves)
			if got != tt.expected {
				t.Errorf("StarThresholds(%d) = %v, want %v", tt.bestMoves, got, tt.expected)
			}
		})
	}
}

func TestStarThresholdsMonotonic(t *testing.T) {
	for best := 0; best <= 60; best++ {
		th := StarThresholds(best)
		for i := 1; i < len(th); i++ {
			if th[i] <= th[i-1] {
				t.Fatalf("StarThresholds(%d) = %v not strictly increasing", best, th)
			}
		}
	}
}
