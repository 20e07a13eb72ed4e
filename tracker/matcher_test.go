package tracker

import (
	"image"
	"testing"
)

func TestGreedyNearestMatch(t *testing.T) {

	tests := []struct {
		name       string
		tracks     []image.Point
		detections []image.Point
		expected   []int
	}{
		{
			name:       "nearest claimed per track",
			tracks:     []image.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
			detections: []image.Point{{X: 99, Y: 0}, {X: 1, Y: 0}},
			expected:   []int{1, 0},
		},
		{
			name:       "tie broken by lowest detection index",
			tracks:     []image.Point{{X: 5, Y: 0}},
			detections: []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
			expected:   []int{0},
		},
		{
			name:       "no distance gate, far detection still claimed",
			tracks:     []image.Point{{X: 0, Y: 0}},
			detections: []image.Point{{X: 1000, Y: 1000}},
			expected:   []int{0},
		},
		{
			name:       "pool exhaustion leaves later tracks unmatched",
			tracks:     []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}},
			detections: []image.Point{{X: 9, Y: 0}},
			expected:   []int{0, -1, -1},
		},
		{
			name:       "no detections",
			tracks:     []image.Point{{X: 0, Y: 0}},
			detections: nil,
			expected:   []int{-1},
		},
	}

	m := GreedyNearestMatcher{}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			assign := m.Match(tc.tracks, tc.detections)

			if len(assign) != len(tc.expected) {
				t.Fatalf("expected %d assignments, got %d", len(tc.expected), len(assign))
			}

			for i := range assign {
				if assign[i] != tc.expected[i] {
					t.Errorf("track %d: expected detection %d, got %d",
						i, tc.expected[i], assign[i])
				}
			}
		})
	}
}

// TestGreedyPoolExhaustionClaimsNearestFirst shows the greedy property that
// an earlier track claims the shared nearest detection even when a later
// track is closer to it
func TestGreedyPoolExhaustionClaimsNearestFirst(t *testing.T) {

	tracks := []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	detections := []image.Point{{X: 9, Y: 0}}

	assign := GreedyNearestMatcher{}.Match(tracks, detections)

	if assign[0] != 0 || assign[1] != -1 {
		t.Errorf("expected creation-order claim [0 -1], got %v", assign)
	}
}

func TestMinCostMatchAvoidsGreedyTrap(t *testing.T) {

	// greedy lets track 1 take the tied detection at index 0 and forces
	// track 2 onto the far one, total displacement 10.  The global optimum
	// crosses the pair for a total of 4.
	tracks := []image.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}
	detections := []image.Point{{X: 3, Y: 0}, {X: -3, Y: 0}}

	greedy := GreedyNearestMatcher{}.Match(tracks, detections)

	if greedy[0] != 0 || greedy[1] != 1 {
		t.Fatalf("greedy baseline changed, got %v", greedy)
	}

	assign := MinCostMatcher{}.Match(tracks, detections)

	if assign[0] != 1 || assign[1] != 0 {
		t.Errorf("expected globally optimal assignment [1 0], got %v", assign)
	}
}

func TestMinCostMatchRectangular(t *testing.T) {

	// with fewer detections than tracks the optimal matcher leaves the
	// distant track unmatched instead of letting creation order win
	tracks := []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	detections := []image.Point{{X: 9, Y: 0}}

	assign := MinCostMatcher{}.Match(tracks, detections)

	if assign[0] != -1 || assign[1] != 0 {
		t.Errorf("expected assignment [-1 0], got %v", assign)
	}

	// more detections than tracks, every track gets one
	assign = MinCostMatcher{}.Match(
		[]image.Point{{X: 0, Y: 0}},
		[]image.Point{{X: 50, Y: 0}, {X: 2, Y: 0}},
	)

	if assign[0] != 1 {
		t.Errorf("expected track to claim detection 1, got %v", assign)
	}
}

func TestMinCostMatchEmpty(t *testing.T) {

	assign := MinCostMatcher{}.Match(nil, []image.Point{{X: 1, Y: 1}})

	if len(assign) != 0 {
		t.Errorf("expected no assignments, got %v", assign)
	}

	assign = MinCostMatcher{}.Match([]image.Point{{X: 1, Y: 1}}, nil)

	if len(assign) != 1 || assign[0] != -1 {
		t.Errorf("expected [-1], got %v", assign)
	}
}
