package tracker

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// MinCostMatcher assigns detections to tracks by solving the assignment
// globally, minimizing the total displacement over all tracks with the
// Jonker-Volgenant algorithm.  Unlike GreedyNearestMatcher it does not swap
// identities when two balls cross paths with a cheaper global assignment
// available.
type MinCostMatcher struct{}

// Match implements the Matcher interface
func (MinCostMatcher) Match(tracks, detections []image.Point) []int {

	m := len(tracks)
	n := len(detections)

	assign := make([]int, m)
	for i := range assign {
		assign[i] = -1
	}

	if m == 0 || n == 0 {
		return assign
	}

	// pad the cost matrix out to square so rectangular frames solve too,
	// the pad value is uniform so it never biases which real pairs match
	size := m
	if n > size {
		size = n
	}

	maxCost := 0.0
	for _, pos := range tracks {
		for _, det := range detections {
			if d := dist(pos, det); d > maxCost {
				maxCost = d
			}
		}
	}

	cost := mat.NewDense(size, size, nil)

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if i < m && j < n {
				cost.Set(i, j, dist(tracks[i], detections[j]))
			} else {
				cost.Set(i, j, maxCost+1)
			}
		}
	}

	rows := make([][]float64, size)
	for i := range rows {
		rows[i] = cost.RawRowView(i)
	}

	rowSol := make([]int, size)
	colSol := make([]int, size)

	if err := solveLap(size, rows, rowSol, colSol); err != nil {
		// solver failure degrades to the greedy strategy rather than
		// dropping the frame
		return GreedyNearestMatcher{}.Match(tracks, detections)
	}

	for i := 0; i < m; i++ {
		if rowSol[i] >= 0 && rowSol[i] < n {
			assign[i] = rowSol[i]
		}
	}

	return assign
}
