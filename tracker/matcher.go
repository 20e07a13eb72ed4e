package tracker

import (
	"image"
	"math"
)

// Matcher is the data association strategy used by the tracker.  Match
// receives the current track positions in creation order and the frame's
// detections, and returns for each track the index of the detection it
// claims, or -1 when the track goes unmatched.  A detection is claimed by at
// most one track.
type Matcher interface {
	Match(tracks, detections []image.Point) []int
}

// GreedyNearestMatcher claims detections track by track in creation order,
// each track taking the nearest detection remaining in the pool.  Ties are
// broken by the lowest detection index.  There is no maximum distance gate,
// a track claims the nearest remaining detection however far away, so
// identities can swap when two balls cross between frames.
type GreedyNearestMatcher struct{}

// Match implements the Matcher interface
func (GreedyNearestMatcher) Match(tracks, detections []image.Point) []int {

	assign := make([]int, len(tracks))
	for i := range assign {
		assign[i] = -1
	}

	claimed := make([]bool, len(detections))
	remaining := len(detections)

	for i, pos := range tracks {

		if remaining == 0 {
			break
		}

		best := -1
		bestDist := math.MaxFloat64

		for j, det := range detections {

			if claimed[j] {
				continue
			}

			if d := sqDist(pos, det); d < bestDist {
				bestDist = d
				best = j
			}
		}

		assign[i] = best
		claimed[best] = true
		remaining--
	}

	return assign
}

// sqDist returns the squared euclidean distance between two points
func sqDist(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return dx*dx + dy*dy
}

// dist returns the euclidean distance between two points
func dist(a, b image.Point) float64 {
	return math.Sqrt(sqDist(a, b))
}
