package tracker

import (
	"image"
	"sync"
)

// Trail keeps a bounded history of positions per track ID, used for drawing
// trails behind the balls
type Trail struct {
	// size is the maximum number of most recent points to keep per track
	size int
	// history of tracked points keyed by track ID
	history map[int][]image.Point
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size is the maximum number
// of most recent points kept per track.
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[int][]image.Point),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[int][]image.Point)
}

// Add appends a track's current position to its history, dropping the oldest
// point once the size limit is exceeded
func (t *Trail) Add(track Track) {
	t.Lock()
	defer t.Unlock()

	points := append(t.history[track.ID], track.Position)

	if len(points) > t.size {
		points = points[1:]
	}

	t.history[track.ID] = points
}

// Points gets the point history for a specific track ID
func (t *Trail) Points(id int) []image.Point {
	t.Lock()
	defer t.Unlock()

	return t.history[id]
}
