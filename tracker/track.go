package tracker

import (
	"image"
)

// Track is a persistent identity assigned to one detected ball.  Instances
// returned by the tracker are snapshot copies, the tracker's own state
// mutates every frame.
type Track struct {
	// ID is a unique ID assigned once at creation.  IDs start at 1, are
	// never reused and increase in creation order.
	ID int
	// CreatedAt is the timestamp of the frame the track was created on
	CreatedAt int64
	// LastSeenAt is the timestamp of the most recent frame the track
	// claimed a detection on
	LastSeenAt int64
	// Position is the most recently observed centroid of the ball
	Position image.Point
}

// Elapsed returns how long the track has been alive, the time between its
// creation and the last frame it was seen on
func (t Track) Elapsed() int64 {
	return t.LastSeenAt - t.CreatedAt
}
