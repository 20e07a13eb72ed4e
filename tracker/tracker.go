package tracker

import (
	"image"
)

// MultiObjectTracker associates each frame's detections with the previous
// frame's tracks, preserving identity across frames, and grows the track set
// when new balls appear.  It is frame-synchronous, Update is called once per
// frame and runs to completion before the next frame, so no locking is done.
type MultiObjectTracker struct {
	// matcher is the data association strategy
	matcher Matcher
	// maxMissedFrames evicts a track after this many consecutive unmatched
	// frames, zero means tracks are never evicted
	maxMissedFrames int
	// trackIDCount is the counter for assigning unique track IDs
	trackIDCount int
	// tracks in creation order
	tracks []*trackState
}

// trackState is the tracker's live entry for one track
type trackState struct {
	Track
	// missed counts consecutive frames without a claimed detection
	missed int
}

// NewMultiObjectTracker returns a tracker using the given matching strategy.
// A nil matcher uses GreedyNearestMatcher.  maxMissedFrames sets how many
// consecutive unmatched frames a track survives before eviction, zero keeps
// unmatched tracks forever at their last known position.
func NewMultiObjectTracker(matcher Matcher, maxMissedFrames int) *MultiObjectTracker {

	if matcher == nil {
		matcher = GreedyNearestMatcher{}
	}

	return &MultiObjectTracker{
		matcher:         matcher,
		maxMissedFrames: maxMissedFrames,
	}
}

// Reset clears all tracks and the ID counter
func (t *MultiObjectTracker) Reset() {
	t.trackIDCount = 0
	t.tracks = nil
}

// Update matches the frame's detections against the existing tracks and
// returns a snapshot of the full track list.  Tracks that claim a detection
// move to its position and advance their last seen time.  When there are
// more detections than tracks, one new track is created per unclaimed
// detection.  When there are fewer, the excess tracks keep their last known
// position and stay eligible for matching on later frames.  An empty
// detection set is a valid steady state, no growth and no matches.
func (t *MultiObjectTracker) Update(detections []image.Point, timestamp int64) []Track {

	positions := make([]image.Point, len(t.tracks))
	for i, ts := range t.tracks {
		positions[i] = ts.Position
	}

	assign := t.matcher.Match(positions, detections)

	claimed := make([]bool, len(detections))

	for i, ts := range t.tracks {

		j := assign[i]

		if j < 0 {
			ts.missed++
			continue
		}

		ts.Position = detections[j]
		ts.LastSeenAt = timestamp
		ts.missed = 0
		claimed[j] = true
	}

	// grow only when this frame carried more detections than tracks existed
	// going into the update
	if len(detections) > len(positions) {
		for j, det := range detections {

			if claimed[j] {
				continue
			}

			t.trackIDCount++
			t.tracks = append(t.tracks, &trackState{
				Track: Track{
					ID:         t.trackIDCount,
					CreatedAt:  timestamp,
					LastSeenAt: timestamp,
					Position:   det,
				},
			})
		}
	}

	if t.maxMissedFrames > 0 {
		t.evict()
	}

	return t.snapshot()
}

// Tracks returns a snapshot of the current track list without updating
func (t *MultiObjectTracker) Tracks() []Track {
	return t.snapshot()
}

// Count returns the number of live tracks
func (t *MultiObjectTracker) Count() int {
	return len(t.tracks)
}

// evict drops tracks that have gone unmatched for maxMissedFrames
// consecutive frames.  Their IDs are never reused.
func (t *MultiObjectTracker) evict() {

	kept := t.tracks[:0]

	for _, ts := range t.tracks {
		if ts.missed < t.maxMissedFrames {
			kept = append(kept, ts)
		}
	}

	t.tracks = kept
}

// snapshot copies the track list for the caller
func (t *MultiObjectTracker) snapshot() []Track {

	out := make([]Track, len(t.tracks))

	for i, ts := range t.tracks {
		out[i] = ts.Track
	}

	return out
}
