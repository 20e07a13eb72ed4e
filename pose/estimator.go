package pose

import (
	"math"
	"sync"

	"gocv.io/x/gocv"
)

// Pose is the robot's position and orientation at a point in time.  Position
// is the rear marker's centroid, Heading the angle of the rear to front
// marker vector in radians, 0 pointing along the frame's +x axis with +y
// pointing down in image coordinates.
type Pose struct {
	Position  Point
	Heading   float64
	Timestamp int64
}

// Callback is fired after each successful dual-marker detection with the
// newly published pose
type Callback func(pose Pose)

// Estimator turns the per-frame detections of the robot's front and rear
// markers into a pose.  A pose is published only on frames where both
// markers are found, otherwise the previously published pose stays visible
// unchanged.  The published pose is guarded by a mutex so consumers may poll
// it from another goroutine than the frame loop.
type Estimator struct {
	mu       sync.Mutex
	pose     Pose
	callback Callback
}

// NewEstimator returns an estimator.  The callback may be nil when only the
// pull accessors are used.
func NewEstimator(callback Callback) *Estimator {
	return &Estimator{
		callback: callback,
	}
}

// Update runs marker detection independently on the front and rear masks.
// When both succeed it computes and publishes the new pose, fires the
// callback and returns it with true.  When either marker is missing or
// ambiguous no state is written and the previously published pose is
// returned with false.
func (e *Estimator) Update(frontMask, rearMask gocv.Mat, timestamp int64) (Pose, bool) {

	front, frontOK := DetectMarker(frontMask)
	rear, rearOK := DetectMarker(rearMask)

	if !frontOK || !rearOK {
		return e.Pose(), false
	}

	pose := Pose{
		Position:  rear,
		Heading:   math.Atan2(front.Y-rear.Y, front.X-rear.X),
		Timestamp: timestamp,
	}

	e.mu.Lock()
	e.pose = pose
	e.mu.Unlock()

	if e.callback != nil {
		e.callback(pose)
	}

	return pose, true
}

// Pose returns the last published pose.  Before the first successful
// detection this is the zero pose, position (0,0) heading 0.
func (e *Estimator) Pose() Pose {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pose
}

// Position returns the last published position in pixels
func (e *Estimator) Position() Point {
	return e.Pose().Position
}

// Heading returns the last published heading in radians
func (e *Estimator) Heading() float64 {
	return e.Pose().Heading
}
