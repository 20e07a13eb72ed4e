// Package pose estimates a robot's 2D position and heading from two
// color-coded markers seen by a top-down camera.
package pose

import (
	"gocv.io/x/gocv"
)

// Point is a 2D position in pixel coordinates, sub-pixel precise since it
// comes from a minimal enclosing circle fit
type Point struct {
	X float64
	Y float64
}

// DetectMarker locates a single marker in a binary mask isolating its color
// range.  It succeeds only when the mask holds exactly one connected region,
// returning the centroid of the region's minimal enclosing circle.  Zero
// regions, or more than one, fail the detection, an ambiguous frame is
// rejected rather than guessed at.
func DetectMarker(mask gocv.Mat) (Point, bool) {

	contours := gocv.FindContours(mask, gocv.RetrievalCComp, gocv.ChainApproxNone)
	defer contours.Close()

	if contours.Size() != 1 {
		return Point{}, false
	}

	x, y, _ := gocv.MinEnclosingCircle(contours.At(0))

	return Point{X: float64(x), Y: float64(y)}, true
}
