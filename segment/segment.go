// Package segment extracts object centroid candidates from raw camera frames
// by HSV color thresholding and contour extraction.  It is the upstream
// producer feeding the tracker and pose packages.
package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// Segmenter isolates one color class in a frame and produces the centroids
// of its connected regions.  It keeps reusable scratch Mats so a Segmenter
// must be Closed when done, and is not safe for concurrent use.
type Segmenter struct {
	// HSV threshold range for the color class
	min gocv.Scalar
	max gocv.Scalar
	// minRadius suppresses contours whose minimal enclosing circle is
	// smaller, zero disables the filter
	minRadius float64
	// opening applies a 3x3 morphological opening to the mask before
	// contour extraction to suppress salt noise
	opening bool
	// scratch Mats reused across frames
	hsv    gocv.Mat
	mask   gocv.Mat
	kernel gocv.Mat
}

// NewSegmenter returns a segmenter for one HSV color range.  minRadius is
// the minimal enclosing circle radius in pixels below which a contour is
// dropped, zero keeps every contour.
func NewSegmenter(min, max gocv.Scalar, minRadius float64) *Segmenter {
	return &Segmenter{
		min:       min,
		max:       max,
		minRadius: minRadius,
		hsv:       gocv.NewMat(),
		mask:      gocv.NewMat(),
		kernel:    gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3)),
	}
}

// SetOpening enables a 3x3 morphological opening on the mask before contour
// extraction
func (s *Segmenter) SetOpening(enable bool) {
	s.opening = enable
}

// Mask computes the binary mask isolating the color class in a BGR frame.
// The returned Mat is owned by the Segmenter and is overwritten by the next
// call.
func (s *Segmenter) Mask(frame gocv.Mat) gocv.Mat {

	gocv.CvtColor(frame, &s.hsv, gocv.ColorBGRToHSV)
	gocv.InRangeWithScalar(s.hsv, s.min, s.max, &s.mask)
	gocv.Threshold(s.mask, &s.mask, 127, 255, gocv.ThresholdBinary)

	return s.mask
}

// Detect masks the frame and returns the centroid of each connected region
// passing the minimum radius filter.  The result is an unordered detection
// set valid for this frame only.
func (s *Segmenter) Detect(frame gocv.Mat) []image.Point {
	return s.DetectMask(s.Mask(frame))
}

// DetectMask extracts centroids from an already computed binary mask
func (s *Segmenter) DetectMask(mask gocv.Mat) []image.Point {

	if s.opening {
		gocv.MorphologyEx(mask, &s.mask, gocv.MorphOpen, s.kernel)
		mask = s.mask
	}

	contours := gocv.FindContours(mask, gocv.RetrievalCComp, gocv.ChainApproxNone)
	defer contours.Close()

	var centers []image.Point

	for i := 0; i < contours.Size(); i++ {

		x, y, radius := gocv.MinEnclosingCircle(contours.At(i))

		if s.minRadius > 0 && float64(radius) < s.minRadius {
			continue
		}

		centers = append(centers, image.Pt(int(x), int(y)))
	}

	return centers
}

// Close frees the scratch Mats
func (s *Segmenter) Close() error {

	if err := s.hsv.Close(); err != nil {
		return err
	}

	if err := s.mask.Close(); err != nil {
		return err
	}

	return s.kernel.Close()
}
