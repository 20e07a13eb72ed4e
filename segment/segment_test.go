package segment

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 0}

// nearPoint checks two points are within one pixel of each other, contour
// centroids land on rounded pixel coordinates
func nearPoint(a, b image.Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

func TestDetectMaskSingleBlob(t *testing.T) {

	s := NewSegmenter(gocv.NewScalar(0, 0, 0, 0), gocv.NewScalar(180, 255, 255, 0), 0)
	defer s.Close()

	mask := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8U)
	defer mask.Close()

	gocv.Circle(&mask, image.Pt(30, 40), 10, white, -1)

	centers := s.DetectMask(mask)

	if len(centers) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(centers))
	}

	if !nearPoint(centers[0], image.Pt(30, 40)) {
		t.Errorf("expected centroid near (30,40), got %v", centers[0])
	}
}

func TestDetectMaskMinRadiusFilter(t *testing.T) {

	s := NewSegmenter(gocv.NewScalar(0, 0, 0, 0), gocv.NewScalar(180, 255, 255, 0), 2.5)
	defer s.Close()

	mask := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8U)
	defer mask.Close()

	// a real ball and a single-pixel speck
	gocv.Circle(&mask, image.Pt(60, 60), 8, white, -1)
	mask.SetUCharAt(10, 10, 255)

	centers := s.DetectMask(mask)

	if len(centers) != 1 {
		t.Fatalf("expected speck to be filtered, got %d detections", len(centers))
	}

	if !nearPoint(centers[0], image.Pt(60, 60)) {
		t.Errorf("expected centroid near (60,60), got %v", centers[0])
	}
}

func TestDetectMaskEmpty(t *testing.T) {

	s := NewSegmenter(gocv.NewScalar(0, 0, 0, 0), gocv.NewScalar(180, 255, 255, 0), 0)
	defer s.Close()

	mask := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8U)
	defer mask.Close()

	if centers := s.DetectMask(mask); len(centers) != 0 {
		t.Errorf("expected no detections on an empty mask, got %v", centers)
	}
}

func TestDetectColorFrame(t *testing.T) {

	// blue rear marker range, a blue ball drawn on a black frame
	s := NewSegmenter(gocv.NewScalar(116, 200, 88, 0), gocv.NewScalar(137, 255, 175, 0), 0)
	defer s.Close()

	frame := gocv.NewMatWithSize(120, 120, gocv.MatTypeCV8UC3)
	defer frame.Close()

	// BGR (150,0,0) is HSV (120,255,150), inside the range
	gocv.Circle(&frame, image.Pt(75, 25), 9, color.RGBA{R: 0, G: 0, B: 150, A: 0}, -1)

	centers := s.Detect(frame)

	if len(centers) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(centers))
	}

	if !nearPoint(centers[0], image.Pt(75, 25)) {
		t.Errorf("expected centroid near (75,25), got %v", centers[0])
	}
}

func TestDetectMaskOpeningRemovesNoise(t *testing.T) {

	s := NewSegmenter(gocv.NewScalar(0, 0, 0, 0), gocv.NewScalar(180, 255, 255, 0), 0)
	s.SetOpening(true)
	defer s.Close()

	mask := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8U)
	defer mask.Close()

	gocv.Circle(&mask, image.Pt(50, 50), 10, white, -1)
	// isolated pixels are erased by the 3x3 opening
	mask.SetUCharAt(5, 5, 255)
	mask.SetUCharAt(90, 20, 255)

	centers := s.DetectMask(mask)

	if len(centers) != 1 {
		t.Fatalf("expected opening to remove specks, got %d detections", len(centers))
	}
}
