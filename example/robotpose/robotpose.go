package main

import (
	"flag"
	"log"
	"math"

	topcam "github.com/zenithcam/go-topcam"
	"github.com/zenithcam/go-topcam/pose"
	"github.com/zenithcam/go-topcam/segment"
)

// Detector wires the two marker segmenters into the pose estimator
type Detector struct {
	front *segment.Segmenter
	rear  *segment.Segmenter
	est   *pose.Estimator
}

// NewDetector returns an instance of Detector using the config's marker
// color ranges.  Marker masks take no minimum radius filter, ambiguity is
// handled by the estimator's strict single-region rule instead.
func NewDetector(cfg topcam.Config, callback pose.Callback) *Detector {

	frontMin, frontMax := cfg.FrontMarker.Scalars()
	rearMin, rearMax := cfg.RearMarker.Scalars()

	return &Detector{
		front: segment.NewSegmenter(frontMin, frontMax, 0),
		rear:  segment.NewSegmenter(rearMin, rearMax, 0),
		est:   pose.NewEstimator(callback),
	}
}

// HandleFrame is the session frame handler, it masks both markers and runs
// the pose update
func (d *Detector) HandleFrame(frame topcam.Frame) {

	frontMask := d.front.Mask(frame.Mat)
	rearMask := d.rear.Mask(frame.Mat)

	d.est.Update(frontMask, rearMask, frame.Timestamp)
}

// Close frees the segmenter scratch buffers
func (d *Detector) Close() error {

	if err := d.front.Close(); err != nil {
		return err
	}

	return d.rear.Close()
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	vidFile := flag.String("v", "", "Video file to estimate the robot pose from")
	device := flag.Int("d", 0, "Camera device ID used when no video file is given")
	cfgFile := flag.String("c", "", "YAML config file with marker color ranges, built-in defaults when omitted")

	flag.Parse()

	cfg := topcam.DefaultConfig()

	if *cfgFile != "" {
		var err error
		cfg, err = topcam.LoadConfig(*cfgFile)

		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	detector := NewDetector(cfg, func(p pose.Pose) {
		log.Printf("position (%.1f, %.1f) heading %.1f deg at %dms",
			p.Position.X, p.Position.Y, p.Heading*180/math.Pi, p.Timestamp)
	})
	defer detector.Close()

	var source topcam.FrameSource
	var err error

	if *vidFile != "" {
		source, err = topcam.NewVideoSource(*vidFile)
	} else {
		source, err = topcam.NewCameraSource(*device)
	}

	if err != nil {
		log.Fatalf("Error opening frame source: %v", err)
	}

	session := topcam.NewSession(source, detector.HandleFrame)

	if err := session.Run(); err != nil {
		log.Fatalf("Session ended with error: %v", err)
	}

	// frames exhausted, report the last published pose
	last := detector.est.Pose()
	log.Printf("final position (%.1f, %.1f) heading %.1f deg",
		last.Position.X, last.Position.Y, last.Heading*180/math.Pi)
}
