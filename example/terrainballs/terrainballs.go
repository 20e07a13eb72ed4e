package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	topcam "github.com/zenithcam/go-topcam"
	"github.com/zenithcam/go-topcam/render"
	"github.com/zenithcam/go-topcam/segment"
	"github.com/zenithcam/go-topcam/tracker"
	"gocv.io/x/gocv"
)

var (
	// FPS is the rate frames are streamed to the browser at
	FPS         = int64(30)
	FPSinterval = time.Duration(float64(time.Second) / float64(FPS))
)

// Demo tracks the balls on the terrain and streams the annotated video
// over HTTP
type Demo struct {
	seg   *segment.Segmenter
	mot   *tracker.MultiObjectTracker
	trail *tracker.Trail
	font  render.Font
	style render.TrailStyle
	// latest annotated frame encoded as JPEG
	mu     sync.Mutex
	latest []byte
}

// NewDemo returns an instance of Demo wired up from the color class config
func NewDemo(cfg topcam.Config, matcher tracker.Matcher) *Demo {

	minHSV, maxHSV := cfg.Balls.Scalars()

	seg := segment.NewSegmenter(minHSV, maxHSV, cfg.Tracker.MinRadius)
	seg.SetOpening(true)

	return &Demo{
		seg:   seg,
		mot:   tracker.NewMultiObjectTracker(matcher, cfg.Tracker.MaxMissedFrames),
		trail: tracker.NewTrail(60),
		font:  render.DefaultFont(),
		style: render.DefaultTrailStyle(),
	}
}

// Close frees the segmenter scratch buffers
func (d *Demo) Close() error {
	return d.seg.Close()
}

// HandleFrame is the session frame handler, it segments the frame, updates
// the tracker and stores the annotated result for streaming
func (d *Demo) HandleFrame(frame topcam.Frame) {

	detections := d.seg.Detect(frame.Mat)
	tracks := d.mot.Update(detections, frame.Timestamp)

	for _, track := range tracks {
		d.trail.Add(track)
	}

	// annotate a copy, the frame buffer is reused by the source
	resImg := frame.Mat.Clone()
	defer resImg.Close()

	render.Detections(&resImg, detections, 4, render.Yellow)
	render.TrackTrails(&resImg, tracks, d.trail, d.style)
	render.TrackLabels(&resImg, tracks, d.font)

	buf, err := gocv.IMEncode(".jpg", resImg)

	if err != nil {
		log.Printf("Error encoding frame: %v", err)
		return
	}

	defer buf.Close()

	d.mu.Lock()
	d.latest = append(d.latest[:0], buf.GetBytes()...)
	d.mu.Unlock()
}

// Stream is the HTTP handler function used to stream video frames to browser
func (d *Demo) Stream(w http.ResponseWriter, r *http.Request) {

	log.Printf("New client connection established\n")

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	ticker := time.NewTicker(FPSinterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Printf("Client disconnected\n")
			return

		case <-ticker.C:

			d.mu.Lock()
			frame := make([]byte, len(d.latest))
			copy(frame, d.latest)
			d.mu.Unlock()

			if len(frame) == 0 {
				continue
			}

			w.Write([]byte("--frame\r\n"))
			w.Write([]byte("Content-Type: image/jpeg\r\n\r\n"))
			w.Write(frame)
			w.Write([]byte("\r\n"))

			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	vidFile := flag.String("v", "", "Video file to track balls on")
	device := flag.Int("d", 0, "Camera device ID used when no video file is given")
	cfgFile := flag.String("c", "", "YAML config file with color ranges, built-in defaults when omitted")
	httpAddr := flag.String("a", "localhost:8080", "HTTP Address to run server on, format address:port")
	optimal := flag.Bool("o", false, "Use globally optimal assignment instead of greedy nearest matching")

	flag.Parse()

	cfg := topcam.DefaultConfig()

	if *cfgFile != "" {
		var err error
		cfg, err = topcam.LoadConfig(*cfgFile)

		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}

	var matcher tracker.Matcher

	if *optimal {
		matcher = tracker.MinCostMatcher{}
	}

	demo := NewDemo(cfg, matcher)
	defer demo.Close()

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

	session := topcam.NewSession(source, demo.HandleFrame)

	go func() {
		if err := session.Run(); err != nil {
			log.Printf("Session ended with error: %v", err)
		}
	}()

	http.HandleFunc("/stream", demo.Stream)

	log.Println(fmt.Sprintf("Open browser and view video at http://%s/stream",
		*httpAddr))
	log.Fatal(http.ListenAndServe(*httpAddr, nil))
}
