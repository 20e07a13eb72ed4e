package topcam

import (
	"fmt"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// VideoSource is a FrameSource backed by a gocv VideoCapture, either a
// camera device or a video file
type VideoSource struct {
	capture *gocv.VideoCapture
	// start of capture used to produce monotonic frame timestamps
	start time.Time
	close sync.Once
	err   error
}

// NewVideoSource opens a video file as a frame source
func NewVideoSource(file string) (*VideoSource, error) {

	capture, err := gocv.VideoCaptureFile(file)

	if err != nil {
		return nil, fmt.Errorf("error opening video file %s: %w", file, err)
	}

	return &VideoSource{
		capture: capture,
		start:   time.Now(),
	}, nil
}

// NewCameraSource opens a camera device as a frame source
func NewCameraSource(device int) (*VideoSource, error) {

	capture, err := gocv.VideoCaptureDevice(device)

	if err != nil {
		return nil, fmt.Errorf("error opening camera device %d: %w", device, err)
	}

	return &VideoSource{
		capture: capture,
		start:   time.Now(),
	}, nil
}

// Read grabs the next frame from the capture and stamps it.  Returns false
// when the capture is exhausted or closed.
func (v *VideoSource) Read(frame *Frame) bool {

	if ok := v.capture.Read(&frame.Mat); !ok {
		return false
	}

	if frame.Mat.Empty() {
		return false
	}

	frame.Timestamp = time.Since(v.start).Milliseconds()

	return true
}

// Close releases the underlying capture device
func (v *VideoSource) Close() error {
	v.close.Do(func() {
		v.err = v.capture.Close()
	})
	return v.err
}
