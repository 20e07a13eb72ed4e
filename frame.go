package topcam

import (
	"gocv.io/x/gocv"
)

// Frame is a single image delivered by a FrameSource along with the time it
// was captured.  Timestamps are monotonic, in milliseconds.
type Frame struct {
	Mat       gocv.Mat
	Timestamp int64
}

// FrameSource is a producer of camera frames.  Read writes the next frame
// into the Mat provided and stamps it, returning false when no more frames
// are available.  Sources are single-consumer, a frame is overwritten by the
// next Read so a handler must finish with it before reading again.
type FrameSource interface {
	Read(frame *Frame) bool
	Close() error
}

// FrameHandler processes one frame.  It is invoked once per frame in arrival
// order and runs to completion before the next frame is read.
type FrameHandler func(frame Frame)
