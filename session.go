package topcam

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Session owns one frame source and drives a FrameHandler with its frames,
// one at a time.  There is a single in-flight frame, the handler runs to
// completion before the next frame is read, so back-to-back frames never
// interleave and no locking is needed inside the handler.
type Session struct {
	source   FrameSource
	handler  FrameHandler
	stop     chan struct{}
	stopOnce sync.Once
	close    sync.Once
	closeErr error
}

// NewSession creates a session reading frames from source into handler
func NewSession(source FrameSource, handler FrameHandler) *Session {
	return &Session{
		source:  source,
		handler: handler,
		stop:    make(chan struct{}),
	}
}

// Run reads frames until the source is exhausted or Stop is called.  It
// blocks the calling goroutine and releases the source and frame buffer on
// every exit path.
func (s *Session) Run() error {

	frame := Frame{
		Mat: gocv.NewMat(),
	}

	defer frame.Mat.Close()
	defer s.Close()

	for {
		select {
		case <-s.stop:
			return nil
		default:
		}

		if ok := s.source.Read(&frame); !ok {
			return nil
		}

		s.handler(frame)
	}
}

// Stop ends the Run loop after the in-flight frame completes.  Safe to call
// from another goroutine and more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Close releases the frame source.  Run calls this on exit, an explicit call
// is only needed if Run was never started.
func (s *Session) Close() error {
	s.close.Do(func() {
		if err := s.source.Close(); err != nil {
			s.closeErr = fmt.Errorf("error closing frame source: %w", err)
		}
	})
	return s.closeErr
}
