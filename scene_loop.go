package flexui

import (
	"context"
	"fmt"
	"time"
)

// FrameDuration converts a frame rate to a frame duration.
// Valid range is 1-240 fps.
func FrameDuration(fps int) (time.Duration, error) {
	if fps < 1 {
		return 0, fmt.Errorf("frame rate must be at least 1 fps")
	}
	if fps > 240 {
		return 0, fmt.Errorf("frame rate cannot exceed 240 fps")
	}
	return time.Second / time.Duration(fps), nil
}

// Run drives Update at the given frame duration until ctx is done or the
// scene is closed. Each frame is advanced by the wall time since the
// previous one.
func (s *Scene) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		return fmt.Errorf("flexui: frame duration must be positive")
	}
	s.Update(0)
	last := time.Now()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for !s.closed {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Update(now.Sub(last))
			last = now
		}
	}
	return nil
}

// Step runs n frames of length dt without waiting. It is the deterministic
// counterpart of Run for tools and tests.
func (s *Scene) Step(n int, dt time.Duration) {
	for i := 0; i < n && !s.closed; i++ {
		s.Update(dt)
	}
}

// Settled reports whether the scene has no pending refresh and none of its
// elements are animating.
func (s *Scene) Settled() bool {
	if s.root.IsInvalidate(InvalidateStyle | InvalidateLayout | InvalidateVisual) {
		return false
	}
	for id := range s.elements {
		if s.scheduler.Running(id) > 0 {
			return false
		}
	}
	return true
}
