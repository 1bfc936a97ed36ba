package ui

// ScrollState is the page's vertical scroll position with wheel-driven smooth
// animation towards TargetScrollY.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64
	MaxScroll     float64
}

// HandleMouseWheel moves the target by the wheel delta. It reports whether
// the wheel moved.
func (s *ScrollState) HandleMouseWheel(speed float64) bool {
	_, wy := MouseWheelDelta()
	if wy == 0 {
		return false
	}
	s.TargetScrollY -= wy * speed
	s.clampTarget()
	return true
}

// ScrollBy moves the target by dy pixels.
func (s *ScrollState) ScrollBy(dy float64) {
	s.TargetScrollY += dy
	s.clampTarget()
}

// ScrollTo sets the target position.
func (s *ScrollState) ScrollTo(y float64) {
	s.TargetScrollY = y
	s.clampTarget()
}

// SetMax updates the scroll range, e.g. after a resize or document reload.
func (s *ScrollState) SetMax(maxScroll float64) {
	s.MaxScroll = max(maxScroll, 0)
	s.clampTarget()
	if s.ScrollY > s.MaxScroll {
		s.ScrollY = s.MaxScroll
	}
}

// Animate steps ScrollY towards the target. It reports whether ScrollY moved,
// which the caller treats as a scroll notification.
func (s *ScrollState) Animate() bool {
	prev := s.ScrollY
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, ScrollAnimSpeed)
	if d := s.ScrollY - s.TargetScrollY; d < 0.5 && d > -0.5 {
		s.ScrollY = s.TargetScrollY
	}
	return s.ScrollY != prev
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
}

func (s *ScrollState) clampTarget() {
	if s.TargetScrollY > s.MaxScroll {
		s.TargetScrollY = s.MaxScroll
	}
	if s.TargetScrollY < 0 {
		s.TargetScrollY = 0
	}
}
