// Package viewport provides the frame-aligned scheduling primitive and the
// intersection source used by the page shell. It has no ebiten dependency so
// it can be tested without a window.
package viewport

// FrameQueue runs requested callbacks at the next frame. The game loop calls
// Flush once per tick; callbacks requested during a flush run on the next one.
type FrameQueue struct {
	pending []func()
	frame   uint64
}

// Request schedules fn for the next frame.
func (q *FrameQueue) Request(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Flush advances the frame counter and runs the callbacks queued before the
// call. It returns the number of callbacks run.
func (q *FrameQueue) Flush() int {
	q.frame++
	if len(q.pending) == 0 {
		return 0
	}
	run := q.pending
	q.pending = nil
	for _, fn := range run {
		fn()
	}
	return len(run)
}

// Frame returns the number of frames flushed so far.
func (q *FrameQueue) Frame() uint64 { return q.frame }

// Len returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Len() int { return len(q.pending) }
