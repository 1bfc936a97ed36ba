package coord

// FrameScheduler coalesces bursts of Notify calls into at most one scheduled
// evaluation per render frame.
//
// The request function is the platform's frame-aligned primitive: it must run
// fn once at the next render opportunity. The requested flag is cleared before
// onFrame runs, so a Notify issued from inside onFrame schedules the next frame.
type FrameScheduler struct {
	request   func(fn func())
	onFrame   func()
	requested bool
}

// NewFrameScheduler creates a scheduler. onFrame may be nil when the caller
// only needs the gate (see Notify's return value).
func NewFrameScheduler(request func(fn func()), onFrame func()) *FrameScheduler {
	return &FrameScheduler{
		request: request,
		onFrame: onFrame,
	}
}

// Notify records that state changed. It returns true only on the idle to
// pending transition, which is also the only time request is called.
func (fs *FrameScheduler) Notify() bool {
	if fs.requested {
		return false
	}
	fs.requested = true
	if fs.request != nil {
		fs.request(fs.run)
	}
	return true
}

// Pending reports whether an evaluation is scheduled but has not run yet.
func (fs *FrameScheduler) Pending() bool {
	return fs.requested
}

// Fire clears the gate and reports whether a frame was pending. Used by
// callers that drive the frame themselves instead of passing onFrame.
func (fs *FrameScheduler) Fire() bool {
	was := fs.requested
	fs.requested = false
	return was
}

func (fs *FrameScheduler) run() {
	fs.requested = false
	if fs.onFrame != nil {
		fs.onFrame()
	}
}
