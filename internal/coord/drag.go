package coord

import "math"

// DragState is the state of a DragScrollAdapter.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragSession is the pointer and scroll origin captured on pointer down.
type DragSession struct {
	Active             bool
	OriginPointerX     float64
	OriginScrollOffset float64
}

// DragScrollAdapter turns pointer drags over a horizontal region into scroll
// offsets. Moves are handled on every sample, not per frame.
type DragScrollAdapter struct {
	SpeedMultiplier float64

	session DragSession
}

// NewDragScrollAdapter returns an idle adapter.
func NewDragScrollAdapter(speed float64) *DragScrollAdapter {
	return &DragScrollAdapter{SpeedMultiplier: speed}
}

// PointerDown starts a drag at pointer x with the region's current offset.
func (d *DragScrollAdapter) PointerDown(x, currentOffset float64) {
	if !finite(x) || !finite(currentOffset) {
		return
	}
	d.session = DragSession{
		Active:             true,
		OriginPointerX:     x,
		OriginScrollOffset: currentOffset,
	}
}

// PointerMove returns the new scroll offset for pointer x. ok is false when no
// drag is in progress.
func (d *DragScrollAdapter) PointerMove(x float64) (offset float64, ok bool) {
	if !d.session.Active || !finite(x) {
		return 0, false
	}
	delta := (x - d.session.OriginPointerX) * d.SpeedMultiplier
	return d.session.OriginScrollOffset - delta, true
}

// PointerUp ends the drag. Motion stops immediately.
func (d *DragScrollAdapter) PointerUp() {
	d.session = DragSession{}
}

// PointerLeave ends the drag when the pointer leaves the region.
func (d *DragScrollAdapter) PointerLeave() {
	d.session = DragSession{}
}

// State returns Idle or Dragging.
func (d *DragScrollAdapter) State() DragState {
	if d.session.Active {
		return DragDragging
	}
	return DragIdle
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
