package coord

import (
	"math"
	"testing"
)

func TestDragInvertsPointerDelta(t *testing.T) {
	d := NewDragScrollAdapter(2)
	d.PointerDown(50, 100)
	if d.State() != DragDragging {
		t.Fatalf("state = %v, want dragging", d.State())
	}

	got, ok := d.PointerMove(30)
	if !ok {
		t.Fatalf("PointerMove while dragging returned ok=false")
	}
	if got != 140 {
		t.Fatalf("offset = %v, want 140", got)
	}

	// Offsets are relative to the origin, not the previous sample.
	got, _ = d.PointerMove(60)
	if got != 80 {
		t.Fatalf("offset = %v, want 80", got)
	}
}

func TestDragIdleMoveIsNoop(t *testing.T) {
	d := NewDragScrollAdapter(2)
	if _, ok := d.PointerMove(10); ok {
		t.Fatalf("move without pointer down produced an offset")
	}
}

func TestDragEndsOnUpAndLeave(t *testing.T) {
	for name, end := range map[string]func(*DragScrollAdapter){
		"up":    (*DragScrollAdapter).PointerUp,
		"leave": (*DragScrollAdapter).PointerLeave,
	} {
		t.Run(name, func(t *testing.T) {
			d := NewDragScrollAdapter(1)
			d.PointerDown(0, 0)
			end(d)
			if d.State() != DragIdle {
				t.Fatalf("state = %v, want idle", d.State())
			}
			if _, ok := d.PointerMove(100); ok {
				t.Fatalf("move after %s produced an offset", name)
			}
		})
	}
}

func TestDragIgnoresNonFiniteInput(t *testing.T) {
	d := NewDragScrollAdapter(1)
	d.PointerDown(math.NaN(), 0)
	if d.State() != DragIdle {
		t.Fatalf("NaN pointer down started a drag")
	}
	d.PointerDown(10, 0)
	if _, ok := d.PointerMove(math.Inf(-1)); ok {
		t.Fatalf("infinite pointer move produced an offset")
	}
}
