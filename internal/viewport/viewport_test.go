package viewport

import (
	"reflect"
	"testing"
)

func TestFrameQueueRunsOnNextFlush(t *testing.T) {
	var q FrameQueue
	runs := 0
	q.Request(func() {
		runs++
		q.Request(func() { runs += 10 })
	})
	q.Request(nil)

	if n := q.Flush(); n != 1 {
		t.Fatalf("Flush ran %d callbacks, want 1", n)
	}
	if runs != 1 {
		t.Fatalf("runs = %d, want 1 (nested request must wait)", runs)
	}
	if q.Len() != 1 {
		t.Fatalf("nested request not queued")
	}
	q.Flush()
	if runs != 11 {
		t.Fatalf("runs = %d, want 11", runs)
	}
	if q.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", q.Frame())
	}
}

func TestObserverReportsInitialStateAndChanges(t *testing.T) {
	o := NewObserver(ObserverOptions{RootMarginBottom: -50, ThresholdFraction: 0.1})
	o.Observe("above", Rect{Y: 100, W: 100, H: 100})
	o.Observe("below", Rect{Y: 2000, W: 100, H: 100})

	view := Rect{W: 1280, H: 800}
	got := o.Check(view)
	want := []Notification{
		{Element: "above", Intersecting: true, Ratio: 1},
		{Element: "below", Intersecting: false, Ratio: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("initial = %+v, want %+v", got, want)
	}

	if got := o.Check(view); len(got) != 0 {
		t.Fatalf("unchanged check reported %+v", got)
	}

	view.Y = 1300
	got = o.Check(view)
	if len(got) != 2 || got[0].Intersecting || !got[1].Intersecting {
		t.Fatalf("after scroll = %+v", got)
	}
}

func TestObserverBottomMarginDelaysTrigger(t *testing.T) {
	o := NewObserver(ObserverOptions{RootMarginBottom: -50, ThresholdFraction: 0.1})
	// Only 40px of the element is inside the viewport, all of it inside the margin.
	o.Observe("card", Rect{Y: 760, W: 100, H: 100})
	got := o.Check(Rect{W: 1280, H: 800})
	if len(got) != 1 || got[0].Intersecting {
		t.Fatalf("element inside the bottom margin counted as visible: %+v", got)
	}

	got = o.Check(Rect{Y: 60, W: 1280, H: 800})
	if len(got) != 1 || !got[0].Intersecting {
		t.Fatalf("element past the margin not visible: %+v", got)
	}
}

func TestObserverThreshold(t *testing.T) {
	o := NewObserver(ObserverOptions{ThresholdFraction: 0.6})
	o.Observe("half", Rect{Y: 750, W: 100, H: 100})
	got := o.Check(Rect{W: 100, H: 800})
	if got[0].Intersecting || got[0].Ratio != 0.5 {
		t.Fatalf("half-visible element = %+v, want not intersecting at 0.6", got[0])
	}

	got = o.Check(Rect{Y: 50, W: 100, H: 800})
	if !got[0].Intersecting {
		t.Fatalf("fully visible element not intersecting: %+v", got[0])
	}
}

func TestObserverUnobserve(t *testing.T) {
	o := NewObserver(ObserverOptions{})
	o.Observe("a", Rect{W: 10, H: 10})
	o.Observe("b", Rect{W: 10, H: 10})
	o.Unobserve("a")
	o.Unobserve("missing")

	if o.Observing("a") || !o.Observing("b") || o.Len() != 1 {
		t.Fatalf("unexpected registry after Unobserve")
	}
	got := o.Check(Rect{W: 100, H: 100})
	if len(got) != 1 || got[0].Element != "b" {
		t.Fatalf("Check = %+v, want only b", got)
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}
	if got := a.Intersect(b).Area(); got != 25 {
		t.Fatalf("area = %v, want 25", got)
	}
	if got := a.Intersect(Rect{X: 20, Y: 20, W: 1, H: 1}).Area(); got != 0 {
		t.Fatalf("disjoint area = %v, want 0", got)
	}
}
