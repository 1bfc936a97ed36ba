package viewport

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Intersect returns the overlapping area of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ObserverOptions is shared by every observed element.
type ObserverOptions struct {
	// RootMarginBottom grows (positive) or shrinks (negative) the viewport's
	// bottom edge before testing.
	RootMarginBottom float64
	// ThresholdFraction is the visible fraction of an element needed to count
	// as intersecting.
	ThresholdFraction float64
}

// Notification reports that an element's intersecting state changed.
type Notification struct {
	Element      string
	Intersecting bool
	Ratio        float64
}

type target struct {
	rect         Rect
	intersecting bool
	reported     bool
}

// Observer computes intersection changes for registered elements. The first
// Check after Observe always reports the element's initial state.
type Observer struct {
	opts    ObserverOptions
	targets map[string]*target
	order   []string
}

// NewObserver creates an observer with fixed options.
func NewObserver(opts ObserverOptions) *Observer {
	return &Observer{
		opts:    opts,
		targets: make(map[string]*target),
	}
}

// Observe starts watching id at rect. Observing an id again only updates its rect.
func (o *Observer) Observe(id string, rect Rect) {
	if t, ok := o.targets[id]; ok {
		t.rect = rect
		return
	}
	o.targets[id] = &target{rect: rect}
	o.order = append(o.order, id)
}

// Update moves an observed element after layout changed.
func (o *Observer) Update(id string, rect Rect) {
	if t, ok := o.targets[id]; ok {
		t.rect = rect
	}
}

// Unobserve stops watching id.
func (o *Observer) Unobserve(id string) {
	if _, ok := o.targets[id]; !ok {
		return
	}
	delete(o.targets, id)
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// Observing reports whether id is registered.
func (o *Observer) Observing(id string) bool {
	_, ok := o.targets[id]
	return ok
}

// Len returns the number of observed elements.
func (o *Observer) Len() int { return len(o.targets) }

// Check tests every element against view and returns changes in
// registration order.
func (o *Observer) Check(view Rect) []Notification {
	root := view
	root.H += o.opts.RootMarginBottom
	if root.H < 0 {
		root.H = 0
	}

	var out []Notification
	for _, id := range o.order {
		t := o.targets[id]
		ratio := o.ratio(t.rect, root)
		in := ratio > 0 && ratio >= o.opts.ThresholdFraction
		if t.reported && in == t.intersecting {
			continue
		}
		t.intersecting = in
		t.reported = true
		out = append(out, Notification{Element: id, Intersecting: in, Ratio: ratio})
	}
	return out
}

func (o *Observer) ratio(r, root Rect) float64 {
	if r.Area() == 0 {
		if root.Contains(r.X, r.Y) {
			return 1
		}
		return 0
	}
	return r.Intersect(root).Area() / r.Area()
}
