package coord

import (
	"fmt"
	"log/slog"
)

// Event is an input to the Coordinator.
type Event interface {
	eventMarker()
}

// ScrollOrResize reports that the page scrolled or the viewport changed size.
type ScrollOrResize struct{}

func (ScrollOrResize) eventMarker() {}

// FrameFired is delivered when a requested frame runs. The shell samples the
// scroll position at fire time, not at notify time.
type FrameFired struct {
	Sample        ScrollSample
	ViewportWidth float64
}

func (FrameFired) eventMarker() {}

// PointerDown starts a drag over the horizontal region at its current offset.
type PointerDown struct {
	X      float64
	Offset float64
}

func (PointerDown) eventMarker() {}

// PointerMove is a raw pointer sample over the horizontal region.
type PointerMove struct {
	X float64
}

func (PointerMove) eventMarker() {}

// PointerUp ends a drag.
type PointerUp struct{}

func (PointerUp) eventMarker() {}

// PointerLeave ends a drag when the pointer leaves the region.
type PointerLeave struct{}

func (PointerLeave) eventMarker() {}

// Intersection is a notification from the intersection source.
type Intersection struct {
	Element      ElementID
	Intersecting bool
}

func (Intersection) eventMarker() {}

// DocumentChanged replaces the section index, navigation links and reveal
// targets, e.g. after the page document was (re)loaded.
type DocumentChanged struct {
	Sections []Section
	Links    []NavLink
	Reveal   []ElementID
}

func (DocumentChanged) eventMarker() {}

// Effect is a side effect for the shell to apply.
type Effect interface {
	effectMarker()
	String() string
}

// RequestFrame asks the shell to deliver FrameFired at the next frame.
type RequestFrame struct{}

func (RequestFrame) effectMarker()  {}
func (RequestFrame) String() string { return "RequestFrame()" }

// SetHeaderScrolled toggles the header's scrolled appearance.
type SetHeaderScrolled struct {
	Scrolled bool
}

func (SetHeaderScrolled) effectMarker() {}
func (e SetHeaderScrolled) String() string {
	return fmt.Sprintf("SetHeaderScrolled(%t)", e.Scrolled)
}

// SetIndicatorVisible shows or hides the scroll indicator.
type SetIndicatorVisible struct {
	Visible bool
}

func (SetIndicatorVisible) effectMarker() {}
func (e SetIndicatorVisible) String() string {
	return fmt.Sprintf("SetIndicatorVisible(%t)", e.Visible)
}

// SetActiveLink marks one navigation link active, or none with NoLink.
type SetActiveLink struct {
	Index int
}

func (SetActiveLink) effectMarker() {}
func (e SetActiveLink) String() string {
	return fmt.Sprintf("SetActiveLink(%d)", e.Index)
}

// Observe starts intersection observation of an element in its hidden state.
type Observe struct {
	Element ElementID
}

func (Observe) effectMarker() {}
func (e Observe) String() string { return fmt.Sprintf("Observe(%s)", e.Element) }

// Reveal swaps an element to its visible presentation.
type Reveal struct {
	Element ElementID
}

func (Reveal) effectMarker() {}
func (e Reveal) String() string { return fmt.Sprintf("Reveal(%s)", e.Element) }

// Unobserve stops intersection observation of an element.
type Unobserve struct {
	Element ElementID
}

func (Unobserve) effectMarker() {}
func (e Unobserve) String() string { return fmt.Sprintf("Unobserve(%s)", e.Element) }

// SetScrollLeft sets the horizontal region's scroll offset.
type SetScrollLeft struct {
	Offset float64
}

func (SetScrollLeft) effectMarker() {}
func (e SetScrollLeft) String() string {
	return fmt.Sprintf("SetScrollLeft(%.1f)", e.Offset)
}

// StateChanged carries the new UIState after a frame changed it.
type StateChanged struct {
	State UIState
}

func (StateChanged) effectMarker() {}
func (e StateChanged) String() string {
	return fmt.Sprintf("StateChanged(%+v)", e.State)
}

// Config configures a Coordinator.
type Config struct {
	Derive          DeriveConfig
	DragSpeed       float64
	BreakpointWidth float64
}

// Coordinator is the scroll and visibility reducer. All methods must be
// called from one goroutine.
type Coordinator struct {
	cfg    Config
	logger *slog.Logger

	frames *FrameScheduler
	index  SectionIndex
	links  []NavLink
	reveal *RevealController
	drag   *DragScrollAdapter
	nav    NavigationHighlighter

	state      UIState
	activeLink int
	evaluated  bool
}

// New creates a Coordinator with no sections and no links.
func New(cfg Config, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{
		cfg:        cfg,
		logger:     logger,
		frames:     NewFrameScheduler(nil, nil),
		reveal:     NewRevealController(),
		drag:       NewDragScrollAdapter(cfg.DragSpeed),
		nav:        NavigationHighlighter{BreakpointWidth: cfg.BreakpointWidth},
		activeLink: NoLink,
	}
}

// Handle reduces one event and returns the effects to apply, in order.
func (c *Coordinator) Handle(ev Event) []Effect {
	switch e := ev.(type) {
	case ScrollOrResize:
		if c.frames.Notify() {
			return []Effect{RequestFrame{}}
		}
		return nil

	case FrameFired:
		if !c.frames.Fire() {
			return nil
		}
		return c.evaluate(e)

	case PointerDown:
		c.drag.PointerDown(e.X, e.Offset)
		return nil

	case PointerMove:
		if offset, ok := c.drag.PointerMove(e.X); ok {
			return []Effect{SetScrollLeft{Offset: offset}}
		}
		return nil

	case PointerUp:
		c.drag.PointerUp()
		return nil

	case PointerLeave:
		c.drag.PointerLeave()
		return nil

	case Intersection:
		if c.reveal.OnIntersection(e.Element, e.Intersecting) {
			c.logger.Debug("element revealed", "element", e.Element)
			return []Effect{Reveal{Element: e.Element}, Unobserve{Element: e.Element}}
		}
		return nil

	case DocumentChanged:
		return c.loadDocument(e)

	default:
		c.logger.Warn("unhandled event", "type", fmt.Sprintf("%T", ev))
		return nil
	}
}

func (c *Coordinator) evaluate(f FrameFired) []Effect {
	next, err := Derive(f.Sample, c.index, c.cfg.Derive, c.state)
	if err != nil {
		c.logger.Debug("frame skipped", "error", err, "frame", f.Sample.Frame)
		return nil
	}

	var effects []Effect
	first := !c.evaluated
	if first || next.HeaderScrolled != c.state.HeaderScrolled {
		effects = append(effects, SetHeaderScrolled{Scrolled: next.HeaderScrolled})
	}
	if first || next.IndicatorVisible != c.state.IndicatorVisible {
		effects = append(effects, SetIndicatorVisible{Visible: next.IndicatorVisible})
	}
	if idx, applied := c.nav.Highlight(next.ActiveSection, c.links, f.ViewportWidth); applied {
		if first || idx != c.activeLink {
			effects = append(effects, SetActiveLink{Index: idx})
			c.activeLink = idx
		}
	}
	if first || next != c.state {
		effects = append(effects, StateChanged{State: next})
	}

	c.state = next
	c.evaluated = true
	return effects
}

func (c *Coordinator) loadDocument(d DocumentChanged) []Effect {
	c.index = NewSectionIndex(d.Sections)
	c.links = append([]NavLink(nil), d.Links...)
	c.evaluated = false

	var effects []Effect
	// The old index means nothing in the new link list.
	if c.activeLink != NoLink {
		effects = append(effects, SetActiveLink{Index: NoLink})
		c.activeLink = NoLink
	}
	for _, id := range c.reveal.Retain(d.Reveal) {
		effects = append(effects, Unobserve{Element: id})
	}
	for _, id := range d.Reveal {
		if c.reveal.Register(id) {
			effects = append(effects, Observe{Element: id})
		}
	}
	if c.frames.Notify() {
		effects = append(effects, RequestFrame{})
	}
	c.logger.Debug("document loaded",
		"sections", c.index.Len(), "links", len(c.links), "pending_reveals", c.reveal.Pending())
	return effects
}

// OnScrollOrResize is the entry point for scroll and resize notifications.
func (c *Coordinator) OnScrollOrResize() []Effect { return c.Handle(ScrollOrResize{}) }

// OnPointerDown starts a drag at x with the region's current offset.
func (c *Coordinator) OnPointerDown(x, offset float64) []Effect {
	return c.Handle(PointerDown{X: x, Offset: offset})
}

// OnPointerMove handles a pointer sample.
func (c *Coordinator) OnPointerMove(x float64) []Effect { return c.Handle(PointerMove{X: x}) }

// OnPointerUp ends a drag.
func (c *Coordinator) OnPointerUp() []Effect { return c.Handle(PointerUp{}) }

// OnPointerLeave ends a drag.
func (c *Coordinator) OnPointerLeave() []Effect { return c.Handle(PointerLeave{}) }

// OnIntersection handles an intersection notification.
func (c *Coordinator) OnIntersection(id ElementID, intersecting bool) []Effect {
	return c.Handle(Intersection{Element: id, Intersecting: intersecting})
}

// CurrentUIState returns the last derived state.
func (c *Coordinator) CurrentUIState() UIState { return c.state }

// ActiveLink returns the index of the active navigation link, or NoLink.
func (c *Coordinator) ActiveLink() int { return c.activeLink }

// DragState returns the drag adapter's state.
func (c *Coordinator) DragState() DragState { return c.drag.State() }

// RevealState returns the reveal state of an element.
func (c *Coordinator) RevealState(id ElementID) RevealState { return c.reveal.State(id) }

// RevealCounts returns the number of pending and revealed elements.
func (c *Coordinator) RevealCounts() (pending, revealed int) {
	return c.reveal.Pending(), c.reveal.Revealed()
}

// SectionTop returns the top offset of a section, for in-page link jumps.
func (c *Coordinator) SectionTop(id string) (float64, bool) { return c.index.Top(id) }
