package coord

import "slices"

// ElementID names an element observed for intersection.
type ElementID string

// RevealState is the lifecycle of a reveal target.
type RevealState int

const (
	RevealUnknown RevealState = iota
	RevealPending
	// RevealRevealing is held only while OnIntersection commits the transition.
	RevealRevealing
	RevealRevealed
)

func (s RevealState) String() string {
	switch s {
	case RevealPending:
		return "pending"
	case RevealRevealing:
		return "revealing"
	case RevealRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// RevealEntry is a registered element waiting to be revealed.
type RevealEntry struct {
	Element ElementID
	State   RevealState
}

// RevealController tracks one-shot reveal targets. An element moves from
// pending to revealed once and is never observed again.
type RevealController struct {
	entries  map[ElementID]*RevealEntry
	revealed map[ElementID]struct{}
}

// NewRevealController returns an empty registry.
func NewRevealController() *RevealController {
	return &RevealController{
		entries:  make(map[ElementID]*RevealEntry),
		revealed: make(map[ElementID]struct{}),
	}
}

// Register adds an element in the pending state. It returns false when the
// element is already pending or was revealed before.
func (rc *RevealController) Register(id ElementID) bool {
	if _, ok := rc.revealed[id]; ok {
		return false
	}
	if _, ok := rc.entries[id]; ok {
		return false
	}
	rc.entries[id] = &RevealEntry{Element: id, State: RevealPending}
	return true
}

// Retain drops pending elements that are not in keep and returns them in
// sorted order. Revealed elements are kept.
func (rc *RevealController) Retain(keep []ElementID) []ElementID {
	want := make(map[ElementID]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}
	var dropped []ElementID
	for id := range rc.entries {
		if _, ok := want[id]; !ok {
			dropped = append(dropped, id)
		}
	}
	slices.Sort(dropped)
	for _, id := range dropped {
		delete(rc.entries, id)
	}
	return dropped
}

// OnIntersection handles one intersection notification. It returns true when
// the element was revealed by this call; the caller then swaps the element to
// its visible presentation and stops observing it.
func (rc *RevealController) OnIntersection(id ElementID, intersecting bool) bool {
	if !intersecting {
		return false
	}
	entry, ok := rc.entries[id]
	if !ok || entry.State != RevealPending {
		return false
	}
	entry.State = RevealRevealing
	delete(rc.entries, id)
	rc.revealed[id] = struct{}{}
	entry.State = RevealRevealed
	return true
}

// State returns the element's current state.
func (rc *RevealController) State(id ElementID) RevealState {
	if _, ok := rc.revealed[id]; ok {
		return RevealRevealed
	}
	if e, ok := rc.entries[id]; ok {
		return e.State
	}
	return RevealUnknown
}

// Pending returns the number of elements still waiting.
func (rc *RevealController) Pending() int {
	return len(rc.entries)
}

// Revealed returns the number of elements revealed so far.
func (rc *RevealController) Revealed() int {
	return len(rc.revealed)
}
