package coord

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidSample is returned by Derive for negative viewport heights and
// non-finite offsets. The caller keeps its previous UIState.
var ErrInvalidSample = errors.New("invalid scroll sample")

// ScrollSample is the page scroll position captured when a scheduled frame runs.
type ScrollSample struct {
	OffsetY        float64
	ViewportHeight float64
	Frame          uint64
}

// UIState is the discrete state derived from a ScrollSample.
// ActiveSection is empty when no section qualifies.
type UIState struct {
	HeaderScrolled   bool   `json:"header_scrolled"`
	IndicatorVisible bool   `json:"indicator_visible"`
	ActiveSection    string `json:"active_section,omitempty"`
}

// DeriveConfig holds the thresholds used by Derive.
type DeriveConfig struct {
	// ScrollThreshold is the offset past which the header is "scrolled".
	ScrollThreshold float64
	// IndicatorHideThreshold is the last offset at which the scroll indicator shows.
	IndicatorHideThreshold float64
	// ThresholdFraction of the viewport height activates a section early.
	ThresholdFraction float64
}

// Section is one scroll-spy target.
type Section struct {
	ID        string
	TopOffset float64
}

// SectionIndex is an ascending, read-only list of section offsets.
type SectionIndex struct {
	sections []Section
}

// NewSectionIndex copies sections and sorts them by TopOffset. Sections with
// equal offsets keep document order. Sections without an id are dropped, so
// an empty ActiveSection always means none.
func NewSectionIndex(sections []Section) SectionIndex {
	sorted := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.ID != "" {
			sorted = append(sorted, s)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TopOffset < sorted[j].TopOffset
	})
	return SectionIndex{sections: sorted}
}

// Len returns the number of sections.
func (si SectionIndex) Len() int { return len(si.sections) }

// Sections returns a copy of the sorted sections.
func (si SectionIndex) Sections() []Section {
	out := make([]Section, len(si.sections))
	copy(out, si.sections)
	return out
}

// Top returns the offset of the section with the given id.
func (si SectionIndex) Top(id string) (float64, bool) {
	for _, s := range si.sections {
		if s.ID == id {
			return s.TopOffset, true
		}
	}
	return 0, false
}

// Active returns the last section whose activation line has been scrolled past.
func (si SectionIndex) Active(offsetY, viewportHeight, fraction float64) (string, bool) {
	lead := fraction * viewportHeight
	id, found := "", false
	for _, s := range si.sections {
		if s.TopOffset-lead > offsetY {
			break
		}
		id, found = s.ID, true
	}
	return id, found
}

// Derive maps a scroll sample to UI state. With an empty index the previous
// active section is carried over unchanged.
func Derive(sample ScrollSample, index SectionIndex, cfg DeriveConfig, prev UIState) (UIState, error) {
	if err := validateSample(sample); err != nil {
		return prev, err
	}

	next := UIState{
		HeaderScrolled:   sample.OffsetY > cfg.ScrollThreshold,
		IndicatorVisible: sample.OffsetY <= cfg.IndicatorHideThreshold,
		ActiveSection:    prev.ActiveSection,
	}
	if index.Len() == 0 {
		return next, nil
	}

	id, _ := index.Active(sample.OffsetY, sample.ViewportHeight, cfg.ThresholdFraction)
	next.ActiveSection = id
	return next, nil
}

func validateSample(s ScrollSample) error {
	if math.IsNaN(s.OffsetY) || math.IsInf(s.OffsetY, 0) {
		return fmt.Errorf("%w: offset %v", ErrInvalidSample, s.OffsetY)
	}
	if math.IsNaN(s.ViewportHeight) || math.IsInf(s.ViewportHeight, 0) || s.ViewportHeight < 0 {
		return fmt.Errorf("%w: viewport height %v", ErrInvalidSample, s.ViewportHeight)
	}
	return nil
}
