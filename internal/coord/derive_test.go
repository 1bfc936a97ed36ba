package coord

import (
	"errors"
	"math"
	"testing"
)

func threeSections() SectionIndex {
	return NewSectionIndex([]Section{
		{ID: "C", TopOffset: 1000},
		{ID: "A", TopOffset: 0},
		{ID: "B", TopOffset: 500},
	})
}

func TestDeriveActiveSection(t *testing.T) {
	cfg := DeriveConfig{ScrollThreshold: 50, IndicatorHideThreshold: 100}
	tests := []struct {
		name   string
		offset float64
		frac   float64
		want   string
	}{
		{name: "top", offset: 0, want: "A"},
		{name: "between B and C", offset: 600, want: "B"},
		{name: "exactly at C", offset: 1000, want: "C"},
		{name: "past the end", offset: 5000, want: "C"},
		{name: "threshold pulls C early", offset: 800, frac: 0.3, want: "C"},
		{name: "threshold not yet reached", offset: 699, frac: 0.3, want: "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.ThresholdFraction = tt.frac
			got, err := Derive(ScrollSample{OffsetY: tt.offset, ViewportHeight: 1000}, threeSections(), c, UIState{})
			if err != nil {
				t.Fatalf("Derive: %v", err)
			}
			if got.ActiveSection != tt.want {
				t.Fatalf("active = %q, want %q", got.ActiveSection, tt.want)
			}
		})
	}
}

func TestDeriveNoQualifyingSection(t *testing.T) {
	index := NewSectionIndex([]Section{{ID: "late", TopOffset: 400}})
	got, err := Derive(ScrollSample{OffsetY: 10, ViewportHeight: 800}, index, DeriveConfig{}, UIState{ActiveSection: "old"})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if got.ActiveSection != "" {
		t.Fatalf("active = %q, want none", got.ActiveSection)
	}
}

func TestDeriveTieGoesToLaterSection(t *testing.T) {
	index := NewSectionIndex([]Section{
		{ID: "first", TopOffset: 300},
		{ID: "second", TopOffset: 300},
	})
	got, _ := Derive(ScrollSample{OffsetY: 300, ViewportHeight: 600}, index, DeriveConfig{}, UIState{})
	if got.ActiveSection != "second" {
		t.Fatalf("active = %q, want second", got.ActiveSection)
	}
}

func TestDeriveEmptyIndexKeepsPreviousSection(t *testing.T) {
	prev := UIState{ActiveSection: "B"}
	got, err := Derive(ScrollSample{OffsetY: 2000, ViewportHeight: 900}, NewSectionIndex(nil), DeriveConfig{}, prev)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if got.ActiveSection != "B" {
		t.Fatalf("active = %q, want B", got.ActiveSection)
	}
}

func TestDeriveHeaderThresholdBoundary(t *testing.T) {
	cfg := DeriveConfig{ScrollThreshold: 50}
	at, _ := Derive(ScrollSample{OffsetY: 50, ViewportHeight: 900}, SectionIndex{}, cfg, UIState{})
	if at.HeaderScrolled {
		t.Fatalf("offset == threshold should not be scrolled")
	}
	past, _ := Derive(ScrollSample{OffsetY: 51, ViewportHeight: 900}, SectionIndex{}, cfg, UIState{})
	if !past.HeaderScrolled {
		t.Fatalf("offset == threshold+1 should be scrolled")
	}
}

func TestDeriveIndicatorVisibility(t *testing.T) {
	cfg := DeriveConfig{IndicatorHideThreshold: 100}
	at, _ := Derive(ScrollSample{OffsetY: 100, ViewportHeight: 900}, SectionIndex{}, cfg, UIState{})
	if !at.IndicatorVisible {
		t.Fatalf("indicator should show at the threshold")
	}
	past, _ := Derive(ScrollSample{OffsetY: 101, ViewportHeight: 900}, SectionIndex{}, cfg, UIState{})
	if past.IndicatorVisible {
		t.Fatalf("indicator should hide past the threshold")
	}
}

func TestDeriveRejectsMalformedSamples(t *testing.T) {
	prev := UIState{HeaderScrolled: true, ActiveSection: "B"}
	samples := []ScrollSample{
		{OffsetY: 0, ViewportHeight: -1},
		{OffsetY: math.NaN(), ViewportHeight: 800},
		{OffsetY: math.Inf(1), ViewportHeight: 800},
		{OffsetY: 0, ViewportHeight: math.NaN()},
	}
	for _, s := range samples {
		got, err := Derive(s, threeSections(), DeriveConfig{}, prev)
		if !errors.Is(err, ErrInvalidSample) {
			t.Fatalf("Derive(%+v) err = %v, want ErrInvalidSample", s, err)
		}
		if got != prev {
			t.Fatalf("Derive(%+v) = %+v, want previous state kept", s, got)
		}
	}
}

func TestSectionIndexIsReadOnlyCopy(t *testing.T) {
	src := []Section{{ID: "b", TopOffset: 10}, {ID: "a", TopOffset: 0}}
	index := NewSectionIndex(src)
	src[0].ID = "mutated"

	got := index.Sections()
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("sections = %+v, want sorted a,b", got)
	}
	got[0].ID = "changed"
	if top, ok := index.Top("a"); !ok || top != 0 {
		t.Fatalf("index changed through returned slice")
	}
}

func TestSectionIndexDropsUnnamedSections(t *testing.T) {
	index := NewSectionIndex([]Section{{ID: "", TopOffset: 0}, {ID: "b", TopOffset: 500}})
	if index.Len() != 1 {
		t.Fatalf("len = %d, want 1", index.Len())
	}
	got, err := Derive(ScrollSample{OffsetY: 100, ViewportHeight: 800}, index, DeriveConfig{}, UIState{})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if got.ActiveSection != "" {
		t.Fatalf("active = %q, want none", got.ActiveSection)
	}
}
