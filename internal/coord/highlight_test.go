package coord

import "testing"

var testLinks = []NavLink{
	{Href: "#about"},
	{Href: "/pricing"},
	{Href: "https://example.com/#about"},
	{Href: "#features"},
	{Href: "#"},
}

func TestHighlightPicksMatchingLink(t *testing.T) {
	h := NavigationHighlighter{BreakpointWidth: 768}
	tests := []struct {
		active string
		want   int
	}{
		{active: "about", want: 0},
		{active: "features", want: 3},
		{active: "", want: NoLink},
		{active: "missing", want: NoLink},
	}
	for _, tt := range tests {
		got, applied := h.Highlight(tt.active, testLinks, 1024)
		if !applied {
			t.Fatalf("Highlight(%q) not applied above breakpoint", tt.active)
		}
		if got != tt.want {
			t.Fatalf("Highlight(%q) = %d, want %d", tt.active, got, tt.want)
		}
	}
}

func TestHighlightRunsOnlyAboveBreakpoint(t *testing.T) {
	h := NavigationHighlighter{BreakpointWidth: 768}
	for _, w := range []float64{767, 768} {
		if _, applied := h.Highlight("about", testLinks, w); applied {
			t.Fatalf("highlight applied at width %v", w)
		}
	}
	if _, applied := h.Highlight("about", testLinks, 769); !applied {
		t.Fatalf("highlight not applied above breakpoint")
	}
}

func TestNavLinkTarget(t *testing.T) {
	if id, ok := (NavLink{Href: "#team"}).Target(); !ok || id != "team" {
		t.Fatalf("Target(#team) = %q,%v", id, ok)
	}
	for _, href := range []string{"#", "", "team", "/#team"} {
		if _, ok := (NavLink{Href: href}).Target(); ok {
			t.Fatalf("Target(%q) should be inert", href)
		}
	}
}
