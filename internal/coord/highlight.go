package coord

import "strings"

// NoLink marks that no navigation link is active.
const NoLink = -1

// NavLink is a navigation entry. Only "#section" hrefs take part in
// scroll-spy highlighting.
type NavLink struct {
	Href string
}

// Target returns the same-page section id of the link, if any.
func (l NavLink) Target() (string, bool) {
	if !strings.HasPrefix(l.Href, "#") || len(l.Href) == 1 {
		return "", false
	}
	return l.Href[1:], true
}

// NavigationHighlighter picks the active navigation link for a section.
type NavigationHighlighter struct {
	// Highlighting runs only on viewports wider than BreakpointWidth.
	BreakpointWidth float64
}

// Highlight returns the index of the link to mark active, or NoLink. applied
// is false when the viewport is not above the breakpoint; markers stay as
// they are.
func (h NavigationHighlighter) Highlight(active string, links []NavLink, viewportWidth float64) (index int, applied bool) {
	if viewportWidth <= h.BreakpointWidth {
		return NoLink, false
	}
	if active == "" {
		return NoLink, true
	}
	for i, l := range links {
		if target, ok := l.Target(); ok && target == active {
			return i, true
		}
	}
	return NoLink, true
}
