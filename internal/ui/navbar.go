package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/marquee/internal/content"
	"github.com/depeter/marquee/internal/site"
	"github.com/depeter/marquee/internal/viewport"
)

// NavAction is the result of a click on the header.
type NavAction int

const (
	NavActionNone NavAction = iota
	NavActionLink           // a navigation link was followed; see the returned index
	NavActionTheme
	NavActionMenu
	NavActionLanguage
	NavActionHome
)

// NavBar is the fixed page header: title, navigation links, the menu toggle
// used at or below the breakpoint, and the theme and language buttons.
type NavBar struct {
	Title    string
	Links    []content.Link
	Language string

	// ActiveLink is the highlighted link index, or -1.
	ActiveLink int
	// Scrolled switches the header to its condensed, shadowed style.
	Scrolled bool
	MenuOpen bool

	width      float64
	compact    bool
	linkRects  []viewport.Rect
	menuRects  []viewport.Rect
	titleRect  viewport.Rect
	menuBtn    viewport.Rect
	themeBtn   viewport.Rect
	langBtn    viewport.Rect
	menuPanel  viewport.Rect
	hoverX     int
	hoverY     int
	scrolledAt float64
}

// NewNavBar creates a header with no active link.
func NewNavBar() *NavBar {
	return &NavBar{ActiveLink: -1}
}

// Compact reports whether links are collapsed into the menu.
func (nb *NavBar) Compact() bool { return nb.compact }

// Layout positions header elements for a window width. Links collapse into
// the menu at or below breakpoint.
func (nb *NavBar) Layout(width, breakpoint float64) {
	nb.width = width
	nb.compact = width <= breakpoint

	btnY := float64(HeaderHeight-IconButton) / 2
	x := width - HeaderPadding - IconButton
	nb.themeBtn = viewport.Rect{X: x, Y: btnY, W: IconButton, H: IconButton}
	x -= IconButton + 4
	nb.langBtn = viewport.Rect{X: x, Y: btnY, W: IconButton, H: IconButton}
	x -= IconButton + 4
	if nb.compact {
		nb.menuBtn = viewport.Rect{X: x, Y: btnY, W: IconButton, H: IconButton}
	} else {
		nb.menuBtn = viewport.Rect{}
	}

	tw, _ := MeasureText(nb.Title, FontSizeTitle)
	nb.titleRect = viewport.Rect{X: HeaderPadding, Y: btnY, W: tw, H: IconButton}

	nb.linkRects = nb.linkRects[:0]
	nb.menuRects = nb.menuRects[:0]
	if nb.compact {
		nb.menuPanel = viewport.Rect{X: 0, Y: HeaderHeight, W: width, H: float64(len(nb.Links)) * MenuItemH}
		for i := range nb.Links {
			nb.menuRects = append(nb.menuRects, viewport.Rect{
				X: 0, Y: HeaderHeight + float64(i)*MenuItemH, W: width, H: MenuItemH,
			})
		}
		return
	}
	nb.menuPanel = viewport.Rect{}
	lx := nb.titleRect.X + nb.titleRect.W + 40
	for _, l := range nb.Links {
		w, _ := MeasureText(l.Label, FontSizeBody)
		nb.linkRects = append(nb.linkRects, viewport.Rect{X: lx, Y: btnY, W: w + 24, H: IconButton})
		lx += w + 24 + 8
	}
}

// SetHover records the cursor position for hover styling.
func (nb *NavBar) SetHover(x, y int) {
	nb.hoverX, nb.hoverY = x, y
}

// Animate eases the condensed style in and out.
func (nb *NavBar) Animate() {
	target := 0.0
	if nb.Scrolled {
		target = 1
	}
	nb.scrolledAt = approach(nb.scrolledAt, target, FadeAnimSpeed)
}

// Contains reports whether (x, y) is on the header or the open menu.
func (nb *NavBar) Contains(x, y int) bool {
	if float64(y) < HeaderHeight && y >= 0 {
		return true
	}
	return nb.compact && nb.MenuOpen && pointIn(x, y, nb.menuPanel)
}

// HandleClick maps a click to an action. For NavActionLink the link index is
// returned as well.
func (nb *NavBar) HandleClick(mx, my int) (NavAction, int) {
	if nb.compact && nb.MenuOpen {
		for i, r := range nb.menuRects {
			if pointIn(mx, my, r) {
				return NavActionLink, i
			}
		}
	}
	if float64(my) >= HeaderHeight {
		return NavActionNone, -1
	}
	switch {
	case pointIn(mx, my, nb.themeBtn):
		return NavActionTheme, -1
	case pointIn(mx, my, nb.langBtn):
		return NavActionLanguage, -1
	case nb.compact && pointIn(mx, my, nb.menuBtn):
		return NavActionMenu, -1
	case pointIn(mx, my, nb.titleRect):
		return NavActionHome, -1
	}
	for i, r := range nb.linkRects {
		if pointIn(mx, my, r) {
			return NavActionLink, i
		}
	}
	return NavActionNone, -1
}

// Draw renders the header and, when open, the compact menu.
func (nb *NavBar) Draw(dst *ebiten.Image, pal Palette, theme site.Theme) {
	w := float32(nb.width)

	bg := Fade(pal.Background, 0.6+0.4*nb.scrolledAt)
	vector.DrawFilledRect(dst, 0, 0, w, HeaderHeight, bg, false)
	if nb.scrolledAt > 0 {
		shadow := Fade(pal.Overlay, 0.4*nb.scrolledAt)
		vector.DrawFilledRect(dst, 0, HeaderHeight, w, 4, shadow, false)
		vector.DrawFilledRect(dst, 0, HeaderHeight-1, w, 1, Fade(pal.SurfaceHover, nb.scrolledAt), false)
	}

	DrawText(dst, nb.Title, nb.titleRect.X, nb.titleRect.Y+4, FontSizeTitle, pal.Primary)

	for i, r := range nb.linkRects {
		label := nb.Links[i].Label
		clr := pal.TextSecondary
		if pointIn(nb.hoverX, nb.hoverY, r) {
			clr = pal.Text
		}
		if i == nb.ActiveLink {
			clr = pal.Primary
			vector.DrawFilledRect(dst, float32(r.X+8), float32(r.Y+r.H-3), float32(r.W-16), 2, pal.Primary, false)
		}
		DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, clr)
	}

	if nb.compact {
		r := nb.menuBtn
		drawIconButton(dst, float32(r.X), float32(r.Y), float32(r.W), pointIn(nb.hoverX, nb.hoverY, r), pal,
			func(cx, cy, rad float32) { drawHamburgerIcon(dst, cx, cy, rad, nb.MenuOpen, pal.Text) })
	}

	r := nb.langBtn
	drawIconButton(dst, float32(r.X), float32(r.Y), float32(r.W), pointIn(nb.hoverX, nb.hoverY, r), pal,
		func(cx, cy, rad float32) { drawGlobeIcon(dst, cx, cy, rad, pal.TextSecondary) })
	if nb.Language != "" {
		DrawTextCentered(dst, strings.ToUpper(nb.Language), r.X+r.W/2, r.Y+r.H+2, FontSizeCaption, pal.TextMuted)
	}

	r = nb.themeBtn
	drawIconButton(dst, float32(r.X), float32(r.Y), float32(r.W), pointIn(nb.hoverX, nb.hoverY, r), pal,
		func(cx, cy, rad float32) {
			if theme == site.ThemeLight {
				drawMoonIcon(dst, cx, cy, rad, pal.Text, pal.Background)
			} else {
				drawSunIcon(dst, cx, cy, rad, pal.Primary)
			}
		})

	if nb.compact && nb.MenuOpen {
		p := nb.menuPanel
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), pal.Surface, false)
		for i, mr := range nb.menuRects {
			clr := pal.Text
			if i == nb.ActiveLink {
				clr = pal.Primary
				vector.DrawFilledRect(dst, 0, float32(mr.Y), 4, float32(mr.H), pal.Primary, false)
			} else if pointIn(nb.hoverX, nb.hoverY, mr) {
				vector.DrawFilledRect(dst, float32(mr.X), float32(mr.Y), float32(mr.W), float32(mr.H), pal.SurfaceHover, false)
			}
			DrawText(dst, nb.Links[i].Label, HeaderPadding, mr.Y+(MenuItemH-FontSizeBody)/2, FontSizeBody, clr)
		}
	}
}
