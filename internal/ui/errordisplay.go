package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/marquee/internal/viewport"
)

// ErrorDisplay shows the last document reload error in a banner at the bottom
// of the window until it is dismissed or the document reloads cleanly.
type ErrorDisplay struct {
	Text string

	closeRect viewport.Rect
}

// Set replaces the displayed error. An empty string hides the banner.
func (ed *ErrorDisplay) Set(text string) { ed.Text = text }

// Draw renders the banner across the bottom of dst.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, pal Palette) {
	if ed.Text == "" {
		ed.closeRect = viewport.Rect{}
		return
	}
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	const bannerH = 44.0
	y := h - bannerH

	vector.DrawFilledRect(dst, 0, float32(y), float32(w), bannerH, pal.Error, false)
	msg := truncateText("Document reload failed: "+ed.Text, w-SectionPadding*2-40, FontSizeSmall)
	DrawText(dst, msg, SectionPadding, y+14, FontSizeSmall, pal.Background)

	ed.closeRect = viewport.Rect{X: w - SectionPadding - 24, Y: y + 10, W: 24, H: 24}
	cx := float32(ed.closeRect.X + 12)
	cy := float32(ed.closeRect.Y + 12)
	drawHamburgerIcon(dst, cx, cy, 8, true, pal.Background)
}

// HandleClick dismisses the banner when its close button is clicked. Returns
// true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int) bool {
	if ed.Text == "" {
		return false
	}
	if pointIn(mx, my, ed.closeRect) {
		ed.Text = ""
		return true
	}
	return false
}
