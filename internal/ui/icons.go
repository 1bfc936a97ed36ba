package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawHamburgerIcon draws three bars, or a cross when open.
func drawHamburgerIcon(dst *ebiten.Image, cx, cy, r float32, open bool, clr color.Color) {
	if open {
		vector.StrokeLine(dst, cx-r*0.7, cy-r*0.7, cx+r*0.7, cy+r*0.7, 2, clr, true)
		vector.StrokeLine(dst, cx-r*0.7, cy+r*0.7, cx+r*0.7, cy-r*0.7, 2, clr, true)
		return
	}
	gap := r * 0.6
	for i := -1; i <= 1; i++ {
		ly := cy + float32(i)*gap
		vector.StrokeLine(dst, cx-r, ly, cx+r, ly, 2, clr, false)
	}
}

// drawSunIcon draws a disc with eight rays.
func drawSunIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.45, clr, true)
	rays := 8
	for i := 0; i < rays; i++ {
		angle := float64(i) * 2 * math.Pi / float64(rays)
		cos, sin := float32(math.Cos(angle)), float32(math.Sin(angle))
		vector.StrokeLine(dst, cx+r*0.65*cos, cy+r*0.65*sin, cx+r*cos, cy+r*sin, 1.5, clr, true)
	}
}

// drawMoonIcon draws a crescent by masking a disc with the background color.
func drawMoonIcon(dst *ebiten.Image, cx, cy, r float32, clr, bg color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.8, clr, true)
	vector.DrawFilledCircle(dst, cx+r*0.4, cy-r*0.3, r*0.65, bg, true)
}

// drawGlobeIcon draws a circle with a meridian and an equator.
func drawGlobeIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r*0.8, 1.5, clr, true)
	vector.StrokeLine(dst, cx-r*0.8, cy, cx+r*0.8, cy, 1.2, clr, true)
	vector.StrokeLine(dst, cx, cy-r*0.8, cx, cy+r*0.8, 1.2, clr, true)
}

// drawChevronDown draws a downward chevron, used by the scroll indicator.
func drawChevronDown(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy-r*0.4, cx, cy+r*0.4, 2.5, clr, true)
	vector.StrokeLine(dst, cx, cy+r*0.4, cx+r, cy-r*0.4, 2.5, clr, true)
}

// drawIconButton draws a square header button, highlighted while hovered.
func drawIconButton(dst *ebiten.Image, x, y, size float32, hover bool, pal Palette, icon func(cx, cy, r float32)) {
	if hover {
		vector.DrawFilledRect(dst, x, y, size, size, pal.SurfaceHover, false)
	}
	icon(x+size/2, y+size/2, size*0.28)
}
