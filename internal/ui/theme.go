package ui

import (
	"image/color"

	"github.com/depeter/marquee/internal/site"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Background    color.RGBA
	Surface       color.RGBA
	SurfaceHover  color.RGBA
	Primary       color.RGBA
	Accent        color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
	TextMuted     color.RGBA
	Overlay       color.RGBA
	Error         color.RGBA
}

var (
	DarkPalette = Palette{
		Background:    color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF},
		Surface:       color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF},
		Primary:       color.RGBA{R: 0xF5, G: 0xB7, B: 0x2E, A: 0xFF}, // bulb amber
		Accent:        color.RGBA{R: 0xE0, G: 0x4F, B: 0x5F, A: 0xFF},
		Text:          color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x9C, G: 0x9C, B: 0xA8, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF},
		Overlay:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0},
		Error:         color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF},
	}
	LightPalette = Palette{
		Background:    color.RGBA{R: 0xFA, G: 0xF8, B: 0xF4, A: 0xFF},
		Surface:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0xEC, G: 0xE8, B: 0xE0, A: 0xFF},
		Primary:       color.RGBA{R: 0xC2, G: 0x82, B: 0x00, A: 0xFF},
		Accent:        color.RGBA{R: 0xC0, G: 0x30, B: 0x44, A: 0xFF},
		Text:          color.RGBA{R: 0x1C, G: 0x1C, B: 0x22, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x50, G: 0x50, B: 0x5A, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x90, G: 0x90, B: 0x98, A: 0xFF},
		Overlay:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xD8},
		Error:         color.RGBA{R: 0xC0, G: 0x20, B: 0x20, A: 0xFF},
	}
)

// PaletteFor returns the palette of a theme.
func PaletteFor(t site.Theme) Palette {
	if t == site.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Layout constants
const (
	HeaderHeight   = 64
	HeaderPadding  = 24
	SectionPadding = 48
	FooterHeight   = 80

	CardWidth  = 260
	CardHeight = 180
	CardGap    = 24
	// CarouselHeight is the carousel row including its title.
	CarouselHeight = CardHeight + SectionTitleH + 40

	SectionTitleH = 44
	MenuItemH     = 44
	IconButton    = 40

	FontSizeTitle   = 28
	FontSizeHeading = 34
	FontSizeBody    = 17
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.18
	RevealAnimSpeed = 0.08
	FadeAnimSpeed   = 0.15
)
