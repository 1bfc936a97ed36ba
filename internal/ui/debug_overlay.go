package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/marquee/internal/coord"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugInfo is the coordinator state shown by the overlay.
type DebugInfo struct {
	State      coord.UIState
	ActiveLink int
	Drag       coord.DragState
	Pending    int
	Revealed   int
	Frame      uint64
	ScrollY    float64
	Width      int
	Clients    int
	Path       string
	Language   string
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, info DebugInfo, pal Palette) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = HeaderHeight + 20.0
	)

	active := info.State.ActiveSection
	if active == "" {
		active = "(none)"
	}
	lines := []string{
		fmt.Sprintf("frame        %d", info.Frame),
		fmt.Sprintf("scrollY      %.1f", info.ScrollY),
		fmt.Sprintf("width        %d", info.Width),
		fmt.Sprintf("header       scrolled=%t", info.State.HeaderScrolled),
		fmt.Sprintf("indicator    visible=%t", info.State.IndicatorVisible),
		fmt.Sprintf("section      %s", active),
		fmt.Sprintf("active link  %d", info.ActiveLink),
		fmt.Sprintf("drag         %s", info.Drag),
		fmt.Sprintf("reveal       pending=%d revealed=%d", info.Pending, info.Revealed),
		fmt.Sprintf("path         %s (%s)", info.Path, LanguageName(info.Language)),
		fmt.Sprintf("inspectors   %d", info.Clients),
		fmt.Sprintf("tps          %.0f", ebiten.ActualTPS()),
	}

	panelW := 320.0
	panelH := float64(len(lines)+1)*lineH + padY*2
	w := screen.Bounds().Dx()
	px := float64(w) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), pal.Overlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, "Debug: scroll state (F12 to close)", x, y, FontSizeSmall, pal.Primary)
	y += lineH
	for _, l := range lines {
		DrawText(screen, l, x, y, FontSizeSmall, pal.Text)
		y += lineH
	}
}
