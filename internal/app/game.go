// Package app is the window shell: it turns ebiten input and ticks into
// coordinator events and applies the resulting effects to the page.
package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/marquee/internal/cache"
	"github.com/depeter/marquee/internal/config"
	"github.com/depeter/marquee/internal/content"
	"github.com/depeter/marquee/internal/coord"
	"github.com/depeter/marquee/internal/inspect"
	"github.com/depeter/marquee/internal/site"
	"github.com/depeter/marquee/internal/ui"
	"github.com/depeter/marquee/internal/viewport"
)

// Game implements ebiten.Game for a single page document.
type Game struct {
	Config *config.Config
	Cache  *cache.ImageCache
	Site   *site.State
	Logger *slog.Logger
	// Clock stamps the footer year.
	Clock site.Clock

	Width, Height int

	coord    *coord.Coordinator
	frames   viewport.FrameQueue
	observer *viewport.Observer
	hub      *inspect.Hub

	page   *ui.Page
	navbar *ui.NavBar
	scroll ui.ScrollState
	errors ui.ErrorDisplay

	doc   *content.Document
	docCh chan *content.Document
	errCh chan error

	cursorX, cursorY int
	overCarousel     bool
}

// NewGame creates the game showing doc.
func NewGame(cfg *config.Config, doc *content.Document, imgCache *cache.ImageCache, st *site.State, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		Config: cfg,
		Cache:  imgCache,
		Site:   st,
		Logger: logger,
		Clock:  time.Now,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
		coord: coord.New(coord.Config{
			Derive: coord.DeriveConfig{
				ScrollThreshold:        cfg.Scroll.ScrollThreshold,
				IndicatorHideThreshold: cfg.Scroll.IndicatorHideThreshold,
				ThresholdFraction:      cfg.Scroll.SectionThresholdFraction,
			},
			DragSpeed:       cfg.Drag.SpeedMultiplier,
			BreakpointWidth: cfg.Nav.BreakpointWidth,
		}, logger.With("component", "coord")),
		observer: viewport.NewObserver(viewport.ObserverOptions{
			RootMarginBottom:  cfg.Reveal.RootMarginBottom,
			ThresholdFraction: cfg.Reveal.ThresholdFraction,
		}),
		page:   ui.NewPage(imgCache),
		navbar: ui.NewNavBar(),
		docCh:  make(chan *content.Document, 1),
		errCh:  make(chan error, 1),
	}
	g.setDocument(doc)
	return g
}

// SetInspector publishes UI state changes to h.
func (g *Game) SetInspector(h *inspect.Hub) {
	g.hub = h
	g.publish(g.coord.CurrentUIState())
}

// OnDocumentLoaded queues a reloaded document. Safe to call from any goroutine;
// only the newest pending document is kept.
func (g *Game) OnDocumentLoaded(doc *content.Document) {
	select {
	case <-g.docCh:
	default:
	}
	select {
	case g.docCh <- doc:
	default:
	}
}

// OnDocumentError queues a reload failure for display. Safe to call from any goroutine.
func (g *Game) OnDocumentError(err error) {
	select {
	case <-g.errCh:
	default:
	}
	select {
	case g.errCh <- err:
	default:
	}
}

func (g *Game) setDocument(doc *content.Document) {
	g.doc = doc
	g.navbar.Title = doc.Title
	g.navbar.Links = doc.Nav
	g.page.SetDocument(doc, site.FooterText(doc.Footer, g.Clock))
	g.relayout()

	links := make([]coord.NavLink, len(doc.Nav))
	for i, l := range doc.Nav {
		links[i] = coord.NavLink{Href: l.Href}
	}
	var reveal []coord.ElementID
	for _, id := range doc.RevealIDs() {
		reveal = append(reveal, coord.ElementID(id))
	}
	g.apply(g.coord.Handle(coord.DocumentChanged{
		Sections: g.page.SectionOffsets(),
		Links:    links,
		Reveal:   reveal,
	}))
}

// relayout recomputes geometry for the current window size and moves
// observed elements to their new rectangles.
func (g *Game) relayout() {
	w, h := float64(g.Width), float64(g.Height)
	g.page.Layout(w, h)
	g.navbar.Layout(w, g.Config.Nav.BreakpointWidth)
	g.scroll.SetMax(g.page.MaxScroll())
	for _, s := range g.page.Sections {
		if g.observer.Observing(s.ID) {
			r, _ := g.page.SectionRect(s.ID)
			g.observer.Update(s.ID, r)
		}
	}
}

// apply performs coordinator effects in order.
func (g *Game) apply(effects []coord.Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case coord.RequestFrame:
			g.frames.Request(g.onFrame)
		case coord.SetHeaderScrolled:
			g.navbar.Scrolled = e.Scrolled
		case coord.SetIndicatorVisible:
			g.page.SetIndicatorVisible(e.Visible)
		case coord.SetActiveLink:
			g.navbar.ActiveLink = e.Index
		case coord.Observe:
			if r, ok := g.page.SectionRect(string(e.Element)); ok {
				g.observer.Observe(string(e.Element), r)
			}
		case coord.Reveal:
			g.page.SetRevealed(string(e.Element))
		case coord.Unobserve:
			g.observer.Unobserve(string(e.Element))
		case coord.SetScrollLeft:
			g.page.SetCarouselOffset(e.Offset)
		case coord.StateChanged:
			g.publish(e.State)
		default:
			g.Logger.Warn("unhandled effect", "effect", e)
		}
	}
}

func (g *Game) onFrame() {
	g.apply(g.coord.Handle(coord.FrameFired{
		Sample: coord.ScrollSample{
			OffsetY:        g.scroll.ScrollY,
			ViewportHeight: float64(g.Height),
			Frame:          g.frames.Frame(),
		},
		ViewportWidth: float64(g.Width),
	}))
}

func (g *Game) publish(state coord.UIState) {
	if g.hub == nil {
		return
	}
	if err := g.hub.Publish(inspect.TypeUIState, state); err != nil {
		g.Logger.Warn("inspect publish failed", "error", err)
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	ui.ToggleDebugOverlay()

	g.drainChannels()
	g.handleKeys()
	g.handleMouse()

	if g.scroll.HandleMouseWheel(g.Config.Scroll.WheelSpeed) {
		g.Site.CloseMenu()
	}
	if g.scroll.Animate() {
		g.apply(g.coord.OnScrollOrResize())
	}

	g.frames.Flush()

	view := viewport.Rect{X: 0, Y: g.scroll.ScrollY, W: float64(g.Width), H: float64(g.Height)}
	for _, n := range g.observer.Check(view) {
		g.apply(g.coord.OnIntersection(coord.ElementID(n.Element), n.Intersecting))
	}

	g.navbar.MenuOpen = g.Site.MenuOpen()
	g.navbar.Language = g.Site.Language(g.doc.Languages)
	g.navbar.Animate()
	g.page.Animate()
	return nil
}

func (g *Game) drainChannels() {
	select {
	case doc := <-g.docCh:
		// Reread local images edited alongside the document.
		if g.Cache != nil {
			g.Cache.Clear()
		}
		g.setDocument(doc)
		g.errors.Set("")
	default:
	}
	select {
	case err := <-g.errCh:
		g.errors.Set(err.Error())
	default:
	}
}

func (g *Game) handleKeys() {
	kb := g.Config.Keybinds
	if ui.IsModifierPressed() {
		return
	}
	if keyJustPressed(kb.Theme) {
		g.toggleTheme()
	}
	if keyJustPressed(kb.Menu) {
		g.Site.ToggleMenu()
	}
	if keyJustPressed(kb.Language) {
		g.nextLanguage()
	}
	if keyJustPressed("escape") {
		g.Site.CloseMenu()
	}
	if keyJustPressed(kb.Top) {
		g.scroll.ScrollTo(0)
	}
	if keyJustPressed("end") {
		g.scroll.ScrollTo(g.page.MaxScroll())
	}

	step := g.Config.Scroll.WheelSpeed
	page := float64(g.Height - ui.HeaderHeight)
	switch {
	case keyRepeating(ebiten.KeyArrowDown):
		g.scroll.ScrollBy(step)
	case keyRepeating(ebiten.KeyArrowUp):
		g.scroll.ScrollBy(-step)
	case keyRepeating(ebiten.KeyPageDown), keyRepeating(ebiten.KeySpace):
		g.scroll.ScrollBy(page)
	case keyRepeating(ebiten.KeyPageUp):
		g.scroll.ScrollBy(-page)
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	moved := x != g.cursorX || y != g.cursorY
	g.cursorX, g.cursorY = x, y
	g.navbar.SetHover(x, y)

	over := ui.CursorInWindow(x, y, g.Width, g.Height) &&
		!g.headerHit(x, y) &&
		g.page.CarouselHit(x, y, g.scroll.ScrollY)

	if _, _, clicked := ui.MouseJustClicked(); clicked {
		switch {
		case g.errors.HandleClick(x, y):
		case g.headerHit(x, y):
			action, idx := g.navbar.HandleClick(x, y)
			g.handleNavAction(action, idx)
		case g.Site.MenuOpen():
			g.Site.CloseMenu()
		case over:
			g.apply(g.coord.OnPointerDown(float64(x), g.page.CarouselOffset()))
		}
	}

	if ui.MouseJustReleased() {
		g.apply(g.coord.OnPointerUp())
	}
	if g.overCarousel && !over {
		g.apply(g.coord.OnPointerLeave())
	}
	if over && moved {
		g.apply(g.coord.OnPointerMove(float64(x)))
	}
	g.overCarousel = over
}

func (g *Game) headerHit(x, y int) bool {
	return g.doc.Header && g.navbar.Contains(x, y)
}

func (g *Game) handleNavAction(action ui.NavAction, idx int) {
	switch action {
	case ui.NavActionLink:
		g.followLink(idx)
	case ui.NavActionTheme:
		g.toggleTheme()
	case ui.NavActionMenu:
		g.Site.ToggleMenu()
	case ui.NavActionLanguage:
		g.nextLanguage()
	case ui.NavActionHome:
		g.Site.CloseMenu()
		g.scroll.ScrollTo(0)
	}
}

// followLink scrolls to an in-page target so the section starts just below
// the header. Other links are only logged.
func (g *Game) followLink(idx int) {
	if idx < 0 || idx >= len(g.doc.Nav) {
		return
	}
	g.Site.CloseMenu()
	link := g.doc.Nav[idx]
	id, ok := coord.NavLink{Href: link.Href}.Target()
	if !ok {
		g.Logger.Info("external link", "href", link.Href)
		return
	}
	top, ok := g.coord.SectionTop(id)
	if !ok {
		g.Logger.Warn("link target not found", "href", link.Href)
		return
	}
	g.scroll.ScrollTo(top - ui.HeaderHeight)
}

func (g *Game) toggleTheme() {
	if err := g.Site.ToggleTheme(); err != nil {
		g.Logger.Warn("theme not saved", "error", err)
	}
	g.Logger.Debug("theme changed", "theme", g.Site.Theme())
}

func (g *Game) nextLanguage() {
	langs := g.doc.Languages
	if len(langs) < 2 {
		return
	}
	next := site.NextLanguage(g.Site.Language(langs), langs)
	if err := g.Site.SwitchLanguage(next, langs); err != nil {
		g.Logger.Warn("language switch failed", "lang", next, "error", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := ui.PaletteFor(g.Site.Theme())
	g.page.Draw(screen, g.scroll.ScrollY, pal)
	if g.doc.Header {
		g.navbar.Draw(screen, pal, g.Site.Theme())
	}
	g.errors.Draw(screen, pal)

	pending, revealed := g.coord.RevealCounts()
	clients := 0
	if g.hub != nil {
		clients = g.hub.Clients()
	}
	ui.DrawDebugOverlay(screen, ui.DebugInfo{
		State:      g.coord.CurrentUIState(),
		ActiveLink: g.coord.ActiveLink(),
		Drag:       g.coord.DragState(),
		Pending:    pending,
		Revealed:   revealed,
		Frame:      g.frames.Frame(),
		ScrollY:    g.scroll.ScrollY,
		Width:      g.Width,
		Clients:    clients,
		Path:       g.Site.Path(),
		Language:   g.Site.Language(g.doc.Languages),
	}, pal)
}

// Layout tracks the window size; a change counts as a resize notification.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width = outsideWidth
		g.Height = outsideHeight
		g.relayout()
		g.apply(g.coord.OnScrollOrResize())
	}
	return g.Width, g.Height
}
