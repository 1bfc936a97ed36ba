package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/marquee/internal/cache"
	"github.com/depeter/marquee/internal/content"
	"github.com/depeter/marquee/internal/coord"
	"github.com/depeter/marquee/internal/viewport"
)

// SectionView is a laid-out section with its reveal animation state.
type SectionView struct {
	ID     string
	Title  string
	Body   string
	Src    string
	Reveal bool

	Top    float64
	Height float64

	revealed bool
	alpha    float64
}

// Page renders a document. Its presentational state is written only by the
// coordinator's effects, applied by the game loop.
type Page struct {
	images *cache.ImageCache

	Sections []SectionView
	Carousel *Carousel
	Footer   string

	showIndicator  bool
	indicatorOn    bool
	indicatorAlpha float64

	revealed map[string]bool

	width, height float64
	contentHeight float64
}

// NewPage creates an empty page. images may be nil.
func NewPage(images *cache.ImageCache) *Page {
	return &Page{
		images:   images,
		revealed: make(map[string]bool),
	}
}

// SetDocument replaces the page content. Sections already revealed keep
// their revealed state; the carousel offset is kept when the new document
// still has a carousel.
func (p *Page) SetDocument(doc *content.Document, footer string) {
	p.Sections = p.Sections[:0]
	for _, s := range doc.Sections {
		v := SectionView{
			ID:     s.ID,
			Title:  s.Title,
			Body:   s.Body,
			Src:    s.Image,
			Reveal: s.Reveal,
			Height: s.Height,
			alpha:  1,
		}
		if s.Reveal && !p.revealed[s.ID] {
			v.alpha = 0
		} else if s.Reveal {
			v.revealed = true
		}
		p.Sections = append(p.Sections, v)
		p.loadImage(s.Image)
	}

	prevOffset := 0.0
	if p.Carousel != nil {
		prevOffset = p.Carousel.OffsetX
	}
	p.Carousel = NewCarousel(doc)
	if p.Carousel != nil {
		p.Carousel.OffsetX = prevOffset
		for _, it := range p.Carousel.Items {
			p.loadImage(it.Src)
		}
	}

	p.Footer = footer
	p.showIndicator = doc.Indicator
	p.Layout(p.width, p.height)
}

func (p *Page) loadImage(src string) {
	if p.images == nil || src == "" {
		return
	}
	p.images.LoadAsync(src, func(*ebiten.Image) {})
}

func (p *Page) image(src string) *ebiten.Image {
	if p.images == nil || src == "" {
		return nil
	}
	return p.images.Get(src)
}

// Layout stacks sections below the header for a window size.
func (p *Page) Layout(width, height float64) {
	p.width, p.height = width, height
	y := float64(HeaderHeight)
	for i := range p.Sections {
		s := &p.Sections[i]
		s.Top = y
		if p.Carousel != nil && p.Carousel.SectionID == s.ID {
			p.Carousel.Layout(y+s.Height-CarouselHeight, width)
		}
		y += s.Height
	}
	p.contentHeight = y + FooterHeight
}

// MaxScroll is the largest scroll offset for the current window height.
func (p *Page) MaxScroll() float64 { return max(p.contentHeight-p.height, 0) }

// SectionOffsets returns section tops for the scroll-spy index.
func (p *Page) SectionOffsets() []coord.Section {
	out := make([]coord.Section, len(p.Sections))
	for i, s := range p.Sections {
		out[i] = coord.Section{ID: s.ID, TopOffset: s.Top}
	}
	return out
}

// SectionRect returns a section's rectangle in page coordinates.
func (p *Page) SectionRect(id string) (viewport.Rect, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return viewport.Rect{X: 0, Y: s.Top, W: p.width, H: s.Height}, true
		}
	}
	return viewport.Rect{}, false
}

// SetIndicatorVisible shows or hides the scroll indicator. It has no effect
// when the document disables the indicator.
func (p *Page) SetIndicatorVisible(v bool) { p.indicatorOn = v }

// SetRevealed starts a section's fade-in. It is never undone.
func (p *Page) SetRevealed(id string) {
	p.revealed[id] = true
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			p.Sections[i].revealed = true
		}
	}
}

// Revealed reports whether a section has been revealed.
func (p *Page) Revealed(id string) bool { return p.revealed[id] }

// SetCarouselOffset applies a drag offset to the carousel.
func (p *Page) SetCarouselOffset(x float64) {
	if p.Carousel != nil {
		p.Carousel.SetOffset(x)
	}
}

// CarouselOffset returns the carousel's current offset.
func (p *Page) CarouselOffset() float64 {
	if p.Carousel == nil {
		return 0
	}
	return p.Carousel.OffsetX
}

// CarouselHit reports whether a window point is on the carousel.
func (p *Page) CarouselHit(x, y int, scrollY float64) bool {
	return p.Carousel != nil && p.Carousel.Hit(x, y, scrollY)
}

// Animate advances fades. Call once per tick.
func (p *Page) Animate() {
	for i := range p.Sections {
		s := &p.Sections[i]
		if s.revealed {
			s.alpha = approach(s.alpha, 1, RevealAnimSpeed)
		}
	}
	if p.Carousel != nil {
		for i := range p.Carousel.Items {
			if it := &p.Carousel.Items[i]; it.Image == nil {
				it.Image = p.image(it.Src)
			}
		}
	}
	target := 0.0
	if p.showIndicator && p.indicatorOn {
		target = 1
	}
	p.indicatorAlpha = approach(p.indicatorAlpha, target, FadeAnimSpeed)
}

// Draw renders the visible part of the page at scroll offset scrollY.
func (p *Page) Draw(dst *ebiten.Image, scrollY float64, pal Palette) {
	dst.Fill(pal.Background)

	for i, s := range p.Sections {
		top := s.Top - scrollY
		if top+s.Height < 0 || top > p.height {
			continue
		}
		if i%2 == 1 {
			vector.DrawFilledRect(dst, 0, float32(top), float32(p.width), float32(s.Height), pal.Surface, false)
		}
		p.drawSection(dst, s, top, pal)
		if p.Carousel != nil && p.Carousel.SectionID == s.ID {
			p.Carousel.Draw(dst, scrollY, pal, s.alpha)
		}
	}

	footerTop := p.contentHeight - FooterHeight - scrollY
	if footerTop < p.height {
		vector.DrawFilledRect(dst, 0, float32(footerTop), float32(p.width), FooterHeight, pal.SurfaceHover, false)
		DrawTextCentered(dst, p.Footer, p.width/2, footerTop+FooterHeight/2, FontSizeSmall, pal.TextSecondary)
	}

	if p.indicatorAlpha > 0 {
		cx := float32(p.width / 2)
		cy := float32(p.height - 40)
		drawChevronDown(dst, cx, cy, 14, Fade(pal.TextSecondary, p.indicatorAlpha))
	}
}

func (p *Page) drawSection(dst *ebiten.Image, s SectionView, top float64, pal Palette) {
	alpha := s.alpha
	// Unrevealed sections slide up as they fade in.
	shift := (1 - alpha) * 40
	x := float64(SectionPadding)
	y := top + SectionPadding + shift
	textW := p.width - SectionPadding*2

	if img := p.image(s.Src); img != nil {
		imgW := min(textW*0.4, 480)
		b := img.Bounds()
		scale := imgW / float64(b.Dx())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(p.width-SectionPadding-imgW, y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(img, op)
		textW -= imgW + SectionPadding
	}

	if s.Title != "" {
		DrawText(dst, s.Title, x, y, FontSizeHeading, Fade(pal.Text, alpha))
		y += SectionTitleH + 12
	}
	if s.Body != "" {
		DrawTextWrapped(dst, s.Body, x, y, textW, FontSizeBody, Fade(pal.TextSecondary, alpha))
	}
}
