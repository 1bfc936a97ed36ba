package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/marquee/internal/content"
	"github.com/depeter/marquee/internal/viewport"
)

// CardItem is one card of the carousel.
type CardItem struct {
	Title   string
	Caption string
	Src     string
	Image   *ebiten.Image
}

// Carousel is a horizontally scrolled row of cards. Its offset is only
// changed through SetOffset, which the drag reducer drives.
type Carousel struct {
	Label     string
	SectionID string
	Items     []CardItem

	// Rect is the card row in page coordinates.
	Rect      viewport.Rect
	OffsetX   float64
	MaxOffset float64
}

// NewCarousel builds the carousel for a document, or nil when it has none.
func NewCarousel(doc *content.Document) *Carousel {
	id, ok := doc.CarouselSection()
	if !ok {
		return nil
	}
	c := &Carousel{Label: doc.Carousel.Title, SectionID: id}
	for _, it := range doc.Carousel.Items {
		c.Items = append(c.Items, CardItem{Title: it.Title, Caption: it.Caption, Src: it.Image})
	}
	return c
}

// Layout places the card row at y within a page of the given width.
func (c *Carousel) Layout(y, width float64) {
	c.Rect = viewport.Rect{X: SectionPadding, Y: y + SectionTitleH, W: width - SectionPadding*2, H: CardHeight}
	total := float64(len(c.Items))*(CardWidth+CardGap) - CardGap
	c.MaxOffset = max(total-c.Rect.W, 0)
	c.SetOffset(c.OffsetX)
}

// SetOffset sets the horizontal offset, clamped to the scrollable range.
func (c *Carousel) SetOffset(x float64) {
	c.OffsetX = min(max(x, 0), c.MaxOffset)
}

// Hit reports whether a window point lies on the card row at scroll offset scrollY.
func (c *Carousel) Hit(x, y int, scrollY float64) bool {
	r := c.Rect
	r.Y -= scrollY
	return pointIn(x, y, r)
}

// Draw renders the row at scroll offset scrollY.
func (c *Carousel) Draw(dst *ebiten.Image, scrollY float64, pal Palette, alpha float64) {
	baseX := c.Rect.X
	labelY := c.Rect.Y - SectionTitleH - scrollY
	if c.Label != "" {
		DrawText(dst, c.Label, baseX, labelY+8, FontSizeBody, Fade(pal.TextSecondary, alpha))
	}

	iy := c.Rect.Y - scrollY
	right := c.Rect.X + c.Rect.W
	for i := range c.Items {
		item := &c.Items[i]
		ix := baseX + float64(i)*(CardWidth+CardGap) - c.OffsetX

		if ix+CardWidth < baseX || ix > right {
			continue
		}

		if item.Image != nil {
			op := &ebiten.DrawImageOptions{}
			bounds := item.Image.Bounds()
			op.GeoM.Scale(float64(CardWidth)/float64(bounds.Dx()), float64(CardHeight)/float64(bounds.Dy()))
			op.GeoM.Translate(ix, iy)
			op.ColorScale.ScaleAlpha(float32(alpha))
			dst.DrawImage(item.Image, op)
		} else {
			vector.DrawFilledRect(dst, float32(ix), float32(iy), CardWidth, CardHeight, Fade(pal.Surface, alpha), false)
			vector.StrokeRect(dst, float32(ix), float32(iy), CardWidth, CardHeight, 1, Fade(pal.SurfaceHover, alpha), false)
		}

		// Caption strip
		vector.DrawFilledRect(dst, float32(ix), float32(iy+CardHeight-48), CardWidth, 48, Fade(pal.Overlay, alpha*0.8), false)
		DrawText(dst, truncateText(item.Title, CardWidth-24, FontSizeBody), ix+12, iy+CardHeight-44, FontSizeBody, Fade(pal.Text, alpha))
		DrawText(dst, truncateText(item.Caption, CardWidth-24, FontSizeSmall), ix+12, iy+CardHeight-22, FontSizeSmall, Fade(pal.TextSecondary, alpha))
	}

	if c.MaxOffset > 0 {
		trackW := c.Rect.W
		thumbW := max(trackW*c.Rect.W/(c.Rect.W+c.MaxOffset), 24)
		thumbX := c.Rect.X + (trackW-thumbW)*c.OffsetX/c.MaxOffset
		ty := float32(iy + CardHeight + 12)
		vector.DrawFilledRect(dst, float32(c.Rect.X), ty, float32(trackW), 3, Fade(pal.SurfaceHover, alpha), false)
		vector.DrawFilledRect(dst, float32(thumbX), ty, float32(thumbW), 3, Fade(pal.Primary, alpha), false)
	}
}
