// Package icon draws the window icon: a small marquee sign ringed with bulbs.
package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	bulbAmber = color.RGBA{R: 0xF5, G: 0xB7, B: 0x2E, A: 0xFF}
	bulbGlow  = color.RGBA{R: 0xF5, G: 0xB7, B: 0x2E, A: 0x50}
	signRed   = color.RGBA{R: 0xE0, G: 0x4F, B: 0x5F, A: 0xFF}
	boardDark = color.RGBA{R: 0x28, G: 0x1C, B: 0x24, A: 0xFF}
	darkBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	letterCol = color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	drawBoard(img, s)
	drawBulbs(img, s)

	return img
}

// drawBoard draws the sign face with three lines of "lettering".
func drawBoard(img *image.RGBA, s float64) {
	fillRoundedRect(img, s*0.08, s*0.18, s*0.84, s*0.60, s*0.08, signRed)
	fillRoundedRect(img, s*0.16, s*0.26, s*0.68, s*0.44, s*0.04, boardDark)

	for i, w := range []float64{0.48, 0.36, 0.42} {
		y := s * (0.33 + float64(i)*0.12)
		x := s * (0.5 - w/2)
		fillRoundedRect(img, x, y, s*w, s*0.06, s*0.02, letterCol)
	}

	// Posts
	fillRect(img, int(s*0.24), int(s*0.78), int(math.Max(s*0.06, 1)), int(s*0.16), signRed)
	fillRect(img, int(s*0.70), int(s*0.78), int(math.Max(s*0.06, 1)), int(s*0.16), signRed)
}

// drawBulbs places glowing bulbs evenly along the sign's border.
func drawBulbs(img *image.RGBA, s float64) {
	x0, y0 := s*0.12, s*0.22
	x1, y1 := s*0.88, s*0.74
	r := math.Max(s*0.025, 0.8)
	perRow := 7
	perCol := 4
	bulb := func(x, y float64) {
		fillCircle(img, x, y, r*2, bulbGlow)
		fillCircle(img, x, y, r, bulbAmber)
	}
	for i := 0; i < perRow; i++ {
		t := float64(i) / float64(perRow-1)
		x := x0 + t*(x1-x0)
		bulb(x, y0)
		bulb(x, y1)
	}
	for i := 1; i < perCol; i++ {
		t := float64(i) / float64(perCol)
		y := y0 + t*(y1-y0)
		bulb(x0, y)
		bulb(x1, y)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
