package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("Generate returned %d images, want 2", len(imgs))
	}
	for i, want := range []int{64, 32} {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Fatalf("image %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
}

func TestGenerateDrawsSignOnBackground(t *testing.T) {
	img := generate(64).(*image.RGBA)
	if got := img.RGBAAt(0, 0); got != darkBG {
		t.Fatalf("corner = %v, want background %v", got, darkBG)
	}
	// The top bulb row sits on the sign's top border.
	size := 64.0
	if got := img.RGBAAt(32, int(size*0.22)); got == darkBG {
		t.Fatalf("expected bulb or board at top border, got background")
	}
}

func TestBlendPixelOpaqueAndTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	blendPixel(img, 0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}) {
		t.Fatalf("opaque blend = %v", got)
	}
	blendPixel(img, 1, 1, color.RGBA{})
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Fatalf("transparent blend changed pixel: %v", got)
	}
}
