package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf
}

func TestNormalizeImageDownscalesWideImages(t *testing.T) {
	src := encodePNG(t, 3200, 400)

	out, err := NormalizeImage(src, 1600)
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}

	decoded, err := imaging.Decode(out)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if got := decoded.Bounds().Dx(); got != 1600 {
		t.Errorf("want width 1600, got %d", got)
	}
	if got := decoded.Bounds().Dy(); got != 200 {
		t.Errorf("want height scaled to 200, got %d", got)
	}
}

func TestNormalizeImageKeepsSmallImages(t *testing.T) {
	src := encodePNG(t, 100, 80)

	out, err := NormalizeImage(src, 1600)
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}

	decoded, err := imaging.Decode(out)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if decoded.Bounds().Dx() != 100 || decoded.Bounds().Dy() != 80 {
		t.Errorf("want 100x80 untouched, got %dx%d", decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	if _, err := NormalizeImage(strings.NewReader("not an image"), 1600); err == nil {
		t.Errorf("want decode error for non-image input")
	}
}
