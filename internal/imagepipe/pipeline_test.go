package imagepipe

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 16 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestOptimizeBoundsLongestEdge(t *testing.T) {
	p := New(1024, 82)
	encoded, err := p.Optimize(testImage(t, 4000, 3000))
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if !strings.HasPrefix(encoded, "data:image/jpeg;base64,") {
		t.Fatalf("unexpected encoding prefix: %.40s", encoded)
	}
	img, err := Decode(encoded)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 1024 || b.Dy() > 1024 {
		t.Fatalf("longest edge %dx%d exceeds bound", b.Dx(), b.Dy())
	}
	// aspect ratio 4:3 preserved
	if b.Dx() != 1024 || b.Dy() != 768 {
		t.Fatalf("expected 1024x768, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestOptimizeNeverUpscales(t *testing.T) {
	p := New(1024, 82)
	encoded, err := p.Optimize(testImage(t, 400, 300))
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	img, err := Decode(encoded)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("dimensions changed: got %dx%d", b.Dx(), b.Dy())
	}
}

func TestOptimizeAllPreservesOrder(t *testing.T) {
	p := New(256, 82)
	files := [][]byte{
		testImage(t, 100, 50),
		testImage(t, 200, 100),
		testImage(t, 300, 150),
	}
	got, err := p.OptimizeAll(context.Background(), files)
	if err != nil {
		t.Fatalf("optimize all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	widths := []int{100, 200, 256}
	for i, enc := range got {
		img, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode result %d: %v", i, err)
		}
		if img.Bounds().Dx() != widths[i] {
			t.Fatalf("result %d out of order: width %d, want %d", i, img.Bounds().Dx(), widths[i])
		}
	}
}

func TestOptimizeAllFailsWholeBatch(t *testing.T) {
	p := New(256, 82)
	files := [][]byte{
		testImage(t, 100, 100),
		[]byte("this is not an image"),
		testImage(t, 100, 100),
	}
	got, err := p.OptimizeAll(context.Background(), files)
	if err == nil {
		t.Fatal("expected batch failure")
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if got != nil {
		t.Fatalf("partial results must be discarded, got %d entries", len(got))
	}
}

func TestOptimizeRejectsGarbage(t *testing.T) {
	p := New(1024, 82)
	if _, err := p.Optimize([]byte{0x00, 0x01, 0x02}); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestOptimizeAllEmptyBatch(t *testing.T) {
	p := New(1024, 82)
	got, err := p.OptimizeAll(context.Background(), nil)
	if err != nil || got != nil {
		t.Fatalf("empty batch should be a no-op, got %v %v", got, err)
	}
}
