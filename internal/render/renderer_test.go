package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/cfu288/boinc-statistics-image-generator/internal/domain/stats"
)

func sampleRecords() []stats.UserStat {
	return []stats.UserStat{
		{Source: "Rosetta@home", Username: "cfu288", TotalCredit: "98,765"},
		{Source: "Einstein@Home", Username: "cfu288", TotalCredit: "1,200"},
	}
}

func newRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(opts)
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Errorf("failed to close renderer: %v", err)
		}
	})
	return r
}

// litPixels counts pixels brighter than half intensity inside rect.
func litPixels(img image.Image, rect image.Rectangle) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r > 0x8000 && g > 0x8000 && b > 0x8000 {
				n++
			}
		}
	}
	return n
}

func TestRenderUsesConfiguredCanvas(t *testing.T) {
	r := newRenderer(t, Options{})

	img, err := r.Render(sampleRecords())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Fatalf("expected 300x100 canvas, got %v", b)
	}
	cr, cg, cb, ca := img.At(0, 0).RGBA()
	if cr != 0 || cg != 0 || cb != 0 || ca != 0xffff {
		t.Fatalf("expected opaque black background, got %d %d %d %d", cr, cg, cb, ca)
	}
}

func TestRenderDrawsTitleAndRows(t *testing.T) {
	r := newRenderer(t, Options{})
	opts := r.opts

	img, err := r.Render(sampleRecords())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	titleBand := image.Rect(0, 0, opts.Width, int(opts.TitleBaseline())+2)
	if litPixels(img, titleBand) == 0 {
		t.Fatal("expected title text in the title band")
	}
	rowBand := image.Rect(0, int(opts.TitleBaseline())+2, opts.Width, int(opts.RowBaseline(1))+2)
	if litPixels(img, rowBand) == 0 {
		t.Fatal("expected row text below the title")
	}
	emptyBand := image.Rect(0, int(opts.RowBaseline(2))+4, opts.Width, opts.Height)
	if litPixels(img, emptyBand) != 0 {
		t.Fatal("expected nothing drawn below the last row")
	}
}

func TestRenderWithoutRecordsDrawsFallbackTitle(t *testing.T) {
	r := newRenderer(t, Options{})

	img, err := r.Render(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if litPixels(img, image.Rect(0, 0, 300, 16)) == 0 {
		t.Fatal("expected fallback title to be drawn")
	}
}

func TestRenderScalesCanvas(t *testing.T) {
	r := newRenderer(t, Options{Scale: 2})

	img, err := r.Render(sampleRecords())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 200 {
		t.Fatalf("expected 600x200 canvas, got %v", b)
	}
}

func TestEncodePNGProducesDecodableImage(t *testing.T) {
	r := newRenderer(t, Options{})

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf, sampleRecords()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("expected valid png, got %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Fatalf("unexpected decoded size %v", b)
	}
}

func TestNilRendererErrors(t *testing.T) {
	var r *Renderer
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error from nil renderer")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("expected nil close to succeed, got %v", err)
	}
}
