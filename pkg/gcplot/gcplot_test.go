package gcplot_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/andrew-torda/gccontent/pkg/gcplot"
)

// nRed counts the pixels which are the colour of the bars.
func nRed(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 == 255 && g>>8 == 10 && bl>>8 == 20 {
				n++
			}
		}
	}
	return n
}

func render(t *testing.T, pct []float64, opts *gcplot.Options) image.Image {
	var buf bytes.Buffer
	if err := gcplot.Render(&buf, pct, opts); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRender(t *testing.T) {
	pct := make([]float64, 100)
	pct[40], pct[41], pct[42] = 0.2, 0.5, 0.3
	img := render(t, pct, nil)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 500 {
		t.Fatal("default size wrong", b)
	}
	if nRed(img) == 0 {
		t.Fatal("no bars drawn")
	}

	img = render(t, pct, &gcplot.Options{Width: 300, Height: 200, Title: "hg38"})
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Fatal("size not set", b)
	}
}

// All zeros still makes a picture, just with no bars.
func TestRenderZero(t *testing.T) {
	if n := nRed(render(t, make([]float64, 100), nil)); n != 0 {
		t.Fatal("expected no bar pixels, got", n)
	}
}

func TestRenderBad(t *testing.T) {
	var buf bytes.Buffer
	if err := gcplot.Render(&buf, nil, nil); err == nil {
		t.Error("no error plotting nothing")
	}
	if err := gcplot.Render(&buf, make([]float64, 100), &gcplot.Options{Width: 50, Height: 50}); err == nil {
		t.Error("no error on a tiny picture")
	}
}
