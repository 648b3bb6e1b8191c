// 18 Oct 2026

// Package gcplot draws a GC-content histogram, folded into percent
// bins, as a bar chart in a PNG file.
package gcplot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Options controls the picture. The zero value of a field means the
// default.
type Options struct {
	Width, Height int
	Title         string
	FontSize      float64 // points, at 72 dpi
}

const (
	dfltWidth    = 800
	dfltHeight   = 500
	dfltFontSize = 12
	dfltTitle    = "Genome GC content"
	xLabel       = "GC content (%)"
	yLabel       = "fraction of windows"
	nYTick       = 5
)

var (
	barColor  = color.RGBA{255, 10, 20, 255}
	axisColor = color.Black
	gridColor = color.Gray{Y: 220}
)

func (o *Options) fill() Options {
	var r Options
	if o != nil {
		r = *o
	}
	if r.Width == 0 {
		r.Width = dfltWidth
	}
	if r.Height == 0 {
		r.Height = dfltHeight
	}
	if r.FontSize == 0 {
		r.FontSize = dfltFontSize
	}
	if r.Title == "" {
		r.Title = dfltTitle
	}
	return r
}

// plotter keeps the picture and the text drawing context together.
type plotter struct {
	img   *image.RGBA
	ctx   *freetype.Context
	face  font.Face
	fSize int // font height in pixels, rounded up
}

func newPlotter(o Options) (*plotter, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(o.FontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(axisColor))
	ctx.SetHinting(font.HintingFull)
	face := truetype.NewFace(f, &truetype.Options{Size: o.FontSize, DPI: 72, Hinting: font.HintingFull})
	return &plotter{img: img, ctx: ctx, face: face, fSize: int(math.Ceil(o.FontSize))}, nil
}

// text draws s with its baseline at y. x is the left end, or the
// centre if centre is set.
func (p *plotter) text(s string, x, y int, centre bool) error {
	if centre {
		x -= font.MeasureString(p.face, s).Round() / 2
	}
	_, err := p.ctx.DrawString(s, fixed.P(x, y))
	return err
}

// textWidth is the width in pixels of s.
func (p *plotter) textWidth(s string) int { return font.MeasureString(p.face, s).Round() }

func (p *plotter) fill(r image.Rectangle, c color.Color) {
	draw.Draw(p.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// niceMax rounds v up to 1, 2 or 5 times a power of ten, so the y
// axis ends on a tidy number.
func niceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	e := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*e {
			return m * e
		}
	}
	return 10 * e
}

// Render draws the bar chart of pct, where pct[i] is the fraction of
// windows with i+1 % GC, and writes it as a PNG.
func Render(w io.Writer, pct []float64, opts *Options) error {
	if len(pct) == 0 {
		return errors.New("gcplot: nothing to plot")
	}
	o := opts.fill()
	p, err := newPlotter(o)
	if err != nil {
		return err
	}
	var vMax float64
	for _, v := range pct {
		vMax = math.Max(vMax, v)
	}
	yTop := niceMax(vMax)
	yLabs := make([]string, nYTick+1)
	labW := 0
	for i := range yLabs {
		yLabs[i] = fmt.Sprintf("%.3g", yTop*float64(i)/nYTick)
		labW = max(labW, p.textWidth(yLabs[i]))
	}

	// The plotting area
	left := labW + 2*p.fSize + 8
	right := o.Width - p.fSize
	top := 2 * p.fSize
	bottom := o.Height - 3*p.fSize
	if right-left < len(pct) || bottom-top < 10 {
		return fmt.Errorf("gcplot: %dx%d is too small", o.Width, o.Height)
	}
	area := image.Rect(left, top, right, bottom)
	yPix := func(v float64) int { return bottom - int(math.Round(v/yTop*float64(area.Dy()))) }

	for i, lab := range yLabs { // grid lines and y labels
		y := yPix(yTop * float64(i) / nYTick)
		p.fill(image.Rect(left, y, right, y+1), gridColor)
		if err := p.text(lab, left-6-p.textWidth(lab), y+p.fSize/2, false); err != nil {
			return err
		}
	}

	barW := float64(area.Dx()) / float64(len(pct))
	for i, v := range pct {
		x0 := left + int(math.Round(float64(i)*barW))
		x1 := left + int(math.Round(float64(i+1)*barW))
		if x1-x0 > 2 {
			x1-- // leave a gap between bars
		}
		p.fill(image.Rect(x0, yPix(v), x1, bottom), barColor)
	}

	p.fill(image.Rect(left, top, left+1, bottom+1), axisColor)   // y axis
	p.fill(image.Rect(left, bottom, right, bottom+1), axisColor) // x axis
	for pc := 0; pc <= len(pct); pc += 10 {
		x := left + int(math.Round(float64(pc)*barW))
		p.fill(image.Rect(x, bottom, x+1, bottom+4), axisColor)
		if err := p.text(fmt.Sprint(pc), x, bottom+4+p.fSize, true); err != nil {
			return err
		}
	}

	if err := p.text(o.Title, (left+right)/2, top-p.fSize/2, true); err != nil {
		return err
	}
	if err := p.text(xLabel, (left+right)/2, o.Height-p.fSize/2, true); err != nil {
		return err
	}
	if err := p.text(yLabel, 2, top-p.fSize/2, false); err != nil {
		return err
	}
	return png.Encode(w, p.img)
}
