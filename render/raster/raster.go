// Package raster draws a frame onto an RGBA image: letters in Go Regular at
// the geometry's font size, arrows as round-capped strokes with a two-stroke
// head.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"github.com/iw2rmb/strands/arrow"
	"github.com/iw2rmb/strands/frame"
)

type Options struct {
	Background color.Color // default white
	Ink        color.Color // letters, default black
	ArrowInk   color.Color // arrows, default Ink
	// LineWidth is the stroke width of arrows in pixels. 0 means 1.
	LineWidth float64
}

func (o Options) withDefaults() Options {
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Ink == nil {
		o.Ink = color.Black
	}
	if o.ArrowInk == nil {
		o.ArrowInk = o.Ink
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 1
	}
	return o
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func newFace(size float64) (font.Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// Render draws f on a canvas sized by g.Size.
func Render(f frame.Frame, g frame.Geometry, opt Options) (*image.RGBA, error) {
	opt = opt.withDefaults()
	w, h := g.Size(f)
	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)
	if len(f.Cells) == 0 {
		return dst, nil
	}

	face, err := newFace(g.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	pen := newPen(dst.Bounds().Dx(), dst.Bounds().Dy(), opt.LineWidth/2)
	for _, c := range f.Cells {
		for d := range c.Arrows.All() {
			pen.arrow(g, c, d)
		}
	}
	pen.r.Draw(dst, dst.Bounds(), image.NewUniform(opt.ArrowInk), image.Point{})

	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(opt.Ink), Face: face}
	capHeight := face.Metrics().CapHeight
	for _, c := range f.Cells {
		s := string(c.Letter)
		center := g.Center(c)
		advance := drawer.MeasureString(s)
		drawer.Dot = fixed.Point26_6{
			X: fixed.Int26_6(center.X*64) - advance/2,
			Y: fixed.Int26_6(center.Y*64) + capHeight/2,
		}
		drawer.DrawString(s)
	}
	return dst, nil
}

// WritePNG renders f and encodes it as PNG to w.
func WritePNG(w io.Writer, f frame.Frame, g frame.Geometry, opt Options) error {
	img, err := Render(f, g, opt)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// pen accumulates capsule-shaped strokes on one rasterizer.
type pen struct {
	r      *vector.Rasterizer
	radius float64
}

func newPen(w, h int, radius float64) *pen {
	return &pen{r: vector.NewRasterizer(w, h), radius: radius}
}

func (p *pen) arrow(g frame.Geometry, c frame.Cell, d arrow.Direction) {
	start, shaft := g.Arrow(c, d)
	tip := start.Add(shaft)
	p.line(start, tip)
	for _, stroke := range g.Head(shaft) {
		p.line(tip, tip.Add(stroke))
	}
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// line adds a stroke from a to b with round caps.
func (p *pen) line(a, b vec.Vec2) {
	u := b.Sub(a)
	if l := u.Length(); l > 0 {
		u = u.Mul(p.radius / l)
	} else {
		u = vec.Vec2{X: p.radius}
	}
	n := vec.Vec2{X: -u.Y, Y: u.X}

	p.moveTo(a.Add(n))
	p.lineTo(b.Add(n))
	p.quarter(b, n, u)
	p.quarter(b, u, n.Mul(-1))
	p.lineTo(a.Sub(n))
	p.quarter(a, n.Mul(-1), u.Mul(-1))
	p.quarter(a, u.Mul(-1), n)
	p.r.ClosePath()
}

// quarter adds the quarter circle around c from c+x to c+y.
func (p *pen) quarter(c, x, y vec.Vec2) {
	c0 := c.Add(x).Add(y.Mul(kappa))
	c1 := c.Add(y).Add(x.Mul(kappa))
	end := c.Add(y)
	p.r.CubeTo(
		float32(c0.X), float32(c0.Y),
		float32(c1.X), float32(c1.Y),
		float32(end.X), float32(end.Y),
	)
}

func (p *pen) moveTo(v vec.Vec2) { p.r.MoveTo(float32(v.X), float32(v.Y)) }
func (p *pen) lineTo(v vec.Vec2) { p.r.LineTo(float32(v.X), float32(v.Y)) }
