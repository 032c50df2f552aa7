// Package term draws a frame as text. Every letter occupies a 3×3 block of
// character cells with the letter in the middle and an arrow glyph in each
// of the eight surrounding positions that carries an arrow.
package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/strands/arrow"
	"github.com/iw2rmb/strands/frame"
	"github.com/iw2rmb/strands/internal/grapheme"
)

var glyphs = [arrow.Count]string{"↖", "↑", "↗", "←", "→", "↙", "↓", "↘"}

type Options struct {
	// Renderer defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
	// Plain disables all styling.
	Plain bool
	// Cold and Hot are the arrow colours at the weakest and strongest
	// strength in the frame. Zero values select a blue to orange ramp.
	Cold, Hot colorful.Color
	// Steps quantises the ramp so that styles can be reused. 0 means 16.
	Steps int
}

func (o Options) withDefaults() Options {
	if o.Renderer == nil {
		o.Renderer = lipgloss.DefaultRenderer()
	}
	if o.Cold == (colorful.Color{}) && o.Hot == (colorful.Color{}) {
		o.Cold, _ = colorful.Hex("#3b6fd4")
		o.Hot, _ = colorful.Hex("#f2a33a")
	}
	if o.Steps <= 0 {
		o.Steps = 16
	}
	return o
}

type painter struct {
	opt    Options
	letter lipgloss.Style
	ramp   []lipgloss.Style
	peak   float64
}

func newPainter(opt Options, peak float64) *painter {
	p := &painter{opt: opt, peak: peak}
	if opt.Plain {
		return p
	}
	p.letter = opt.Renderer.NewStyle().Bold(true)
	p.ramp = make([]lipgloss.Style, opt.Steps)
	for i := range p.ramp {
		t := float64(i) / float64(max(opt.Steps-1, 1))
		c := opt.Cold.BlendHcl(opt.Hot, t).Clamped()
		p.ramp[i] = opt.Renderer.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return p
}

// arrow pads the glyph of d to width cells before styling it.
func (p *painter) arrow(d arrow.Direction, strength float64, width int) string {
	s := grapheme.Pad(glyphs[d], width)
	if p.opt.Plain {
		return s
	}
	t := 1.0
	if p.peak > 0 {
		t = min(max(strength/p.peak, 0), 1)
	}
	return p.ramp[int(t*float64(len(p.ramp)-1)+0.5)].Render(s)
}

func (p *painter) glyph(r rune, width int) string {
	s := grapheme.Pad(string(r), width)
	if p.opt.Plain {
		return s
	}
	return p.letter.Render(s)
}

// Render draws f. Each document line becomes three text rows, so line i of
// the document starts at row 3i of the output. Lines without letters render
// as blank rows.
func Render(f frame.Frame, opt Options) string {
	opt = opt.withDefaults()
	p := newPainter(opt, f.Peak)

	// Every letter column is as wide as the widest letter in the frame.
	width := 1
	for _, c := range f.Cells {
		width = max(width, grapheme.Width(string(c.Letter)))
	}
	pad := strings.Repeat(" ", width)

	rows := make([]string, 0, 3*f.Lines)
	for line := range f.Lines {
		cells := f.Line(line)
		var block [3]strings.Builder
		for _, c := range cells {
			for d := range arrow.Directions() {
				dx, dy := d.Offset()
				b := &block[dy+1]
				if dx == 1 && dy == 0 {
					b.WriteString(p.glyph(c.Letter, width))
				}
				w := 1
				if dx == 0 {
					w = width
				}
				if c.Arrows.Has(d) {
					b.WriteString(p.arrow(d, c.Strength[d], w))
				} else {
					b.WriteString(pad[:w])
				}
			}
		}
		for i := range block {
			rows = append(rows, strings.TrimRight(block[i].String(), " "))
		}
	}
	return strings.Join(rows, "\n")
}
