package slide

import (
	"math/rand/v2"

	"github.com/ByLCY/slidemark/layout"
)

// Draw paints the text of f on s, block by block. Backgrounds are the
// surface owner's job. Wave phases come from a generator seeded with the
// frame seed and index, so a frame always draws the same way.
func Draw(s layout.Surface, f Frame) {
	rng := rand.New(rand.NewPCG(f.Seed, uint64(f.Index)))
	style := layout.DrawStyle{
		HighlightAlpha: f.HighlightAlpha,
		Wavy:           f.Wavy,
		Rand:           rng,
	}
	for _, b := range f.Blocks {
		style.Color = b.Color
		size := b.Font.PixelSize()
		for i, line := range b.Lines {
			top := b.Y + float64(i)*b.LineHeight
			x := b.X + b.Align.Offset(b.Width, line.Width)
			layout.DrawLine(s, b.Font, line, x, Baseline(top, b.LineHeight, size), style)
		}
	}
}

// Baseline returns the baseline of a line box starting at top. The glyphs
// are centred in the box and the baseline sits BaselineFraction of the
// font size below the glyph top, which is where highlights start.
func Baseline(top, lineHeight, size float64) float64 {
	return top + (lineHeight-size)/2 + size*layout.BaselineFraction
}
