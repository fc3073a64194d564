package layout

import (
	"strings"

	"github.com/ByLCY/slidemark/markup"
)

// Options configures Layout.
type Options struct {
	Font     Font
	MaxWidth float64
	Strategy Strategy
	Palette  []string
}

// Layout wraps a parsed document into decorated lines. Every "\n" starts a
// new line; each piece between them is wrapped on its own with the chosen
// strategy, measured with the plain font. Highlights are coloured from the
// palette and, with the emphasis segments, relocated onto the lines in one
// pass over the whole text.
//
// Line.Width sums each run under its own variant, so a line with bold or
// italic runs may be wider than MaxWidth even though it fit while wrapping.
func Layout(m Metrics, doc markup.Document, opts Options) []Line {
	measure := Measure(m, opts.Font.Descriptor(false, false))
	var wrapped []string
	for _, piece := range strings.Split(doc.Text, "\n") {
		switch opts.Strategy {
		case Balanced:
			wrapped = append(wrapped, BalancedWrapText(measure, piece, opts.MaxWidth)...)
		default:
			wrapped = append(wrapped, WrapText(measure, Words(piece), opts.MaxWidth)...)
		}
	}
	spans := AssignColors(LocateHighlights(doc.Text, doc.Highlights), opts.Palette)
	lines := Relocate(doc.Text, wrapped, spans, doc.Segments)
	for i := range lines {
		lines[i].Width = MeasureLine(m, opts.Font, lines[i])
	}
	return lines
}
