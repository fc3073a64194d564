package layout

import "github.com/ByLCY/slidemark/markup"

// Line is one wrapped line ready to draw. Offsets in Runs and Highlights
// index Text.
type Line struct {
	Text       string  `json:"text"`
	Offset     int     `json:"offset"` // byte offset of Text in the clean text
	Width      float64 `json:"width"`
	Runs       []Run   `json:"runs"`
	Highlights []Span  `json:"highlights,omitempty"`
}

// Run is a maximal range of a line with one (bold, italic) pair.
type Run struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Segments returns the line's runs as emphasis segments.
func (l Line) Segments() []markup.Segment {
	out := make([]markup.Segment, 0, len(l.Runs))
	for _, r := range l.Runs {
		out = append(out, markup.Segment{Text: r.Text, Bold: r.Bold, Italic: r.Italic})
	}
	return out
}

// Rect is an axis-aligned rectangle in device pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
