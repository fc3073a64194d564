// Package slide composes slides from marked-up copy: it picks a recipe per
// slide kind, lays every text block out with the layout package and stacks
// the blocks into a Frame that any layout.Surface can paint.
package slide

import "github.com/ByLCY/slidemark/layout"

// Slide kinds.
const (
	KindTitle = "title"
	KindText  = "text"
	KindQuote = "quote"
)

// Slide is the source of one frame. Copy fields may contain <mark>, *bold*
// and _italic_ markup. Empty style fields inherit from Options.
type Slide struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`

	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Heading  string `json:"heading,omitempty"`
	Body     string `json:"body,omitempty"`
	Quote    string `json:"quote,omitempty"`
	Author   string `json:"author,omitempty"`

	Background string   `json:"background,omitempty"`
	Image      string   `json:"image,omitempty"`
	Color      string   `json:"color,omitempty"`
	Align      string   `json:"align,omitempty"`
	Palette    []string `json:"palette,omitempty"`
	Wavy       *bool    `json:"wavy,omitempty"`
}

// Frame is a laid-out slide in device pixels.
type Frame struct {
	Index          int     `json:"index"`
	Kind           string  `json:"kind"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Background     string  `json:"background"`
	Image          string  `json:"image,omitempty"`
	Wavy           bool    `json:"wavy,omitempty"`
	HighlightAlpha float64 `json:"highlightAlpha,omitempty"`
	Seed           uint64  `json:"seed,omitempty"`
	Blocks         []Block `json:"blocks"`
}

// Block is one text box of a frame. Lines are stacked LineHeight apart
// from Y and aligned inside [X, X+Width].
type Block struct {
	Role       string        `json:"role"`
	Font       layout.Font   `json:"font"`
	Color      string        `json:"color"`
	Align      layout.Align  `json:"align"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Width      float64       `json:"width"`
	LineHeight float64       `json:"lineHeight"`
	Lines      []layout.Line `json:"lines"`
}

// Height is the vertical extent of the block.
func (b Block) Height() float64 { return float64(len(b.Lines)) * b.LineHeight }

// Meta is document metadata carried into multi-page outputs.
type Meta struct {
	Title    string   `json:"title,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Author   string   `json:"author,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Creator  string   `json:"creator,omitempty"`
}
