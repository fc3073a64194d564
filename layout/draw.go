package layout

import (
	"math"
	"math/rand/v2"
	"strings"
)

// Surface is a stateful drawing target. Fill style, alpha and font persist
// between calls; DrawLine sets each one before it relies on it.
type Surface interface {
	Metrics
	SetFillStyle(color string)
	SetGlobalAlpha(alpha float64)
	FillText(s string, x, y float64)
	FillRect(x, y, w, h float64)
	FillPath(p Path)
}

// Align is the horizontal placement of a line inside its box.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign accepts left/center/middle/right/end; anything else is left.
func ParseAlign(v string) Align {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "center", "middle":
		return AlignCenter
	case "right", "end":
		return AlignRight
	default:
		return AlignLeft
	}
}

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(b []byte) error {
	*a = ParseAlign(string(b))
	return nil
}

// Offset returns the x offset of a line of width inside container.
func (a Align) Offset(container, width float64) float64 {
	if container <= width {
		return 0
	}
	switch a {
	case AlignCenter:
		return (container - width) / 2
	case AlignRight:
		return container - width
	default:
		return 0
	}
}

// DrawStyle configures DrawLine.
type DrawStyle struct {
	Color          string  // text colour
	HighlightAlpha float64 // 0 means opaque
	Wavy           bool
	Rand           *rand.Rand // wave phase source; nil draws every wave at phase 0
}

func (s DrawStyle) phase() float64 {
	if s.Rand == nil {
		return 0
	}
	return s.Rand.Float64() * 2 * math.Pi
}

// DrawLine paints one line whose left edge is x: first every highlight
// underlay, then the runs left to right on one baseline.
func DrawLine(s Surface, f Font, line Line, x, baseline float64, style DrawStyle) {
	alpha := style.HighlightAlpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	for _, sp := range line.Highlights {
		r := HighlightRect(s, f, line, sp, x, baseline, HighlightPadX)
		s.SetFillStyle(sp.Color)
		s.SetGlobalAlpha(alpha)
		if style.Wavy {
			s.FillPath(WavyHighlightPath(r, style.phase()))
		} else {
			s.FillRect(r.X, r.Y, r.Width, r.Height)
		}
	}

	s.SetGlobalAlpha(1)
	s.SetFillStyle(style.Color)
	cursor := x
	for _, run := range line.Runs {
		s.SetFont(f.Descriptor(run.Bold, run.Italic))
		width := s.MeasureText(run.Text).Width
		s.FillText(run.Text, cursor, baseline)
		cursor += width
	}
}
