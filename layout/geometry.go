package layout

import "math"

// Highlight geometry constants. They were tuned by eye for one sans family
// at title sizes and are not derived from font metrics; other faces may need
// different values.
const (
	// HighlightPadX is the horizontal padding around a highlighted phrase.
	HighlightPadX = 10.0
	// BaselineFraction places the highlight top at baseline - size*0.85,
	// roughly the cap height.
	BaselineFraction = 0.85
)

// Wavy highlight shape.
const (
	WaveAmplitude   = 1.5
	WaveLength      = 24.0
	waveStep        = 4.0
	maxCornerRadius = 8.0
)

// HighlightRect computes the background rectangle of span on a line drawn
// from x with its baseline at baseline. Widths are measured run by run under
// each run's font; half a space (plain font) is taken off the left edge to
// cancel the trailing-space bleed of the preceding word.
func HighlightRect(m Metrics, f Font, line Line, span Span, x, baseline, padX float64) Rect {
	prefix := measureRange(m, f, line, 0, span.Start)
	width := measureRange(m, f, line, span.Start, span.End)
	m.SetFont(f.Descriptor(false, false))
	halfSpace := m.MeasureText(" ").Width / 2
	size := f.PixelSize()
	return Rect{
		X:      x + prefix - padX + halfSpace,
		Y:      baseline - size*BaselineFraction,
		Width:  width + 2*padX - halfSpace,
		Height: size,
	}
}

// PathVerb is a path construction command.
type PathVerb uint8

const (
	MoveTo PathVerb = iota
	LineTo
	QuadTo
	ClosePath
)

// PathOp is one path command. CX/CY are the control point of QuadTo.
type PathOp struct {
	Verb PathVerb `json:"verb"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	CX   float64  `json:"cx,omitempty"`
	CY   float64  `json:"cy,omitempty"`
}

// Path is a sequence of absolute path commands.
type Path []PathOp

func (p *Path) moveTo(x, y float64) { *p = append(*p, PathOp{Verb: MoveTo, X: x, Y: y}) }
func (p *Path) lineTo(x, y float64) { *p = append(*p, PathOp{Verb: LineTo, X: x, Y: y}) }
func (p *Path) quadTo(cx, cy, x, y float64) {
	*p = append(*p, PathOp{Verb: QuadTo, X: x, Y: y, CX: cx, CY: cy})
}
func (p *Path) close() { *p = append(*p, PathOp{Verb: ClosePath}) }

// WavyHighlightPath outlines r with sine-wave top and bottom edges and
// quadratic rounded corners. phase shifts the wave (radians). The path may
// leave r by up to WaveAmplitude; r itself is what layout uses.
func WavyHighlightPath(r Rect, phase float64) Path {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	radius := math.Min(maxCornerRadius, math.Min(r.Height, r.Width)/4)
	left, right := r.X, r.X+r.Width
	top, bottom := r.Y, r.Y+r.Height
	x0, x1 := left+radius, right-radius

	wave := func(edge, x, shift float64) float64 {
		return edge + WaveAmplitude*math.Sin(2*math.Pi*(x-left)/WaveLength+phase+shift)
	}
	upper := func(x float64) float64 { return wave(top, x, 0) }
	lower := func(x float64) float64 { return wave(bottom, x, math.Pi/2) }

	var p Path
	p.moveTo(x0, upper(x0))
	for x := x0 + waveStep; x < x1; x += waveStep {
		p.lineTo(x, upper(x))
	}
	p.lineTo(x1, upper(x1))
	p.quadTo(right, top, right, top+radius)
	p.lineTo(right, bottom-radius)
	p.quadTo(right, bottom, x1, lower(x1))
	for x := x1 - waveStep; x > x0; x -= waveStep {
		p.lineTo(x, lower(x))
	}
	p.lineTo(x0, lower(x0))
	p.quadTo(left, bottom, left, bottom-radius)
	p.lineTo(left, top+radius)
	p.quadTo(left, top, x0, upper(x0))
	p.close()
	return p
}
