package canvasrenderer

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/slidemark/fonts"
	"github.com/ByLCY/slidemark/layout"
)

// ptPerPx converts a pixel font size to the point size canvas expects, with
// one canvas unit (nominally 1 mm) standing for one pixel.
const ptPerPx = 72 / 25.4

// Surface is a layout.Surface over a canvas context. Without a context it
// only measures.
type Surface struct {
	r     *Renderer
	ctx   *canvas.Context
	font  fonts.Descriptor
	entry *fontFamilyEntry
	fill  color.RGBA
	alpha float64
}

var _ layout.Surface = (*Surface)(nil)

func (r *Renderer) newSurface(ctx *canvas.Context) *Surface {
	s := &Surface{r: r, ctx: ctx, fill: color.RGBA{A: 255}, alpha: 1}
	s.SetFont("")
	return s
}

// SetFont selects the family and variant for following calls.
func (s *Surface) SetFont(descriptor string) {
	s.font = fonts.ParseDescriptor(descriptor)
	s.entry = s.r.fontFamily(s.font.Families)
}

// MeasureText returns the advance width of str in px.
func (s *Surface) MeasureText(str string) layout.TextMetrics {
	if str == "" {
		return layout.TextMetrics{}
	}
	return layout.TextMetrics{Width: s.face(color.Black).TextWidth(str)}
}

// SetFillStyle sets the colour of following fills. Unparseable colours
// fall back to black.
func (s *Surface) SetFillStyle(c string) {
	col, err := parseColor(c)
	if err != nil {
		layout.Logger().Debug("canvas: 无法解析颜色，使用黑色", "color", c, "error", err)
		col = color.RGBA{A: 255}
	}
	s.fill = col
}

// SetGlobalAlpha sets the opacity of following fills.
func (s *Surface) SetGlobalAlpha(alpha float64) {
	s.alpha = min(max(alpha, 0), 1)
}

// FillText draws str with its baseline at y.
func (s *Surface) FillText(str string, x, y float64) {
	if s.ctx == nil || str == "" {
		return
	}
	s.ctx.DrawText(x, y, canvas.NewTextLine(s.face(s.color()), str, canvas.Left))
}

// FillRect fills an axis-aligned rectangle with its top-left corner at x, y.
func (s *Surface) FillRect(x, y, w, h float64) {
	if s.ctx == nil || w <= 0 || h <= 0 {
		return
	}
	s.ctx.SetFillColor(s.color())
	s.ctx.SetStrokeColor(transparent)
	s.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// FillPath fills a closed path given in absolute coordinates.
func (s *Surface) FillPath(p layout.Path) {
	if s.ctx == nil || len(p) == 0 {
		return
	}
	s.ctx.SetFillColor(s.color())
	s.ctx.SetStrokeColor(transparent)
	s.ctx.DrawPath(0, 0, toCanvasPath(p))
}

func (s *Surface) color() color.RGBA {
	return withAlpha(s.fill, s.alpha)
}

// face builds a font face for the current font. A variant the family lacks
// degrades to bold, then regular.
func (s *Surface) face(col color.Color) *canvas.FontFace {
	style := canvas.FontRegular
	if s.font.Bold {
		style = canvas.FontBold
	}
	if s.font.Italic {
		style |= canvas.FontItalic
	}
	if !s.entry.styles[style] {
		if s.entry.styles[style&^canvas.FontItalic] {
			style &^= canvas.FontItalic
		} else {
			style = canvas.FontRegular
		}
	}
	return s.entry.family.Face(s.font.Size*ptPerPx, col, style, canvas.FontNormal)
}

func toCanvasPath(p layout.Path) *canvas.Path {
	out := &canvas.Path{}
	for _, op := range p {
		switch op.Verb {
		case layout.MoveTo:
			out.MoveTo(op.X, op.Y)
		case layout.LineTo:
			out.LineTo(op.X, op.Y)
		case layout.QuadTo:
			out.QuadTo(op.CX, op.CY, op.X, op.Y)
		case layout.ClosePath:
			out.Close()
		}
	}
	return out
}
