package layout_test

import (
	"fmt"
	"strings"

	"github.com/ByLCY/slidemark/layout"
)

// monoMetrics advances every byte by half the font size, or 0.6 of it when
// the descriptor asks for bold.
type monoMetrics struct {
	font string
	sets int
}

func (m *monoMetrics) SetFont(descriptor string) {
	m.font = descriptor
	m.sets++
}

func (m *monoMetrics) MeasureText(s string) layout.TextMetrics {
	size := layout.FontSize(m.font)
	if size == 0 {
		size = 20
	}
	advance := size / 2
	if strings.Contains(m.font, "bold") {
		advance = size * 0.6
	}
	return layout.TextMetrics{Width: advance * float64(len(s))}
}

// perByte measures 10px per byte regardless of font.
func perByte(s string) float64 { return 10 * float64(len(s)) }

// recordingSurface logs every call for ordering assertions.
type recordingSurface struct {
	monoMetrics
	calls []string
}

func (r *recordingSurface) SetFont(descriptor string) {
	r.monoMetrics.SetFont(descriptor)
	r.calls = append(r.calls, "font:"+descriptor)
}

func (r *recordingSurface) SetFillStyle(color string) {
	r.calls = append(r.calls, "fill:"+color)
}

func (r *recordingSurface) SetGlobalAlpha(alpha float64) {
	r.calls = append(r.calls, fmt.Sprintf("alpha:%g", alpha))
}

func (r *recordingSurface) FillText(s string, x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("text:%s@%g,%g", s, x, y))
}

func (r *recordingSurface) FillRect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("rect:%g,%g,%g,%g", x, y, w, h))
}

func (r *recordingSurface) FillPath(p layout.Path) {
	r.calls = append(r.calls, fmt.Sprintf("path:%d", len(p)))
}

func (r *recordingSurface) indexOf(prefix string) []int {
	var out []int
	for i, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, i)
		}
	}
	return out
}
