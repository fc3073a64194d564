package canvasrenderer

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/colornames"
)

var transparent = color.RGBA{0, 0, 0, 0}

// parseColor accepts #RGB, #RRGGBB, #RRGGBBAA and the SVG colour names.
func parseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	name := strings.ToLower(value)
	if name == "transparent" {
		return transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(value, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// withAlpha scales the opacity of c (straight alpha) by alpha and returns
// the premultiplied colour canvas expects.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	return canvas.RGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255*alpha)
}
