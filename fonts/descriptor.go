package fonts

import (
	"strconv"
	"strings"

	"github.com/ByLCY/slidemark/layout"
)

// DefaultSize is the pixel size assumed when a descriptor carries none.
const DefaultSize = 16.0

// Descriptor is a parsed "[style] [weight] <size>px <family>[, ...]" string.
type Descriptor struct {
	Italic   bool
	Bold     bool
	Weight   int // numeric weight when given, else 400 or 700
	Size     float64
	Families []string
}

// Style returns the variant the descriptor asks for.
func (d Descriptor) Style() Style { return StyleOf(d.Bold, d.Italic) }

// ParseDescriptor reads a font descriptor leniently. Unknown tokens before
// the size are ignored; a weight of 600 or more counts as bold. Generic
// family names are kept so callers can map them.
func ParseDescriptor(desc string) Descriptor {
	d := Descriptor{Weight: 400, Size: DefaultSize}
	fields := strings.Fields(desc)
	rest := -1
	for i, field := range fields {
		lower := strings.ToLower(field)
		if size, ok := parseSize(lower); ok {
			d.Size = size
			rest = i + 1
			break
		}
		switch lower {
		case "italic", "oblique":
			d.Italic = true
		case "bold", "bolder":
			d.Bold = true
			d.Weight = max(d.Weight, 700)
		default:
			if w, err := strconv.Atoi(lower); err == nil && w >= 1 && w <= 1000 {
				d.Weight = w
				if w >= 600 {
					d.Bold = true
				}
			}
		}
	}
	if rest >= 0 {
		for _, name := range strings.Split(strings.Join(fields[rest:], " "), ",") {
			name = strings.Trim(strings.TrimSpace(name), `"'`)
			if name != "" {
				d.Families = append(d.Families, name)
			}
		}
	}
	if len(d.Families) == 0 {
		d.Families = []string{"sans-serif"}
	}
	return d
}

// parseSize accepts "48px", "36pt" and "48px/1.2".
func parseSize(field string) (float64, bool) {
	field, _, _ = strings.Cut(field, "/")
	if !strings.HasSuffix(field, "px") && !strings.HasSuffix(field, "pt") {
		return 0, false
	}
	l, err := layout.ParseLength(field)
	if err != nil || l.Value <= 0 {
		return 0, false
	}
	return l.PX(0), true
}

// IsGeneric reports whether name is a CSS generic family, which the built-in
// Go family stands in for.
func IsGeneric(name string) bool {
	switch strings.ToLower(name) {
	case "sans-serif", "serif", "monospace", "system-ui", "ui-sans-serif", "cursive", "fantasy":
		return true
	}
	return false
}
