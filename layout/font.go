package layout

import (
	"strconv"
	"strings"
)

// DefaultFamily is the family list used when a Font names none.
const DefaultFamily = "Go, sans-serif"

// Font describes the typeface of one text block and builds the descriptors
// ("[style] [weight] <size>px <family>[, <family>...]") handed to Metrics and
// Surface implementations.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`             // px
	Weight string  `json:"weight,omitempty"` // plain weight, e.g. "500"

	raw string
}

// RawFont wraps an opaque descriptor. Only its pixel size is read; style
// variants are produced by prefixing the descriptor.
func RawFont(descriptor string) Font {
	return Font{Size: FontSize(descriptor), raw: descriptor}
}

// Descriptor returns the descriptor for one emphasis variant.
func (f Font) Descriptor(bold, italic bool) string {
	var parts []string
	if italic {
		parts = append(parts, "italic")
	}
	if f.raw != "" {
		if bold {
			parts = append(parts, "bold")
		}
		return strings.Join(append(parts, f.raw), " ")
	}
	switch {
	case bold:
		parts = append(parts, "bold")
	case f.Weight != "":
		parts = append(parts, f.Weight)
	}
	family := f.Family
	if family == "" {
		family = DefaultFamily
	}
	parts = append(parts, strconv.FormatFloat(f.Size, 'f', -1, 64)+"px", family)
	return strings.Join(parts, " ")
}

// PixelSize returns the font size in px, falling back to the size found in
// the raw descriptor.
func (f Font) PixelSize() float64 {
	if f.Size > 0 {
		return f.Size
	}
	return FontSize(f.raw)
}

// WithSize returns a copy of f at another size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	if f.raw != "" {
		f.raw = replaceSize(f.raw, size)
	}
	return f
}

// FontSize extracts the first "<number>px" token of a descriptor, or 0.
func FontSize(descriptor string) float64 {
	for _, field := range strings.Fields(descriptor) {
		if v, ok := pxValue(field); ok {
			return v
		}
	}
	return 0
}

func pxValue(field string) (float64, bool) {
	num, ok := strings.CutSuffix(strings.ToLower(field), "px")
	if !ok || num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func replaceSize(descriptor string, size float64) string {
	fields := strings.Fields(descriptor)
	for i, field := range fields {
		if _, ok := pxValue(field); ok {
			fields[i] = strconv.FormatFloat(size, 'f', -1, 64) + "px"
			return strings.Join(fields, " ")
		}
	}
	return descriptor
}
