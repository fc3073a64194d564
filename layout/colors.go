package layout

// DefaultHighlightColor is used when no palette is supplied.
const DefaultHighlightColor = "#FFE45C"

// AssignColors gives every span a colour from palette in first-seen order,
// cycling when the palette runs out. A span that already has a colour keeps
// it but still takes its turn in the cycle. spans must be in document order,
// as LocateHighlights returns them.
func AssignColors(spans []Span, palette []string) []Span {
	if len(palette) == 0 {
		palette = []string{DefaultHighlightColor}
	}
	out := make([]Span, len(spans))
	for i, sp := range spans {
		if sp.Color == "" {
			sp.Color = palette[i%len(palette)]
		}
		out[i] = sp
	}
	return out
}
