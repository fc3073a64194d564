package layout

// TextMetrics is what a Metrics provider reports for one string.
type TextMetrics struct {
	Width float64 `json:"width"`
}

// Metrics measures text under a current font. The font is state: every
// measurement in this package is preceded by its own SetFont call, never
// relying on a font set earlier.
type Metrics interface {
	SetFont(descriptor string)
	MeasureText(s string) TextMetrics
}

// MeasureFunc returns the rendered width of s under a fixed font.
type MeasureFunc func(s string) float64

// Measure binds m to one font descriptor.
func Measure(m Metrics, descriptor string) MeasureFunc {
	return func(s string) float64 {
		m.SetFont(descriptor)
		return m.MeasureText(s).Width
	}
}
