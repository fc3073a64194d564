package slide

import "github.com/ByLCY/slidemark/layout"

// Options holds the deck-wide settings a slide inherits.
type Options struct {
	Width          float64 // px
	Height         float64 // px
	Padding        float64 // px
	Family         string
	TitleSize      float64 // px
	BodySize       float64 // px
	LineHeight     float64 // multiple of the font size
	Color          string
	Background     string
	Image          string
	Palette        []string
	Align          layout.Align
	Wavy           bool
	HighlightAlpha float64
	Seed           uint64
	Metrics        layout.Metrics // nil uses fonts.NewMetrics
}

// Option is a function that configures Options.
type Option func(*Options)

// WithMetrics sets the text measurer. It should measure the way the target
// surface draws, so pass the renderer's own metrics when rendering.
func WithMetrics(m layout.Metrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithPalette sets the highlight colours, cycled in order of appearance.
func WithPalette(colors ...string) Option {
	return func(opts *Options) {
		opts.Palette = append([]string(nil), colors...)
	}
}

// WithSeed sets the seed of the wavy highlight phases.
func WithSeed(seed uint64) Option {
	return func(opts *Options) {
		opts.Seed = seed
	}
}

// WithSize sets the frame size in px.
func WithSize(width, height float64) Option {
	return func(opts *Options) {
		opts.Width, opts.Height = width, height
	}
}

// WithFamily sets the font family list, e.g. "Inter, sans-serif".
func WithFamily(family string) Option {
	return func(opts *Options) {
		opts.Family = family
	}
}

// WithWavy switches every highlight to the wavy outline.
func WithWavy(enable bool) Option {
	return func(opts *Options) {
		opts.Wavy = enable
	}
}

// DefaultOptions returns the settings of a 1080×1350 portrait carousel.
func DefaultOptions() Options {
	return Options{
		Width:      1080,
		Height:     1350,
		Padding:    96,
		Family:     layout.DefaultFamily,
		TitleSize:  72,
		BodySize:   40,
		LineHeight: 1.3,
		Color:      "#111111",
		Background: "#FFFFFF",
		Palette:    []string{layout.DefaultHighlightColor},
		Align:      layout.AlignLeft,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}
