package slide

import (
	"fmt"
	"strings"

	"github.com/ByLCY/slidemark/fonts"
	"github.com/ByLCY/slidemark/layout"
	"github.com/ByLCY/slidemark/markup"
)

const (
	blockGap     = 0.8 // gap between blocks, in body sizes
	headingScale = 0.75
	quoteScale   = 1.3
	authorScale  = 0.8
)

// Build lays out one slide. Titles and headings are balanced when they do
// not fit on one line; body copy is wrapped greedily, one block per
// paragraph ("\n\n"). Highlight colours cycle across all blocks of the
// slide. Blocks are stacked and centred vertically, never above the top
// padding.
func Build(s Slide, opts ...Option) (Frame, error) {
	o := s.inherit(applyOptions(opts...))
	if o.Width <= 0 || o.Height <= 0 {
		return Frame{}, fmt.Errorf("slide %d: 画布尺寸无效 %gx%g", s.Index+1, o.Width, o.Height)
	}
	if o.Metrics == nil {
		o.Metrics = fonts.NewMetrics()
	}

	c := &composer{opts: o, width: max(o.Width-2*o.Padding, 1)}
	var err error
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case KindTitle:
		err = c.title(s)
	case KindText:
		err = c.text(s)
	case KindQuote:
		err = c.quote(s)
	default:
		err = fmt.Errorf("未知的 slide 类型 %q", s.Kind)
	}
	if err != nil {
		return Frame{}, fmt.Errorf("slide %d: %w", s.Index+1, err)
	}
	c.stack()

	frame := Frame{
		Index:          s.Index,
		Kind:           strings.ToLower(s.Kind),
		Width:          o.Width,
		Height:         o.Height,
		Background:     o.Background,
		Image:          o.Image,
		Wavy:           o.Wavy,
		HighlightAlpha: o.HighlightAlpha,
		Seed:           o.Seed,
		Blocks:         c.blocks,
	}
	layout.Logger().Debug("slide: composed", "index", s.Index, "kind", frame.Kind, "blocks", len(c.blocks), "highlights", c.used)
	return frame, nil
}

// inherit overlays the slide's own style fields on o.
func (s Slide) inherit(o Options) Options {
	if s.Background != "" {
		o.Background = s.Background
	}
	if s.Image != "" {
		o.Image = s.Image
	}
	if s.Color != "" {
		o.Color = s.Color
	}
	if s.Align != "" {
		o.Align = layout.ParseAlign(s.Align)
	}
	if len(s.Palette) > 0 {
		o.Palette = s.Palette
	}
	if s.Wavy != nil {
		o.Wavy = *s.Wavy
	}
	return o
}

type composer struct {
	opts   Options
	width  float64
	blocks []Block
	used   int // highlights coloured so far
}

func (c *composer) title(s Slide) error {
	if strings.TrimSpace(s.Title) == "" {
		return missing("title")
	}
	c.add("title", s.Title, c.opts.TitleSize, true, layout.Balanced)
	if strings.TrimSpace(s.Subtitle) != "" {
		c.add("subtitle", s.Subtitle, c.opts.BodySize, false, layout.Greedy)
	}
	return nil
}

func (c *composer) text(s Slide) error {
	paragraphs := Paragraphs(s.Body)
	if len(paragraphs) == 0 {
		return missing("body")
	}
	if strings.TrimSpace(s.Heading) != "" {
		c.add("heading", s.Heading, c.opts.TitleSize*headingScale, true, layout.Balanced)
	}
	for _, p := range paragraphs {
		c.add("body", p, c.opts.BodySize, false, layout.Greedy)
	}
	return nil
}

func (c *composer) quote(s Slide) error {
	if strings.TrimSpace(s.Quote) == "" {
		return missing("quote")
	}
	c.add("quote", s.Quote, c.opts.BodySize*quoteScale, false, layout.Greedy)
	if strings.TrimSpace(s.Author) != "" {
		c.add("author", s.Author, c.opts.BodySize*authorScale, false, layout.Greedy)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("缺少 %s", field)
}

// add lays out one block. A balanced block whose lines already fit is
// wrapped greedily instead, so short titles stay on one line.
func (c *composer) add(role, text string, size float64, strong bool, strategy layout.Strategy) {
	doc := markup.Parse(text)
	f := layout.Font{Family: c.opts.Family, Size: size}
	if strong {
		f.Weight = "700"
	}
	if strategy == layout.Balanced && fits(c.opts.Metrics, f, doc.Text, c.width) {
		strategy = layout.Greedy
	}
	lines := layout.Layout(c.opts.Metrics, doc, layout.Options{
		Font:     f,
		MaxWidth: c.width,
		Strategy: strategy,
		Palette:  rotate(c.opts.Palette, c.used),
	})
	c.used += len(doc.Highlights)
	c.blocks = append(c.blocks, Block{
		Role:       role,
		Font:       f,
		Color:      c.opts.Color,
		Align:      c.opts.Align,
		X:          c.opts.Padding,
		Width:      c.width,
		LineHeight: size * c.opts.LineHeight,
		Lines:      lines,
	})
}

// stack places the blocks top to bottom, centred in the frame.
func (c *composer) stack() {
	gap := c.opts.BodySize * blockGap
	total := 0.0
	for i, b := range c.blocks {
		if i > 0 {
			total += gap
		}
		total += b.Height()
	}
	y := max((c.opts.Height-total)/2, c.opts.Padding)
	for i := range c.blocks {
		c.blocks[i].Y = y
		y += c.blocks[i].Height() + gap
	}
}

func fits(m layout.Metrics, f layout.Font, text string, width float64) bool {
	measure := layout.Measure(m, f.Descriptor(false, false))
	for _, piece := range strings.Split(text, "\n") {
		if measure(piece) > width {
			return false
		}
	}
	return true
}

// rotate starts the palette cycle at the n-th colour.
func rotate(palette []string, n int) []string {
	if len(palette) == 0 {
		return nil
	}
	k := n % len(palette)
	out := make([]string, 0, len(palette))
	out = append(out, palette[k:]...)
	return append(out, palette[:k]...)
}

// Paragraphs splits copy on blank lines ("\n\n"); surrounding whitespace
// of each paragraph is dropped, and so are empty paragraphs.
func Paragraphs(body string) []string {
	var out []string
	for _, p := range strings.Split(body, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
