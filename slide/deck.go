package slide

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/slidemark/binding"
	"github.com/ByLCY/slidemark/dsl"
	"github.com/ByLCY/slidemark/layout"
)

// Deck is a parsed deck file resolved against its data.
type Deck struct {
	Name    string
	Meta    Meta
	Options []Option // from the defaults section
	Slides  []Slide
}

// Decode turns the deck AST into slides. Strings are interpolated with data
// before any markup is parsed, so bound values may carry markup too.
func Decode(doc *dsl.Deck, data any) (*Deck, error) {
	if doc == nil {
		return nil, fmt.Errorf("deck 为空")
	}
	d := &Deck{Name: doc.Name, Meta: Meta{Title: doc.Name, Creator: "slidemark"}}
	for _, sec := range doc.Sections {
		switch {
		case sec.Meta != nil:
			d.Meta = decodeMeta(sec.Meta.Block, d.Meta, data)
		case sec.Defaults != nil:
			opt, err := decodeDefaults(sec.Defaults.Block, data)
			if err != nil {
				return nil, err
			}
			d.Options = append(d.Options, opt)
		case sec.Slide != nil:
			d.Slides = append(d.Slides, decodeSlide(sec.Slide, len(d.Slides), data))
		}
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck %s 中没有 slide", doc.Name)
	}
	return d, nil
}

// FromDeck decodes doc and builds every slide. opts are applied after the
// deck's own defaults.
func FromDeck(doc *dsl.Deck, data any, opts ...Option) ([]Frame, error) {
	d, err := Decode(doc, data)
	if err != nil {
		return nil, err
	}
	return d.Build(opts...)
}

// Build lays out every slide of the deck in order.
func (d *Deck) Build(opts ...Option) ([]Frame, error) {
	all := append(append([]Option(nil), d.Options...), opts...)
	frames := make([]Frame, 0, len(d.Slides))
	for _, s := range d.Slides {
		f, err := Build(s, all...)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func decodeMeta(b *dsl.Block, meta Meta, data any) Meta {
	str := func(key, fallback string) string {
		if v := b.Lookup(key); v != nil {
			return interpolate(v.Text(), data)
		}
		return fallback
	}
	meta.Title = str("title", meta.Title)
	meta.Subject = str("subject", meta.Subject)
	meta.Author = str("author", meta.Author)
	meta.Creator = str("creator", meta.Creator)
	if v := b.Lookup("keywords"); v != nil {
		meta.Keywords = nil
		for _, kw := range v.Strings() {
			meta.Keywords = append(meta.Keywords, interpolate(kw, data))
		}
	}
	return meta
}

func decodeSlide(sec *dsl.SlideSection, index int, data any) Slide {
	s := Slide{Index: index, Kind: sec.Kind}
	fields := map[string]*string{
		"title":      &s.Title,
		"subtitle":   &s.Subtitle,
		"heading":    &s.Heading,
		"body":       &s.Body,
		"quote":      &s.Quote,
		"author":     &s.Author,
		"background": &s.Background,
		"image":      &s.Image,
		"color":      &s.Color,
		"align":      &s.Align,
	}
	for _, a := range sec.Block.Assignments {
		if dst, ok := fields[a.Key]; ok {
			*dst = interpolate(a.Value.Text(), data)
			continue
		}
		switch a.Key {
		case "palette":
			s.Palette = a.Value.Strings()
		case "wavy":
			wavy := parseBool(a.Value.Text())
			s.Wavy = &wavy
		default:
			layout.Logger().Debug("slide: 忽略未知属性", "slide", index+1, "key", a.Key, "line", a.Pos.Line)
		}
	}
	return s
}

// settings is a parsed defaults section; nil fields are unset.
type settings struct {
	width, height, titleSize, bodySize, lineHeight, alpha *float64
	padding                                               string
	family, color, background, image, align               *string
	palette                                               []string
	wavy                                                  *bool
	seed                                                  *uint64
}

func decodeDefaults(b *dsl.Block, data any) (Option, error) {
	var st settings
	for _, a := range b.Assignments {
		text := interpolate(a.Value.Text(), data)
		num := func(dst **float64) error {
			v, err := parseLength(text)
			if err != nil {
				return fmt.Errorf("defaults.%s (%d:%d): %w", a.Key, a.Pos.Line, a.Pos.Column, err)
			}
			*dst = &v
			return nil
		}
		var err error
		switch a.Key {
		case "width":
			err = num(&st.width)
		case "height":
			err = num(&st.height)
		case "size":
			dims := a.Value.Strings()
			if len(dims) != 2 {
				return nil, fmt.Errorf("defaults.size (%d:%d): 需要 [宽, 高]", a.Pos.Line, a.Pos.Column)
			}
			text = dims[0]
			if err = num(&st.width); err == nil {
				text = dims[1]
				err = num(&st.height)
			}
		case "padding":
			st.padding = text
			if _, err = parseDimension(text, 1); err != nil {
				err = fmt.Errorf("defaults.padding (%d:%d): %w", a.Pos.Line, a.Pos.Column, err)
			}
		case "title-size":
			err = num(&st.titleSize)
		case "body-size":
			err = num(&st.bodySize)
		case "line-height":
			err = num(&st.lineHeight)
		case "highlight-alpha":
			err = num(&st.alpha)
		case "font":
			st.family = &text
		case "color":
			st.color = &text
		case "background":
			st.background = &text
		case "image":
			st.image = &text
		case "align":
			st.align = &text
		case "palette":
			st.palette = a.Value.Strings()
		case "wavy":
			v := parseBool(text)
			st.wavy = &v
		case "seed":
			v, perr := strconv.ParseUint(text, 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("defaults.seed (%d:%d): %w", a.Pos.Line, a.Pos.Column, perr)
			}
			st.seed = &v
		default:
			layout.Logger().Debug("slide: 忽略未知默认设置", "key", a.Key, "line", a.Pos.Line)
		}
		if err != nil {
			return nil, err
		}
	}
	return st.apply, nil
}

// apply sets the frame size first so a percentage padding resolves
// against the final width.
func (st settings) apply(o *Options) {
	setF := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setS := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setF(&o.Width, st.width)
	setF(&o.Height, st.height)
	if st.padding != "" {
		o.Padding, _ = parseDimension(st.padding, o.Width)
	}
	setF(&o.TitleSize, st.titleSize)
	setF(&o.BodySize, st.bodySize)
	setF(&o.LineHeight, st.lineHeight)
	setF(&o.HighlightAlpha, st.alpha)
	setS(&o.Family, st.family)
	setS(&o.Color, st.color)
	setS(&o.Background, st.background)
	setS(&o.Image, st.image)
	if st.align != nil {
		o.Align = layout.ParseAlign(*st.align)
	}
	if len(st.palette) > 0 {
		o.Palette = append([]string(nil), st.palette...)
	}
	if st.wavy != nil {
		o.Wavy = *st.wavy
	}
	if st.seed != nil {
		o.Seed = *st.seed
	}
}

func interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	for _, path := range binding.Unresolved(text, data) {
		layout.Logger().Debug("slide: 数据路径不存在", "path", path)
	}
	return binding.Interpolate(text, data)
}

// parseLength reads "48", "48px" or "36pt" as px.
func parseLength(value string) (float64, error) {
	l, err := layout.ParseLength(value)
	if err != nil {
		return 0, err
	}
	if l.Unit == layout.UnitPercent {
		return 0, fmt.Errorf("此处不支持百分比 %q", value)
	}
	return l.PX(0), nil
}

// parseDimension also accepts a percentage of reference.
func parseDimension(value string, reference float64) (float64, error) {
	l, err := layout.ParseLength(value)
	if err != nil {
		return 0, err
	}
	return l.PX(reference), nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}
