package fonts

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/ByLCY/slidemark/layout"
)

// Metrics measures text with real font outlines and no drawing surface.
// It implements layout.Metrics. The built-in Go family is always
// registered; other families are added with Register.
//
// Methods are safe for concurrent use, but the current font is shared, so
// each goroutine that lays text out should own its Metrics.
type Metrics struct {
	mu       sync.Mutex
	families map[string]*[4]*opentype.Font // keyed by lower-case name
	faces    map[faceKey]font.Face
	current  Descriptor
}

type faceKey struct {
	family string
	style  Style
	size   float64
}

var _ layout.Metrics = (*Metrics)(nil)

// NewMetrics returns a Metrics with the built-in family loaded.
func NewMetrics() *Metrics {
	m := &Metrics{
		families: map[string]*[4]*opentype.Font{},
		faces:    map[faceKey]font.Face{},
		current:  ParseDescriptor(""),
	}
	for _, style := range []Style{Regular, Bold, Italic, BoldItalic} {
		if err := m.Register(Family, style, Builtin(style)); err != nil {
			panic(fmt.Sprintf("fonts: 内置字体解析失败: %v", err))
		}
	}
	return m
}

// Register parses ttf and adds it as one variant of family.
func (m *Metrics) Register(family string, style Style, ttf []byte) error {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("解析字体 %s (%s) 失败: %w", family, style, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(family)
	set, ok := m.families[key]
	if !ok {
		set = &[4]*opentype.Font{}
		m.families[key] = set
	}
	set[style] = f
	for k := range m.faces {
		if k.family == key {
			delete(m.faces, k)
		}
	}
	return nil
}

// SetFont selects the font for following measurements.
func (m *Metrics) SetFont(descriptor string) {
	d := ParseDescriptor(descriptor)
	m.mu.Lock()
	m.current = d
	m.mu.Unlock()
}

// MeasureText returns the advance width of s in px under the current font.
func (m *Metrics) MeasureText(s string) layout.TextMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == "" {
		return layout.TextMetrics{}
	}
	face, err := m.face(m.current)
	if err != nil {
		layout.Logger().Debug("fonts: 创建字体面失败", "error", err)
		return layout.TextMetrics{}
	}
	adv := font.MeasureString(face, s)
	return layout.TextMetrics{Width: float64(adv) / 64}
}

// face resolves d to a cached face. The first registered family wins;
// generic or unknown names fall back to the built-in family, and a missing
// variant falls back to the family's regular font.
func (m *Metrics) face(d Descriptor) (font.Face, error) {
	family, f := m.resolve(d)
	key := faceKey{family: family, style: d.Style(), size: d.Size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    d.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[key] = face
	return face, nil
}

func (m *Metrics) resolve(d Descriptor) (string, *opentype.Font) {
	style := d.Style()
	for _, name := range d.Families {
		key := strings.ToLower(name)
		if IsGeneric(key) {
			key = strings.ToLower(Family)
		}
		set, ok := m.families[key]
		if !ok {
			continue
		}
		if set[style] != nil {
			return key, set[style]
		}
		if set[Regular] != nil {
			return key, set[Regular]
		}
	}
	key := strings.ToLower(Family)
	return key, m.families[key][style]
}
