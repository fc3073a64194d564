package fonts

import (
	"math"
	"reflect"
	"testing"
)

func TestParseDescriptor(t *testing.T) {
	cases := []struct {
		in   string
		want Descriptor
	}{
		{"italic bold 48px Inter", Descriptor{Italic: true, Bold: true, Weight: 700, Size: 48, Families: []string{"Inter"}}},
		{"500 32px Inter, sans-serif", Descriptor{Weight: 500, Size: 32, Families: []string{"Inter", "sans-serif"}}},
		{"600 20px 'Noto Sans'", Descriptor{Bold: true, Weight: 600, Size: 20, Families: []string{"Noto Sans"}}},
		{"bold 12pt Go", Descriptor{Bold: true, Weight: 700, Size: 16, Families: []string{"Go"}}},
		{"18px/1.4 serif", Descriptor{Weight: 400, Size: 18, Families: []string{"serif"}}},
		{"", Descriptor{Weight: 400, Size: DefaultSize, Families: []string{"sans-serif"}}},
	}
	for _, c := range cases {
		if got := ParseDescriptor(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%q: got=%+v want=%+v", c.in, got, c.want)
		}
	}
}

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"embed:Go-Regular.ttf", "Go-BoldItalic.ttf"} {
		data, err := Load(name)
		if err != nil || len(data) == 0 {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
	}
	if _, err := Load("embed:Inter-Regular.ttf"); err == nil {
		t.Fatalf("expected error for unknown built-in font")
	}
	if StyleOf(true, true) != BoldItalic || !BoldItalic.Bold() || !BoldItalic.Italic() {
		t.Fatalf("style mapping mismatch")
	}
}

func TestMetricsScaleWithSize(t *testing.T) {
	m := NewMetrics()
	m.SetFont("20px Go")
	small := m.MeasureText("Hello, slides").Width
	m.SetFont("40px Go")
	large := m.MeasureText("Hello, slides").Width
	if small <= 0 {
		t.Fatalf("expected positive width, got %g", small)
	}
	if math.Abs(large-2*small) > 1 {
		t.Fatalf("width should scale with size: 20px=%g 40px=%g", small, large)
	}
	if w := m.MeasureText("").Width; w != 0 {
		t.Fatalf("empty string should measure 0, got %g", w)
	}
}

func TestMetricsFallsBackToBuiltin(t *testing.T) {
	m := NewMetrics()
	m.SetFont("24px Go")
	want := m.MeasureText("fallback").Width
	for _, desc := range []string{"24px Unknown, sans-serif", "24px Missing", "24px serif"} {
		m.SetFont(desc)
		if got := m.MeasureText("fallback").Width; got != want {
			t.Fatalf("%q: got %g want %g", desc, got, want)
		}
	}
}

func TestMetricsRegisterFamily(t *testing.T) {
	m := NewMetrics()
	if err := m.Register("Brand", Regular, Builtin(Bold)); err != nil {
		t.Fatalf("register: %v", err)
	}
	m.SetFont("bold 30px Go")
	want := m.MeasureText("brand text").Width
	// italic falls back to the family's regular, here the bold outlines.
	m.SetFont("italic 30px Brand")
	if got := m.MeasureText("brand text").Width; got != want {
		t.Fatalf("registered family not used: got %g want %g", got, want)
	}
	if err := m.Register("Broken", Regular, []byte("not a font")); err == nil {
		t.Fatalf("expected parse error")
	}
}
