package layout_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/slidemark/layout"
)

var wrapSamples = []string{
	"",
	"single",
	"the quick brown fox jumps over the lazy dog",
	"supercalifragilisticexpialidocious is long",
	"double  spaced  words here",
	"a b c d e f g h i j k l m n o p",
}

func TestWrapTextEmptyInput(t *testing.T) {
	got := layout.WrapText(perByte, layout.Words(""), 100)
	if !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("expected one empty line, got %q", got)
	}
	got = layout.WrapText(perByte, nil, 100)
	if !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("expected one empty line for no words, got %q", got)
	}
}

func TestWrapTextOversizedWordOverflows(t *testing.T) {
	got := layout.WrapText(perByte, layout.Words("tiny enormousword end"), 60)
	want := []string{"tiny", "enormousword", "end"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWrapTextBreaksWhenTrailingSpaceOverflows(t *testing.T) {
	// "ab cd " is 60px; the trailing space counts.
	got := layout.WrapText(perByte, layout.Words("ab cd"), 50)
	if !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Fatalf("got %q", got)
	}
	got = layout.WrapText(perByte, layout.Words("ab cd"), 60)
	if !reflect.DeepEqual(got, []string{"ab cd"}) {
		t.Fatalf("got %q", got)
	}
}

func TestWrappersCoverEveryWord(t *testing.T) {
	for _, text := range wrapSamples {
		for _, width := range []float64{30, 80, 150, 1000} {
			greedy := layout.WrapText(perByte, layout.Words(text), width)
			if got := strings.Join(greedy, " "); got != text {
				t.Fatalf("greedy %q@%g: lines %q rejoin to %q", text, width, greedy, got)
			}
			balanced := layout.BalancedWrapText(perByte, text, width)
			if got := strings.Join(balanced, " "); got != text {
				t.Fatalf("balanced %q@%g: lines %q rejoin to %q", text, width, balanced, got)
			}
		}
	}
}

func TestWrappersNeverSplitWords(t *testing.T) {
	for _, text := range wrapSamples {
		words := map[string]bool{}
		for _, w := range layout.Words(text) {
			words[w] = true
		}
		for _, width := range []float64{30, 80, 150} {
			lines := append(layout.WrapText(perByte, layout.Words(text), width),
				layout.BalancedWrapText(perByte, text, width)...)
			for _, line := range lines {
				for _, w := range layout.Words(line) {
					if !words[w] {
						t.Fatalf("%q@%g: %q is not a source word (line %q)", text, width, w, line)
					}
				}
			}
		}
	}
}

func TestWrapTextIdempotent(t *testing.T) {
	for _, text := range wrapSamples {
		first := layout.WrapText(perByte, layout.Words(text), 80)
		again := layout.WrapText(perByte, layout.Words(strings.Join(first, " ")), 80)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("%q: rewrap changed lines %q -> %q", text, first, again)
		}
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	for _, line := range layout.WrapText(perByte, layout.Words(text), 100) {
		if perByte(line) > 100 && strings.Contains(line, " ") {
			t.Fatalf("multi-word line %q exceeds width", line)
		}
	}
}

func TestWrapTextSetsFontBeforeEachMeasurement(t *testing.T) {
	m := &monoMetrics{}
	measure := layout.Measure(m, "20px Go")
	layout.WrapText(measure, layout.Words("one two three four"), 50)
	if m.sets != 4 {
		t.Fatalf("expected one SetFont per measurement (4), got %d", m.sets)
	}
}

func TestBalancedPrefersEvenTwoLines(t *testing.T) {
	got := layout.BalancedWrapText(perByte, "aaaa bbbb cccc dddd", 100)
	want := []string{"aaaa bbbb", "cccc dddd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBalancedPicksThreeLinesWhenTheyFillBetter(t *testing.T) {
	got := layout.BalancedWrapText(perByte, "aa bb cc dd ee ff", 50)
	want := []string{"aa bb", "cc dd", "ee ff"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestBalancedAvoidsOrphan(t *testing.T) {
	got := layout.BalancedWrapText(perByte, "building things people love", 400)
	if last := got[len(got)-1]; !strings.Contains(last, " ") {
		t.Fatalf("last line %q is an orphan (lines %q)", last, got)
	}
}

func TestBalancedFallsBackToGreedy(t *testing.T) {
	if got := layout.BalancedWrapText(perByte, "Hello", 10); !reflect.DeepEqual(got, []string{"Hello"}) {
		t.Fatalf("single word: got %q", got)
	}
	if got := layout.BalancedWrapText(perByte, "", 10); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("empty: got %q", got)
	}
}

func TestStrategyString(t *testing.T) {
	if layout.ParseStrategy("Balanced") != layout.Balanced || layout.ParseStrategy("x") != layout.Greedy {
		t.Fatalf("ParseStrategy mismatch")
	}
	if layout.Balanced.String() != "balanced" || layout.Greedy.String() != "greedy" {
		t.Fatalf("String mismatch")
	}
}
