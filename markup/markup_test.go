package markup_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/slidemark/markup"
)

func TestParseMarkedTextSingleHighlight(t *testing.T) {
	got := markup.ParseMarkedText("I <mark>love</mark> testing")
	if got.Text != "I love testing" {
		t.Fatalf("clean text mismatch: got=%q", got.Text)
	}
	if len(got.Highlights) != 1 {
		t.Fatalf("expected 1 highlight, got %d", len(got.Highlights))
	}
	h := got.Highlights[0]
	if h.Phrase != "love" || h.Start != 2 || h.End != 6 {
		t.Fatalf("unexpected highlight: %+v", h)
	}
}

func TestParseMarkedTextRepeatedPhrase(t *testing.T) {
	got := markup.ParseMarkedText("<mark>go</mark> fast, <mark>go</mark> far")
	if got.Text != "go fast, go far" {
		t.Fatalf("clean text mismatch: got=%q", got.Text)
	}
	if len(got.Highlights) != 2 {
		t.Fatalf("expected 2 highlights, got %+v", got.Highlights)
	}
	if got.Highlights[0].Start != 0 || got.Highlights[1].Start != 9 {
		t.Fatalf("highlights should keep their own positions: %+v", got.Highlights)
	}
}

func TestParseMarkedTextUnclosedIsLiteral(t *testing.T) {
	raw := "keep <mark>this <mark>open"
	got := markup.ParseMarkedText(raw)
	if got.Text != raw {
		t.Fatalf("unclosed mark must stay literal: got=%q", got.Text)
	}
	if len(got.Highlights) != 0 {
		t.Fatalf("unclosed mark must not emit highlights: %+v", got.Highlights)
	}
}

func TestParseMarkedTextClosesAtFirstEndTag(t *testing.T) {
	got := markup.ParseMarkedText("<mark>a <mark>b</mark> c</mark>")
	if got.Text != "a <mark>b c</mark>" {
		t.Fatalf("unexpected clean text: %q", got.Text)
	}
	if len(got.Highlights) != 1 || got.Highlights[0].Phrase != "a <mark>b" {
		t.Fatalf("unexpected highlights: %+v", got.Highlights)
	}
}

func TestParseMarkedTextKeepsStrayAngleBrackets(t *testing.T) {
	raw := "1 < 2 and </mark> alone"
	got := markup.ParseMarkedText(raw)
	if got.Text != raw {
		t.Fatalf("stray tags should pass through: %q", got.Text)
	}
}

func TestParseInlineFormattingBold(t *testing.T) {
	got := markup.ParseInlineFormatting("plain *bold* plain")
	want := []markup.Segment{
		{Text: "plain "},
		{Text: "bold", Bold: true},
		{Text: " plain"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments mismatch:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestParseInlineFormattingNestedOpposite(t *testing.T) {
	got := markup.ParseInlineFormatting("*bold _and italic_*")
	want := []markup.Segment{
		{Text: "bold ", Bold: true},
		{Text: "and italic", Bold: true, Italic: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments mismatch:\n got=%+v\nwant=%+v", got, want)
	}

	got = markup.ParseInlineFormatting("_lean *and heavy* end_")
	want = []markup.Segment{
		{Text: "lean ", Italic: true},
		{Text: "and heavy", Bold: true, Italic: true},
		{Text: " end", Italic: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments mismatch:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestParseInlineFormattingUnmatchedMarkers(t *testing.T) {
	cases := map[string][]markup.Segment{
		"2 * 3 = 6":   {{Text: "2 * 3 = 6"}},
		"snake_case":  {{Text: "snake_case"}},
		"**":          {{Text: "**"}},
		"**x*":        {{Text: "*"}, {Text: "x", Bold: true}},
		"*a _b* c_":   {{Text: "a _b", Bold: true}, {Text: " c_"}},
		"":            {{Text: ""}},
		"no markers.": {{Text: "no markers."}},
	}
	for in, want := range cases {
		got := markup.ParseInlineFormatting(in)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%q: got=%+v want=%+v", in, got, want)
		}
	}
}

func TestSegmentsReproduceCleanText(t *testing.T) {
	inputs := []string{
		"plain *bold* and _it_ and *b _bi_ b* end",
		"*unclosed bold and _closed italic_",
		"_*_*_",
		"multi\nline *bold*\n\n_para_",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range markup.ParseInlineFormatting(in) {
			if seg.Text == "" {
				t.Fatalf("%q: empty segment emitted", in)
			}
			b.WriteString(seg.Text)
		}
		stripped := markup.Parse(in).Text
		if b.String() != stripped {
			t.Fatalf("%q: segments join to %q, document text is %q", in, b.String(), stripped)
		}
	}
}

func TestParseRemapsHighlightsPastEmphasis(t *testing.T) {
	doc := markup.Parse("*Big* news: <mark>_really_ big</mark> deal")
	if doc.Text != "Big news: really big deal" {
		t.Fatalf("unexpected text: %q", doc.Text)
	}
	if len(doc.Highlights) != 1 {
		t.Fatalf("expected 1 highlight, got %+v", doc.Highlights)
	}
	h := doc.Highlights[0]
	if h.Phrase != "really big" || doc.Text[h.Start:h.End] != "really big" {
		t.Fatalf("highlight not remapped: %+v", h)
	}
	if len(doc.Segments) != 4 || !doc.Segments[2].Italic {
		t.Fatalf("unexpected segments: %+v", doc.Segments)
	}
}
