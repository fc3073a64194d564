package layout

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ByLCY/slidemark/markup"
)

// minSearchPhrase is the shortest phrase the text-search fallback may match.
const minSearchPhrase = 4

// Span is a highlighted byte range [Start, End). Before relocation the
// offsets index the clean text; after relocation they index one line.
type Span struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Color     string `json:"color,omitempty"`
	Highlight int    `json:"highlight"` // index into the document's highlights
}

// Placement is one wrapped line located inside the text it was cut from.
type Placement struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Exact  bool   `json:"exact"`
}

// Place folds over the wrapped lines with a running offset into text. A
// line is expected right at the cursor, after the spaces or newlines the
// wrapper dropped between lines. Lines that cannot be found there keep
// Exact=false and do not advance the cursor.
func Place(text string, lines []string) []Placement {
	out := make([]Placement, len(lines))
	cursor := 0
	for i, line := range lines {
		p := Placement{Text: line, Offset: cursor}
		if line == "" {
			p.Exact = true
			out[i] = p
			continue
		}
		for start := cursor; start <= len(text); start++ {
			if strings.HasPrefix(text[start:], line) {
				p.Offset = start
				p.Exact = true
				cursor = start + len(line)
				break
			}
			if start == len(text) || !isBreak(text[start]) {
				break
			}
		}
		out[i] = p
	}
	return out
}

func isBreak(b byte) bool { return b == ' ' || b == '\n' }

// LocateHighlights turns document highlights into clean-text spans sorted
// by position. Highlights without offsets are matched at every whole-word
// occurrence of their phrase. Duplicate ranges are dropped.
func LocateHighlights(text string, highlights []markup.Highlight) []Span {
	var spans []Span
	seen := map[[2]int]bool{}
	add := func(start, end, idx int, color string) {
		key := [2]int{start, end}
		if seen[key] {
			return
		}
		seen[key] = true
		spans = append(spans, Span{Start: start, End: end, Color: color, Highlight: idx})
	}
	for i, h := range highlights {
		if h.Located() && h.Start >= 0 && h.End <= len(text) && text[h.Start:h.End] == h.Phrase {
			add(h.Start, h.End, i, h.Color)
			continue
		}
		if h.Phrase == "" {
			continue
		}
		for _, start := range wordOccurrences(text, h.Phrase) {
			add(start, start+len(h.Phrase), i, h.Color)
		}
	}
	sort.SliceStable(spans, func(a, b int) bool { return spans[a].Start < spans[b].Start })
	return spans
}

// Relocate maps clean-text spans and emphasis segments onto wrapped lines.
// Each span is clipped to every line it overlaps, so a phrase broken across
// lines becomes a suffix span on one line and a prefix span on the next,
// both with the span's colour. Widths are left at zero; see MeasureLine.
func Relocate(text string, lines []string, spans []Span, segments []markup.Segment) []Line {
	ranges := styleRanges(segments)
	out := make([]Line, 0, len(lines))
	for _, p := range Place(text, lines) {
		line := Line{Text: p.Text, Offset: p.Offset}
		if p.Exact {
			line.Runs = lineRuns(ranges, p.Offset, p.Text)
			line.Highlights = clipSpans(spans, p.Offset, len(p.Text))
		} else {
			Logger().Debug("layout: line not found in source text, searching phrases", "line", p.Text)
			line.Runs = lineRuns(nil, 0, p.Text)
			line.Highlights = searchSpans(text, p.Text, spans)
		}
		out = append(out, line)
	}
	return out
}

// clipSpans returns the parts of spans inside [offset, offset+n), in line
// coordinates.
func clipSpans(spans []Span, offset, n int) []Span {
	var out []Span
	end := offset + n
	for _, sp := range spans {
		s := max(sp.Start, offset)
		e := min(sp.End, end)
		if e <= s {
			continue
		}
		sp.Start, sp.End = s-offset, e-offset
		out = append(out, sp)
	}
	return out
}

// searchSpans is the fallback for lines that could not be placed. A phrase
// is matched only at word boundaries and only when it is at least
// minSearchPhrase bytes long; a phrase cut by the wrapper is matched as a
// run of its leading words ending the line or its trailing words starting
// it. Each span claims at most one occurrence.
func searchSpans(text, line string, spans []Span) []Span {
	var out []Span
	claimed := map[[2]int]bool{}
	claim := func(sp Span, start, end int) bool {
		key := [2]int{start, end}
		if claimed[key] {
			return false
		}
		claimed[key] = true
		sp.Start, sp.End = start, end
		out = append(out, sp)
		return true
	}
	for _, sp := range spans {
		phrase := text[sp.Start:sp.End]
		if len(phrase) < minSearchPhrase {
			continue
		}
		found := false
		for _, start := range wordOccurrences(line, phrase) {
			if claim(sp, start, start+len(phrase)) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		words := strings.Fields(phrase)
		for k := len(words) - 1; k >= 1 && !found; k-- {
			head := strings.Join(words[:k], " ")
			if len(head) >= minSearchPhrase && strings.HasSuffix(line, head) && wordStart(line, len(line)-len(head)) {
				found = claim(sp, len(line)-len(head), len(line))
				continue
			}
			tail := strings.Join(words[len(words)-k:], " ")
			if len(tail) >= minSearchPhrase && strings.HasPrefix(line, tail) && wordEnd(line, len(tail)) {
				found = claim(sp, 0, len(tail))
			}
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Start < out[b].Start })
	return out
}

// wordOccurrences returns the non-overlapping offsets of phrase in s that
// start and end on word boundaries.
func wordOccurrences(s, phrase string) []int {
	var out []int
	if phrase == "" {
		return nil
	}
	for from := 0; from <= len(s)-len(phrase); {
		idx := strings.Index(s[from:], phrase)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(phrase)
		if wordStart(s, start) && wordEnd(s, end) {
			out = append(out, start)
			from = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return out
}

func wordStart(s string, i int) bool {
	if i <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func wordEnd(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}
