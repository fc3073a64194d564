// Package markup parses the inline grammar used in slide copy:
// <mark>…</mark> highlights, *bold* and _italic_ emphasis.
//
// Both passes are forward scans over the marker tokens. Matching is
// leftmost and non-overlapping; anything that does not close degrades to
// literal text, so parsing never fails.
package markup

import "strings"

// Highlight is a highlighted phrase of the clean text.
// Start/End are byte offsets into the clean text; both are zero when the
// highlight was supplied by phrase only and still has to be located.
type Highlight struct {
	Phrase string `json:"phrase"`
	Color  string `json:"color,omitempty"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Located reports whether the highlight carries clean-text offsets.
func (h Highlight) Located() bool { return h.End > h.Start }

// Segment is a contiguous run of clean text sharing one emphasis style.
type Segment struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// MarkedText is the result of the highlight pass.
type MarkedText struct {
	Text       string      `json:"text"`
	Highlights []Highlight `json:"highlights"`
}

// Document is raw slide copy after both passes: display text, highlights in
// display-text coordinates and the emphasis partition of that text.
type Document struct {
	Text       string      `json:"text"`
	Highlights []Highlight `json:"highlights"`
	Segments   []Segment   `json:"segments"`
}

// Parse runs the highlight pass and then the emphasis pass. Highlight
// offsets and phrases are rewritten to the final display text, so a
// highlighted "*word*" ends up as the phrase "word".
func Parse(raw string) Document {
	marked := ParseMarkedText(raw)
	segments, removed := parseEmphasis(marked.Text)

	doc := Document{
		Text:     joinSegments(segments),
		Segments: segments,
	}
	for _, h := range marked.Highlights {
		start := shiftOffset(h.Start, removed)
		end := shiftOffset(h.End, removed)
		if end <= start {
			continue
		}
		doc.Highlights = append(doc.Highlights, Highlight{
			Phrase: doc.Text[start:end],
			Color:  h.Color,
			Start:  start,
			End:    end,
		})
	}
	return doc
}

// ParseMarkedText strips <mark> tags and records every highlighted phrase in
// order of appearance. An unclosed <mark> and everything after it stay literal.
func ParseMarkedText(raw string) MarkedText {
	tokens := tokenize(raw)
	var (
		out        strings.Builder
		highlights []Highlight
	)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.kind != tokenMarkOpen {
			out.WriteString(tok.text)
			continue
		}
		closing := -1
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j].kind == tokenMarkClose {
				closing = j
				break
			}
		}
		if closing < 0 {
			out.WriteString(raw[tok.offset:])
			break
		}
		phrase := raw[tok.end():tokens[closing].offset]
		if phrase != "" {
			start := out.Len()
			out.WriteString(phrase)
			highlights = append(highlights, Highlight{
				Phrase: phrase,
				Start:  start,
				End:    out.Len(),
			})
		}
		i = closing
	}
	return MarkedText{Text: out.String(), Highlights: highlights}
}

// ParseInlineFormatting partitions text into emphasis segments. The
// concatenation of the segment texts is the text with emphasis markers
// removed. Non-empty input never yields an empty list.
func ParseInlineFormatting(text string) []Segment {
	segments, _ := parseEmphasis(text)
	return segments
}

func parseEmphasis(text string) ([]Segment, []int) {
	s := &emphasisScanner{tokens: tokenize(text)}
	s.scan(0, len(s.tokens), false, false)
	if len(s.segments) == 0 {
		return []Segment{{Text: text}}, nil
	}
	return s.segments, s.removed
}

// emphasisScanner resolves * and _ runs over a token range. A run may hold
// one nested run of the opposite marker; deeper markers are literal.
type emphasisScanner struct {
	tokens   []token
	segments []Segment
	removed  []int // offsets of consumed marker bytes, ascending
}

func (s *emphasisScanner) scan(from, to int, bold, italic bool) {
	for i := from; i < to; i++ {
		tok := s.tokens[i]
		var nested bool
		switch tok.kind {
		case tokenStar:
			nested = !bold
		case tokenUnderscore:
			nested = !italic
		}
		if !nested {
			s.emit(tok.text, bold, italic)
			continue
		}
		closing := s.closing(i, to)
		if closing < 0 {
			s.emit(tok.text, bold, italic)
			continue
		}
		s.removed = append(s.removed, tok.offset)
		if tok.kind == tokenStar {
			s.scan(i+1, closing, true, italic)
		} else {
			s.scan(i+1, closing, bold, true)
		}
		s.removed = append(s.removed, s.tokens[closing].offset)
		i = closing
	}
}

// closing finds the marker that closes the run opened at i. Runs need at
// least one character between the markers, so "**" opens nothing.
func (s *emphasisScanner) closing(i, to int) int {
	kind := s.tokens[i].kind
	for j := i + 1; j < to; j++ {
		if s.tokens[j].kind != kind {
			continue
		}
		if j == i+1 {
			return -1
		}
		return j
	}
	return -1
}

func (s *emphasisScanner) emit(text string, bold, italic bool) {
	if text == "" {
		return
	}
	if n := len(s.segments); n > 0 {
		last := &s.segments[n-1]
		if last.Bold == bold && last.Italic == italic {
			last.Text += text
			return
		}
	}
	s.segments = append(s.segments, Segment{Text: text, Bold: bold, Italic: italic})
}

// shiftOffset maps an offset in the marked text onto the text with the
// removed marker bytes dropped.
func shiftOffset(offset int, removed []int) int {
	n := 0
	for _, r := range removed {
		if r >= offset {
			break
		}
		n++
	}
	return offset - n
}

func joinSegments(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}
