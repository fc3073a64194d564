package layout

import "github.com/ByLCY/slidemark/markup"

// styleRange is a segment expressed as clean-text offsets.
type styleRange struct {
	start, end   int
	bold, italic bool
}

func styleRanges(segments []markup.Segment) []styleRange {
	out := make([]styleRange, 0, len(segments))
	pos := 0
	for _, seg := range segments {
		end := pos + len(seg.Text)
		out = append(out, styleRange{start: pos, end: end, bold: seg.Bold, italic: seg.Italic})
		pos = end
	}
	return out
}

// lineRuns slices the style ranges to the line at offset. Bytes no range
// covers are plain. Adjacent pieces of equal style are merged, so the font
// changes only where the style does.
func lineRuns(ranges []styleRange, offset int, text string) []Run {
	if text == "" {
		return nil
	}
	var runs []Run
	end := offset + len(text)
	pos := offset
	for _, r := range ranges {
		if r.end <= pos {
			continue
		}
		if r.start >= end {
			break
		}
		if r.start > pos {
			runs = appendRun(runs, text, pos-offset, r.start-offset, false, false)
			pos = r.start
		}
		e := min(r.end, end)
		runs = appendRun(runs, text, pos-offset, e-offset, r.bold, r.italic)
		pos = e
	}
	if pos < end {
		runs = appendRun(runs, text, pos-offset, end-offset, false, false)
	}
	return runs
}

func appendRun(runs []Run, text string, start, end int, bold, italic bool) []Run {
	if end <= start {
		return runs
	}
	if n := len(runs); n > 0 {
		last := &runs[n-1]
		if last.End == start && last.Bold == bold && last.Italic == italic {
			last.End = end
			last.Text = text[last.Start:end]
			return runs
		}
	}
	return append(runs, Run{Text: text[start:end], Start: start, End: end, Bold: bold, Italic: italic})
}

// MeasureLine returns the width of a line as the sum of its runs, each
// measured under its own font variant.
func MeasureLine(m Metrics, f Font, line Line) float64 {
	return measureRange(m, f, line, 0, len(line.Text))
}

// measureRange measures line.Text[start:end] run by run.
func measureRange(m Metrics, f Font, line Line, start, end int) float64 {
	width := 0.0
	for _, r := range line.Runs {
		s := max(r.Start, start)
		e := min(r.End, end)
		if e <= s {
			continue
		}
		m.SetFont(f.Descriptor(r.Bold, r.Italic))
		width += m.MeasureText(line.Text[s:e]).Width
	}
	return width
}
