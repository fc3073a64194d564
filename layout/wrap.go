package layout

import "strings"

// Strategy selects a line wrapper.
type Strategy uint8

const (
	// Greedy is the single-pass first-fit wrapper used for body copy.
	Greedy Strategy = iota
	// Balanced searches every 2- and 3-line split; titles only.
	Balanced
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "balanced" to Balanced and anything else to Greedy.
func ParseStrategy(v string) Strategy {
	if strings.EqualFold(strings.TrimSpace(v), "balanced") {
		return Balanced
	}
	return Greedy
}

// Words splits text on single spaces. Consecutive spaces yield empty words,
// so joining the words with " " always gives text back.
func Words(text string) []string {
	return strings.Split(text, " ")
}

// WrapText packs words into lines first-fit. A word moves to a new line
// when the current line plus the word and its trailing space is wider than
// maxWidth and the line already holds a word; a single oversized word
// overflows on its own line. At least one line is always returned.
func WrapText(measure MeasureFunc, words []string, maxWidth float64) []string {
	var (
		lines []string
		line  string
		count int
	)
	for _, word := range words {
		candidate := line + word + " "
		if measure(candidate) > maxWidth && count > 0 {
			lines = append(lines, strings.TrimSuffix(line, " "))
			line = word + " "
			count = 1
			continue
		}
		line = candidate
		count++
	}
	return append(lines, strings.TrimSuffix(line, " "))
}
