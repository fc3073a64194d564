package layout

import (
	"math"
	"strings"
)

const (
	minBalancedLines = 2
	maxBalancedLines = 3

	// orphanPenalty is added to splits whose last line is a single word.
	orphanPenalty = 1e9
)

// BalancedWrapText splits a title into 2 or 3 lines, choosing the split with
// the smallest sum of squared slack (maxWidth - lineWidth)² and penalising a
// lone word on the last line. Text with fewer than two words falls back to
// WrapText.
//
// The search enumerates every break position, so it is only meant for short
// strings such as titles; body copy goes through WrapText.
func BalancedWrapText(measure MeasureFunc, text string, maxWidth float64) []string {
	words := Words(text)
	widths := newWidthCache(measure, words)

	var (
		best      []string
		bestScore = math.Inf(1)
	)
	for n := minBalancedLines; n <= maxBalancedLines; n++ {
		if len(words) < n {
			continue
		}
		partitions(len(words), n, nil, func(breaks []int) {
			score := 0.0
			start := 0
			for _, end := range breaks {
				slack := maxWidth - widths.width(start, end)
				score += slack * slack
				start = end
			}
			if last := breaks[len(breaks)-2]; len(words)-last == 1 {
				score += orphanPenalty
			}
			if score < bestScore {
				bestScore = score
				best = widths.lines(breaks)
			}
		})
	}
	if best == nil {
		Logger().Debug("layout: balanced wrap has no candidate, using greedy", "words", len(words))
		return WrapText(measure, words, maxWidth)
	}
	return best
}

// partitions calls emit with the end index of every line for each way of
// cutting [start, total) words into n non-empty lines. The final entry is
// always total.
func partitions(total, n int, prefix []int, emit func([]int)) {
	start := 0
	if len(prefix) > 0 {
		start = prefix[len(prefix)-1]
	}
	if n == 1 {
		emit(append(prefix[:len(prefix):len(prefix)], total))
		return
	}
	for end := start + 1; end <= total-(n-1); end++ {
		partitions(total, n-1, append(prefix[:len(prefix):len(prefix)], end), emit)
	}
}

// widthCache memoises line widths by word range; the two searches share
// most of their lines.
type widthCache struct {
	measure MeasureFunc
	words   []string
	cache   map[[2]int]float64
}

func newWidthCache(measure MeasureFunc, words []string) *widthCache {
	return &widthCache{measure: measure, words: words, cache: map[[2]int]float64{}}
}

func (c *widthCache) width(start, end int) float64 {
	key := [2]int{start, end}
	if w, ok := c.cache[key]; ok {
		return w
	}
	w := c.measure(strings.Join(c.words[start:end], " "))
	c.cache[key] = w
	return w
}

func (c *widthCache) lines(breaks []int) []string {
	out := make([]string, 0, len(breaks))
	start := 0
	for _, end := range breaks {
		out = append(out, strings.Join(c.words[start:end], " "))
		start = end
	}
	return out
}
