package unicodeblock

import (
	"iter"
	"slices"
	"sort"
)

// Count returns the number of code points in text that fall within b.
// Invalid UTF-8 decodes to U+FFFD, one per offending byte.
func Count(text string, b Block) int {
	n := 0
	for _, r := range text {
		if b.Contains(r) {
			n++
		}
	}
	return n
}

// Analyze counts text against the standard catalog.
//
// Example:
//
//	r := unicodeblock.Analyze("Aa文")
//	r.Get("basicLatin")            // 2
//	r.Get("cjkUnifiedIdeographs") // 1
func Analyze(text string) Report {
	return AnalyzeCatalog(text, standard)
}

// AnalyzeCatalog counts text against every block of c and returns the blocks
// with a non-zero count in catalog order. When blocks of c overlap, a code
// point counts toward each block that contains it. Empty text yields an
// empty report.
func AnalyzeCatalog(text string, c Catalog) Report {
	return analyzeSeq(stringRunes(text), c)
}

func stringRunes(text string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range text {
			if !yield(r) {
				return
			}
		}
	}
}

// analyzeSeq collapses the input into a histogram of distinct code points and
// evaluates each block with two binary searches over the sorted keys.
func analyzeSeq(runes iter.Seq[rune], c Catalog) Report {
	h := newHistogram(runes)
	if h.empty() {
		return Report{}
	}

	var r Report
	for _, b := range c.blocks {
		if n := h.countRange(b.Low, b.High); n > 0 {
			r.entries = append(r.entries, Entry{Block: b.Name, Count: n})
		}
	}
	return r
}

// histogram is the sorted, distinct code points of one input with prefix sums
// of their occurrences, so any range is counted in O(log n).
type histogram struct {
	points []rune // sorted, distinct
	prefix []int  // prefix[i] = occurrences of points[:i]
}

func newHistogram(runes iter.Seq[rune]) histogram {
	freq := make(map[rune]int)
	for r := range runes {
		freq[r]++
	}
	if len(freq) == 0 {
		return histogram{}
	}

	points := make([]rune, 0, len(freq))
	for r := range freq {
		points = append(points, r)
	}
	slices.Sort(points)

	prefix := make([]int, len(points)+1)
	for i, r := range points {
		prefix[i+1] = prefix[i] + freq[r]
	}
	return histogram{points: points, prefix: prefix}
}

func (h histogram) empty() bool { return len(h.points) == 0 }

func (h histogram) countRange(low, high rune) int {
	lo := sort.Search(len(h.points), func(i int) bool { return h.points[i] >= low })
	hi := sort.Search(len(h.points), func(i int) bool { return h.points[i] > high })
	return h.prefix[hi] - h.prefix[lo]
}
