package stats

import (
	"unicode/utf8"

	"github.com/soapiestwaffles/input-gen/internal/pkg/corpus"
)

// Summary holds counts for a corpus and the share of it a sampler can draw from
type Summary struct {
	Total    int
	Eligible int
	Shortest int
	Longest  int
}

// Summarize counts words and the words inside bounds
func Summarize(words []string, bounds corpus.Bounds) Summary {
	s := Summary{Total: len(words)}
	for i, w := range words {
		n := utf8.RuneCountInString(w)
		if i == 0 || n < s.Shortest {
			s.Shortest = n
		}
		if n > s.Longest {
			s.Longest = n
		}
		if bounds.Contains(w) {
			s.Eligible++
		}
	}
	return s
}

// LengthHistogram returns the number of words of each length, indexed by length.
// The slice is sized to the longest word, so index 0 is always zero.
func LengthHistogram(words []string) []float64 {
	longest := 0
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > longest {
			longest = n
		}
	}

	hist := make([]float64, longest+1)
	for _, w := range words {
		hist[utf8.RuneCountInString(w)]++
	}
	return hist
}
