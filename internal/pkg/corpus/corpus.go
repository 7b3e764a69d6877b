// Package corpus loads the word lists that input files are sampled from.
//
// A Corpus is immutable once built: loaders parse a source into one, and Filter
// derives a new Corpus rather than modifying the receiver.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrCorpusUnavailable is returned when a corpus source cannot be fetched or read
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrEmptyCorpus is returned when no word survives filtering
	ErrEmptyCorpus = errors.New("no words left in corpus after filtering")

	// ErrInvalidBounds is returned for length bounds that admit no word length
	ErrInvalidBounds = errors.New("invalid word length bounds")
)

// Corpus is an ordered, de-duplicated list of candidate words
type Corpus struct {
	words []string
}

// New builds a Corpus from words. Surrounding space is trimmed, empty entries are
// skipped and duplicates keep their first position.
func New(words []string) *Corpus {
	seen := make(map[string]struct{}, len(words))
	c := &Corpus{words: make([]string, 0, len(words))}

	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		c.words = append(c.words, w)
	}

	return c
}

// Parse reads a word list with one word per line. Blank lines and lines starting with `#` are ignored.
func Parse(r io.Reader) (*Corpus, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	return New(words), nil
}

// Len returns the number of words in the corpus
func (c *Corpus) Len() int {
	return len(c.words)
}

// Words returns a copy of the corpus words
func (c *Corpus) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Bounds is an exclusive range of word lengths, counted in characters
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds admits words of 5 to 14 characters
var DefaultBounds = Bounds{Min: 4, Max: 15}

// Validate checks that at least one length lies strictly between Min and Max
func (b Bounds) Validate() error {
	if b.Min < 0 {
		return fmt.Errorf("%w: minimum length %d is negative", ErrInvalidBounds, b.Min)
	}
	if b.Max-b.Min < 2 {
		return fmt.Errorf("%w: no length lies strictly between %d and %d", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// Contains reports whether Min < length(word) < Max
func (b Bounds) Contains(word string) bool {
	n := utf8.RuneCountInString(word)
	return b.Min < n && n < b.Max
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d > length > %d", b.Max, b.Min)
}

// Filter returns a new Corpus of the lower-cased words whose length lies within bounds.
// Length is measured on the lower-cased form, the form that ends up in output files.
func (c *Corpus) Filter(bounds Bounds) (*Corpus, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(c.words))
	for _, w := range c.words {
		w = strings.ToLower(w)
		if bounds.Contains(w) {
			filtered = append(filtered, w)
		}
	}

	out := New(filtered)
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w (%s, %d candidate words)", ErrEmptyCorpus, bounds, c.Len())
	}

	return out, nil
}
