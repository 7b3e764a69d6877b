package generators

import (
	"math/rand"
	"time"

	"github.com/soapiestwaffles/input-gen/internal/pkg/corpus"
)

// Sampler draws words uniformly at random from a length-filtered, lower-cased corpus
type Sampler struct {
	words  []string
	bounds corpus.Bounds
	seed   int64
}

// SamplerOption configures a Sampler
type SamplerOption func(s *Sampler)

// WithBounds sets the exclusive word length bounds (default 4 and 15)
func WithBounds(bounds corpus.Bounds) SamplerOption {
	return func(s *Sampler) {
		s.bounds = bounds
	}
}

// WithSeed fixes the seed all random streams derive from. Zero picks a time based seed.
func WithSeed(seed int64) SamplerOption {
	return func(s *Sampler) {
		s.seed = seed
	}
}

// NewSampler filters c and returns a sampler over the eligible words.
// It fails with corpus.ErrEmptyCorpus when no word is eligible.
func NewSampler(c *corpus.Corpus, opts ...SamplerOption) (*Sampler, error) {
	s := &Sampler{bounds: corpus.DefaultBounds}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	filtered, err := c.Filter(s.bounds)
	if err != nil {
		return nil, err
	}
	s.words = filtered.Words()

	return s, nil
}

// Seed returns the seed in use, so a run can be reproduced
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Bounds returns the length bounds the sampler filtered with
func (s *Sampler) Bounds() corpus.Bounds {
	return s.bounds
}

// Len returns the number of eligible words
func (s *Sampler) Len() int {
	return len(s.words)
}

// Rand returns the random stream for the given stream id. The same seed and id always
// yield the same sequence, independent of which goroutine asks for it.
func (s *Sampler) Rand(stream int) *rand.Rand {
	// splitmix64 finalizer spreads adjacent ids over the seed space
	z := uint64(s.seed) + uint64(stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31

	return rand.New(rand.NewSource(int64(z)))
}

// SampleWord returns one eligible word chosen uniformly at random
func (s *Sampler) SampleWord(r *rand.Rand) string {
	return s.words[r.Intn(len(s.words))]
}

// SampleWords returns n words drawn independently (with replacement)
func (s *Sampler) SampleWords(r *rand.Rand, n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, s.SampleWord(r))
	}
	return words
}
