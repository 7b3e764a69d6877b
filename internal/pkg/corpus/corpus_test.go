package corpus

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{
			name:  "trims and skips empty",
			words: []string{" apple ", "", "  ", "banana"},
			want:  []string{"apple", "banana"},
		},
		{
			name:  "keeps first of duplicates",
			words: []string{"cherry", "apple", "cherry", "apple"},
			want:  []string{"cherry", "apple"},
		},
		{
			name:  "nil",
			words: nil,
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.words).Words()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New().Words() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCorpus_WordsIsCopy(t *testing.T) {
	c := New([]string{"apple", "banana"})
	words := c.Words()
	words[0] = "mutated"

	if c.Words()[0] != "apple" {
		t.Errorf("Words() exposed internal slice")
	}
}

func TestParse(t *testing.T) {
	input := "# comment\nApple\n\n  banana  \r\n#another\ncherry"

	c, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"Apple", "banana", "cherry"}
	if got := c.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestBounds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
	}{
		{name: "default", bounds: DefaultBounds, wantErr: false},
		{name: "single length", bounds: Bounds{Min: 4, Max: 6}, wantErr: false},
		{name: "adjacent", bounds: Bounds{Min: 4, Max: 5}, wantErr: true},
		{name: "inverted", bounds: Bounds{Min: 15, Max: 4}, wantErr: true},
		{name: "negative", bounds: Bounds{Min: -1, Max: 4}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Bounds.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBounds) {
				t.Errorf("Bounds.Validate() error = %v, want ErrInvalidBounds", err)
			}
		})
	}
}

func TestBounds_Contains(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "four", want: false},
		{word: "fives", want: true},
		{word: "fourteenletter", want: true},
		{word: "fifteenletters!", want: false},
		{word: "café!", want: true},
		{word: "ωμέγα", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := DefaultBounds.Contains(tt.word); got != tt.want {
				t.Errorf("Bounds.Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestCorpus_Filter(t *testing.T) {
	c := New([]string{"four", "Apple", "APPLE", "banana", "fifteenletters!", "Wisconsin", "ab"})

	got, err := c.Filter(DefaultBounds)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}

	want := []string{"apple", "banana", "wisconsin"}
	if !reflect.DeepEqual(got.Words(), want) {
		t.Errorf("Filter() = %v, want %v", got.Words(), want)
	}

	if c.Len() != 7 {
		t.Errorf("Filter() modified the receiver, Len() = %d", c.Len())
	}
}

func TestCorpus_FilterEmpty(t *testing.T) {
	tests := []struct {
		name   string
		corpus *Corpus
	}{
		{name: "all too short", corpus: New([]string{"a", "an", "the", "four"})},
		{name: "empty corpus", corpus: New(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.corpus.Filter(DefaultBounds)
			if !errors.Is(err, ErrEmptyCorpus) {
				t.Errorf("Filter() error = %v, want ErrEmptyCorpus", err)
			}
		})
	}
}

func TestCorpus_FilterInvalidBounds(t *testing.T) {
	_, err := New([]string{"apple"}).Filter(Bounds{Min: 5, Max: 5})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Filter() error = %v, want ErrInvalidBounds", err)
	}
}
