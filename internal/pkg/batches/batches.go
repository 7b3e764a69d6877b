package batches

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan is returned by Plan.Validate
var ErrInvalidPlan = errors.New("invalid batch plan")

// Batch is one output file's worth of words
type Batch struct {
	Index int
	Count int
}

// FileName returns the name of the file the batch is written to
func (b Batch) FileName() string {
	return FileName(b.Index)
}

// FileName returns `input<index>.txt`
func FileName(index int) string {
	return fmt.Sprintf("input%d.txt", index)
}

// Plan describes the files to generate: for every word count from MinCount to MaxCount,
// FilesPerCount files, numbered with a running index starting at StartIndex.
type Plan struct {
	MinCount      int
	MaxCount      int
	FilesPerCount int
	StartIndex    int
}

// DefaultPlan produces 90 files: input1..input10 with 2 words each, input11..input20 with 3, up to 10 words
var DefaultPlan = Plan{
	MinCount:      2,
	MaxCount:      10,
	FilesPerCount: 10,
	StartIndex:    1,
}

// Validate rejects plans that would produce no files or negative indexes
func (p Plan) Validate() error {
	switch {
	case p.MinCount < 1:
		return fmt.Errorf("%w: minimum word count %d must be at least 1", ErrInvalidPlan, p.MinCount)
	case p.MaxCount < p.MinCount:
		return fmt.Errorf("%w: maximum word count %d is below minimum %d", ErrInvalidPlan, p.MaxCount, p.MinCount)
	case p.FilesPerCount < 1:
		return fmt.Errorf("%w: files per count %d must be at least 1", ErrInvalidPlan, p.FilesPerCount)
	case p.StartIndex < 0:
		return fmt.Errorf("%w: start index %d is negative", ErrInvalidPlan, p.StartIndex)
	}
	return nil
}

// Len returns the number of files in the plan
func (p Plan) Len() int {
	return (p.MaxCount - p.MinCount + 1) * p.FilesPerCount
}

// TotalWords returns the number of words across all files
func (p Plan) TotalWords() int {
	total := 0
	for count := p.MinCount; count <= p.MaxCount; count++ {
		total += count * p.FilesPerCount
	}
	return total
}

// Batches lists every batch in index order
func (p Plan) Batches() []Batch {
	out := make([]Batch, 0, p.Len())
	index := p.StartIndex
	for count := p.MinCount; count <= p.MaxCount; count++ {
		for i := 0; i < p.FilesPerCount; i++ {
			out = append(out, Batch{Index: index, Count: count})
			index++
		}
	}
	return out
}

// CountFor returns the word count assigned to index, and false when index is outside the plan
func (p Plan) CountFor(index int) (int, bool) {
	offset := index - p.StartIndex
	if offset < 0 || offset >= p.Len() {
		return 0, false
	}
	return p.MinCount + offset/p.FilesPerCount, true
}
