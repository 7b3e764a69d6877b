// Package verify checks generated input files against the plan that produced them.
package verify

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/soapiestwaffles/input-gen/internal/pkg/batches"
	"github.com/soapiestwaffles/input-gen/internal/pkg/corpus"
)

// Problem is a single violation found in an input file. Line is 1-based, 0 for whole-file problems.
type Problem struct {
	File   string
	Line   int
	Reason string
}

func (p Problem) String() string {
	if p.Line == 0 {
		return fmt.Sprintf("%s: %s", p.File, p.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", p.File, p.Line, p.Reason)
}

// CheckFile verifies one file body against its batch and the word length bounds
func CheckFile(name string, body []byte, batch batches.Batch, bounds corpus.Bounds) []Problem {
	var problems []Problem

	lines := strings.Split(string(body), "\n")
	// a single trailing newline is tolerated
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) != batch.Count {
		problems = append(problems, Problem{
			File:   name,
			Reason: fmt.Sprintf("has %d lines, want %d", len(lines), batch.Count),
		})
	}

	for i, w := range lines {
		switch {
		case w == "":
			problems = append(problems, Problem{File: name, Line: i + 1, Reason: "blank line"})
		case !bounds.Contains(w):
			problems = append(problems, Problem{File: name, Line: i + 1, Reason: fmt.Sprintf("word %q is outside %s", w, bounds)})
		case w != strings.ToLower(w):
			problems = append(problems, Problem{File: name, Line: i + 1, Reason: fmt.Sprintf("word %q is not lower-case", w)})
		}
	}

	return problems
}

// Checker walks the plan, reading each file from fsys
type Checker struct {
	fsys   fs.FS
	plan   batches.Plan
	bounds corpus.Bounds
}

// NewChecker returns a Checker for the files in fsys
func NewChecker(fsys fs.FS, plan batches.Plan, bounds corpus.Bounds) *Checker {
	return &Checker{fsys: fsys, plan: plan, bounds: bounds}
}

// CheckBatch verifies the file for a single batch
func (c *Checker) CheckBatch(b batches.Batch) []Problem {
	name := b.FileName()
	body, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, fs.ErrNotExist) {
			reason = "missing"
		}
		return []Problem{{File: name, Reason: reason}}
	}
	return CheckFile(name, body, b, c.bounds)
}

// Check verifies every file in the plan
func Check(fsys fs.FS, plan batches.Plan, bounds corpus.Bounds) []Problem {
	c := NewChecker(fsys, plan, bounds)

	var problems []Problem
	for _, b := range plan.Batches() {
		problems = append(problems, c.CheckBatch(b)...)
	}
	return problems
}
