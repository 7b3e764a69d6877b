package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gosuri/uiprogress"
	"github.com/soapiestwaffles/input-gen/internal/pkg/batches"
	"github.com/soapiestwaffles/input-gen/internal/pkg/corpus"
	"github.com/soapiestwaffles/input-gen/internal/pkg/verify"
)

var (
	cli struct {
		Dir           string `arg:"" optional:"" help:"directory holding the input files" default:"inputs"`
		MinLength     int    `help:"words must be longer than this many characters" default:"4"`
		MaxLength     int    `help:"words must be shorter than this many characters" default:"15"`
		MinCount      int    `help:"word count of the first group of files" default:"2"`
		MaxCount      int    `help:"word count of the last group of files" default:"10"`
		FilesPerCount int    `help:"number of files written for each word count" default:"10"`
		StartIndex    int    `help:"number of the first input file" default:"1"`
	}
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("input-check"),
		kong.Description("input-gen tool: verify generated input files against the generation plan"))

	bounds := corpus.Bounds{Min: cli.MinLength, Max: cli.MaxLength}
	ctx.FatalIfErrorf(bounds.Validate())

	plan := batches.Plan{
		MinCount:      cli.MinCount,
		MaxCount:      cli.MaxCount,
		FilesPerCount: cli.FilesPerCount,
		StartIndex:    cli.StartIndex,
	}
	ctx.FatalIfErrorf(plan.Validate())

	fmt.Println("=== INPUT CHECK ===")
	fmt.Println("")

	checker := verify.NewChecker(os.DirFS(cli.Dir), plan, bounds)

	uiprogress.Start()
	filesBar := uiprogress.AddBar(plan.Len()).AppendCompleted().PrependElapsed()
	filesBar.PrependFunc(func(b *uiprogress.Bar) string {
		return "check files"
	})

	var problems []verify.Problem
	for _, b := range plan.Batches() {
		problems = append(problems, checker.CheckBatch(b)...)
		filesBar.Incr()
	}

	uiprogress.Stop()
	fmt.Println("")

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Println("❌", p)
		}
		fmt.Printf("\n%d problem(s) found in %s\n", len(problems), cli.Dir)
		os.Exit(1)
	}

	fmt.Printf("✅ %d files in %s match the plan\n", plan.Len(), cli.Dir)
}
