package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/soapiestwaffles/input-gen/internal/pkg/corpus"
	"github.com/soapiestwaffles/input-gen/internal/pkg/stats"
	"github.com/soapiestwaffles/input-gen/pkg/aws/s3"
)

var (
	cli struct {
		Corpus      string `arg:"" optional:"" help:"word source: embedded, fakelish[:N], a file path, an http(s):// URL or s3://bucket/key" default:"embedded"`
		MinLength   int    `help:"words must be longer than this many characters" default:"4"`
		MaxLength   int    `help:"words must be shorter than this many characters" default:"15"`
		AWSEndpoint string `help:"override AWS endpoint address" short:"e" optional:"" env:"AWS_ENDPOINT"`
		Region      string `help:"AWS region used for S3 requests" short:"r" optional:"" env:"AWS_REGION"`
	}
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("corpus-stats"),
		kong.Description("input-gen tool: show word length distribution of a corpus"))

	bounds := corpus.Bounds{Min: cli.MinLength, Max: cli.MaxLength}
	ctx.FatalIfErrorf(bounds.Validate())

	var opts []corpus.LoaderOption
	if strings.HasPrefix(cli.Corpus, "s3://") {
		opts = append(opts, corpus.WithS3Service(s3.NewService(s3.WithAWSEndpoint(cli.AWSEndpoint), s3.WithRegion(cli.Region))))
	}

	loadingSpinner := spinner.New(spinner.CharSets[13], 100*time.Millisecond)
	loadingSpinner.Suffix = " loading corpus..."
	err := loadingSpinner.Color("blue", "bold")
	ctx.FatalIfErrorf(err)
	loadingSpinner.Start()
	wordList, err := corpus.Load(context.TODO(), cli.Corpus, opts...)
	loadingSpinner.Stop()
	ctx.FatalIfErrorf(err)

	words := wordList.Words()
	summary := stats.Summarize(words, bounds)

	graph := asciigraph.Plot(stats.LengthHistogram(words),
		asciigraph.Height(12),
		asciigraph.Caption("Words per length (characters)"))
	fmt.Println(graph)
	fmt.Println("")
	fmt.Println("Words in corpus.......:", humanize.Comma(int64(summary.Total)))
	fmt.Printf("Eligible (%s): %s\n", bounds, humanize.Comma(int64(summary.Eligible)))
	fmt.Println("Shortest word.........:", summary.Shortest)
	fmt.Println("Longest word..........:", summary.Longest)
}
