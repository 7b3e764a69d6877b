package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/Avalanche-io/counter"
	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/soapiestwaffles/input-gen/internal/pkg/assets"
	"github.com/soapiestwaffles/input-gen/internal/pkg/batches"
	"github.com/soapiestwaffles/input-gen/internal/pkg/corpus"
	"github.com/soapiestwaffles/input-gen/internal/pkg/generators"
	"github.com/soapiestwaffles/input-gen/internal/pkg/sinks"
	"github.com/soapiestwaffles/input-gen/internal/pkg/ui/tui"
	"github.com/soapiestwaffles/input-gen/internal/pkg/workers"
	"github.com/soapiestwaffles/input-gen/pkg/aws/s3"
)

const releaseURL = "https://github.com/soapiestwaffles/input-gen/releases"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	cli struct {
		Version bool `help:"display version information" optional:""`
		Debug   bool `help:"enable debugging output (warning: this is very verbose)" optional:""`
		Yes     bool `help:"bypass user prompts and proceed automatically" optional:"" short:"y"`

		Corpus    string `help:"word source: embedded, fakelish[:N], a file path, an http(s):// URL or s3://bucket/key" default:"embedded" short:"c" env:"INPUTGEN_CORPUS"`
		MinLength int    `help:"words must be longer than this many characters" default:"4"`
		MaxLength int    `help:"words must be shorter than this many characters" default:"15"`

		OutDir        string `help:"directory input files are written to" default:"inputs" short:"o"`
		MinCount      int    `help:"word count of the first group of files" default:"2"`
		MaxCount      int    `help:"word count of the last group of files" default:"10"`
		FilesPerCount int    `help:"number of files written for each word count" default:"10"`
		StartIndex    int    `help:"number of the first input file" default:"1"`
		Seed          int64  `help:"random seed, 0 picks one from the clock" default:"0"`
		Concurrency   int    `help:"number of files written in parallel" default:"1"`

		AWSEndpoint    string `help:"override AWS endpoint address" short:"e" optional:"" env:"AWS_ENDPOINT"`
		Region         string `help:"AWS region used for S3 requests" optional:"" env:"AWS_REGION"`
		Profile        string `help:"AWS shared config profile" optional:"" env:"AWS_PROFILE"`
		S3Bucket       string `name:"s3-bucket" help:"upload input files to this S3 bucket instead of --out-dir" optional:""`
		S3Prefix       string `name:"s3-prefix" help:"key prefix for uploaded input files" default:"inputs/"`
		S3Select       bool   `name:"s3-select" help:"pick the upload bucket interactively" optional:""`
		S3CreateBucket bool   `name:"s3-create-bucket" help:"create the upload bucket if it does not exist" optional:""`
	}
)

func main() {
	kongCtx := kong.Parse(&cli,
		kong.Name("input-gen"),
		kong.Description("Generate files of random words drawn from a word corpus."))

	fmt.Println(assets.Logo)

	//  Show version information and exit
	if cli.Version {
		fmt.Println("Find new releases at", releaseURL)
		fmt.Println("")
		fmt.Println("version....:", version)
		fmt.Println("commit.....:", commit)
		fmt.Println("date.......:", date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false})
	if cli.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Info().Msg("debug logging output enabled")
	} else {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	runID := uuid.NewString()
	log.Logger = log.With().Str("run", runID).Logger()
	log.Debug().Msg("flags:\n" + spew.Sdump(cli))

	bounds := corpus.Bounds{Min: cli.MinLength, Max: cli.MaxLength}
	kongCtx.FatalIfErrorf(bounds.Validate())

	plan := batches.Plan{
		MinCount:      cli.MinCount,
		MaxCount:      cli.MaxCount,
		FilesPerCount: cli.FilesPerCount,
		StartIndex:    cli.StartIndex,
	}
	kongCtx.FatalIfErrorf(plan.Validate())

	if cli.AWSEndpoint != "" {
		fmt.Println("Using AWS endpoint:", cli.AWSEndpoint)
	}

	// S3 is only set up when a corpus or the output lives there
	var s3svc s3.Service
	if strings.HasPrefix(cli.Corpus, "s3://") || cli.S3Bucket != "" || cli.S3Select {
		s3svc = newS3Service(cli.Region)
	}

	// Load corpus
	loadingSpinner := spinner.New(spinner.CharSets[13], 100*time.Millisecond)
	loadingSpinner.Suffix = " loading corpus..."
	err := loadingSpinner.Color("blue", "bold")
	kongCtx.FatalIfErrorf(err)
	if !cli.Debug {
		loadingSpinner.Start()
	}
	wordList, err := corpus.Load(ctx, cli.Corpus, corpus.WithS3Service(s3svc))
	loadingSpinner.Stop()
	kongCtx.FatalIfErrorf(err)

	sampler, err := generators.NewSampler(wordList, generators.WithBounds(bounds), generators.WithSeed(cli.Seed))
	kongCtx.FatalIfErrorf(err)

	fmt.Printf("📚 corpus %q: %s words, %s with %s\n", cli.Corpus,
		humanize.Comma(int64(wordList.Len())), humanize.Comma(int64(sampler.Len())), bounds)
	fmt.Println("🎲 seed", sampler.Seed())
	fmt.Println("")

	sink, err := newSink(ctx, s3svc)
	kongCtx.FatalIfErrorf(err)

	if !confirmOverwrite(ctx, sink) {
		fmt.Println("Command aborted!")
		os.Exit(1)
	}

	log.Debug().Str("location", sink.Location()).Int("files", plan.Len()).Int("concurrency", cli.Concurrency).Msg("starting generation")
	err = generate(ctx, sampler, sink, plan, cli.Concurrency)
	kongCtx.FatalIfErrorf(err)
}

func newS3Service(region string) s3.Service {
	return s3.NewService(
		s3.WithAWSEndpoint(cli.AWSEndpoint),
		s3.WithRegion(region),
		s3.WithProfile(cli.Profile))
}

// newSink returns the local directory sink, or the S3 sink when a bucket was given or selected
func newSink(ctx context.Context, s3svc s3.Service) (sinks.Sink, error) {
	if cli.S3Bucket == "" && !cli.S3Select {
		return sinks.NewDir(cli.OutDir), nil
	}

	bucket := cli.S3Bucket
	if cli.S3Select {
		log.Debug().Msg("s3: get all buckets")
		buckets, err := s3svc.GetAllBuckets(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Println("")
		bucket, err = tui.SelectBucketsPrompt(buckets)
		if err != nil {
			return nil, fmt.Errorf("selecting bucket: %w", err)
		}
		fmt.Println("")
	}

	log.Debug().Str("bucket", bucket).Msg("s3: get bucket region")
	bucketRegion, err := s3svc.GetBucketRegion(ctx, bucket)
	if err != nil {
		if !cli.S3CreateBucket {
			return nil, fmt.Errorf("detecting region of bucket %s: %w", bucket, err)
		}

		bucketRegion = cli.Region
		if bucketRegion == "" {
			bucketRegion = "us-east-1"
		}
		log.Debug().Str("bucket", bucket).Str("region", bucketRegion).Msg("s3: create bucket")
		if err := s3svc.CreateBucketSimple(ctx, bucket, bucketRegion, false); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
		fmt.Println("🪣 created bucket", bucket)
	}
	fmt.Println("🌎 bucket located in", bucketRegion)
	fmt.Println("")

	// recreate s3svc with bucket's region
	return sinks.NewS3(newS3Service(bucketRegion), bucket, cli.S3Prefix), nil
}

// confirmOverwrite lets local files be replaced silently; existing S3 objects need the user to
// confirm twice unless --yes was given
func confirmOverwrite(ctx context.Context, sink sinks.Sink) bool {
	_, local := sink.(*sinks.Dir)

	existing, err := sink.Existing(ctx)
	if err != nil {
		if local {
			log.Debug().Err(err).Str("location", sink.Location()).Msg("could not list existing input files")
			return true
		}
		fmt.Println("Could not list existing input files under", sink.Location()+":", err)
		return cli.Yes
	}
	if len(existing) == 0 {
		return true
	}

	log.Debug().Int("existing", len(existing)).Str("location", sink.Location()).Msg("existing input files will be overwritten")
	if local || cli.Yes {
		return true
	}

	fmt.Println("⚠️   !!! WARNING !!!  ⚠️")
	fmt.Println("Existing input files under", sink.Location(), "will be replaced")
	fmt.Println("")

	if !tui.TypeMatchingPhrase() {
		fmt.Println("")
		fmt.Println("Phrase did not match. Exiting!")
		return false
	}

	return tui.ConfirmOverwrite(sink.Location(), len(existing))
}

// Write operation w/progress bar
func generate(ctx context.Context, sampler *generators.Sampler, sink sinks.Sink, plan batches.Plan, concurrency int) error {
	wordCount := counter.New()
	byteCount := counter.New()

	bar := progressbar.Default(int64(plan.Len()), "writing inputs...")
	err := bar.RenderBlank()
	if err != nil {
		return err
	}

	progress := make(chan workers.Result, concurrency*2)
	var progressWG sync.WaitGroup
	progressWG.Add(1)
	go func() {
		for result := range progress {
			wordCount.Add(int64(result.Batch.Count))
			byteCount.Add(int64(result.Bytes))
			_ = bar.Add(1)
		}
		progressWG.Done()
	}()

	written, err := workers.Run(ctx, sampler, sink, plan, concurrency, progress)
	close(progress)
	progressWG.Wait()
	if err != nil {
		return err
	}

	fmt.Println("")
	fmt.Println("")
	fmt.Println("📝  --- Generation complete! ---  📝")
	fmt.Println("")
	fmt.Printf("Wrote %s files (%s words, %s) to %s\n",
		humanize.Comma(int64(written)),
		humanize.Comma(wordCount.Get()),
		humanize.Bytes(uint64(byteCount.Get())),
		sink.Location())

	return nil
}
