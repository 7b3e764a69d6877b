package workers

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/soapiestwaffles/input-gen/internal/pkg/batches"
	"github.com/soapiestwaffles/input-gen/internal/pkg/generators"
	"github.com/soapiestwaffles/input-gen/internal/pkg/sinks"
	"golang.org/x/sync/errgroup"
)

// Result describes a written batch
type Result struct {
	Batch    batches.Batch
	Location string
	Bytes    int
}

// WriteBatch samples batch.Count words and writes them, newline separated, to the batch's file.
// The words come from the sampler stream for batch.Index, so a seed always reproduces the same file.
func WriteBatch(ctx context.Context, sampler *generators.Sampler, sink sinks.Sink, batch batches.Batch) (Result, error) {
	words := sampler.SampleWords(sampler.Rand(batch.Index), batch.Count)
	body := []byte(strings.Join(words, "\n"))

	location, err := sink.Write(ctx, batch.FileName(), body)
	if err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("location", location).
		Int("index", batch.Index).
		Msgf("%d real words (%s) saved to %s", len(words), sampler.Bounds(), location)

	return Result{Batch: batch, Location: location, Bytes: len(body)}, nil
}

// QueueBatches sends every batch to queue, stopping early if ctx is cancelled.
// It does not close queue.
func QueueBatches(ctx context.Context, list []batches.Batch, queue chan<- batches.Batch) (int, error) {
	queued := 0
	for _, b := range list {
		select {
		case <-ctx.Done():
			return queued, ctx.Err()
		case queue <- b:
			queued++
		}
	}
	return queued, nil
}

// WriteFromChannel writes batches from input until it is closed. Each result is reported on
// progress when progress is not nil.
func WriteFromChannel(ctx context.Context, sampler *generators.Sampler, sink sinks.Sink, input <-chan batches.Batch, progress chan<- Result) (int, error) {
	written := 0
	for b := range input {
		result, err := WriteBatch(ctx, sampler, sink, b)
		if err != nil {
			return written, err
		}
		written++

		if progress != nil {
			select {
			case <-ctx.Done():
				return written, ctx.Err()
			case progress <- result:
			}
		}
	}
	return written, nil
}

// Run writes every batch of plan using concurrency workers. The first failure cancels the
// remaining work and is returned.
func Run(ctx context.Context, sampler *generators.Sampler, sink sinks.Sink, plan batches.Plan, concurrency int, progress chan<- Result) (int, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	queue := make(chan batches.Batch, concurrency*2)
	counts := make(chan int, concurrency)

	g.Go(func() error {
		defer close(queue)

		n, err := QueueBatches(ctx, plan.Batches(), queue)
		if err != nil {
			return err
		}
		log.Debug().Int("totalBatchesAddedToQueue", n).Msg("all batches added to queue")

		return nil
	})

	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			n, err := WriteFromChannel(ctx, sampler, sink, queue, progress)
			counts <- n
			if err != nil {
				return err
			}
			log.Debug().Int("batchesWritten", n).Msg("worker finished")
			return nil
		})
	}

	err := g.Wait()
	close(counts)

	total := 0
	for n := range counts {
		total += n
	}

	return total, err
}
