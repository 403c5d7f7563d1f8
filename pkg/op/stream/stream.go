package stream

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ib-77/composeop/pkg/op"
	"github.com/ib-77/composeop/pkg/op/core"
)

// Job is one input to a pipeline together with its position in the feed.
type Job struct {
	Seq   int
	Value any
}

// Item is the outcome of running a pipeline over one Job.
type Item struct {
	Job
	Outcome op.Outcome[any]
}

type CancellationHandlers struct {
	// OnCancelUnprocessed receives a job taken from the feed but never run.
	OnCancelUnprocessed func(ctx context.Context, job Job)
	// OnCancelProcessed receives an item that was run but not delivered.
	OnCancelProcessed func(ctx context.Context, item Item)
}

// FromValues feeds values as Jobs, stopping early if ctx is done.
func FromValues(ctx context.Context, values ...any) <-chan Job {
	in := make(chan Job)

	go func() {
		defer close(in)

		for i, v := range values {
			select {
			case in <- Job{Seq: i, Value: v}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Run invokes fn on every job from inputCh using the given number of
// lines (worker goroutines). Pending results are awaited on the line that
// produced them. The output channel closes once inputCh is drained or ctx
// is done; items arrive in completion order.
func Run(ctx context.Context, fn any, inputCh <-chan Job, lines int) <-chan Item {
	return RunWith(ctx, fn, inputCh, lines, CancellationHandlers{})
}

func RunWith(ctx context.Context, fn any, inputCh <-chan Job, lines int,
	handlers CancellationHandlers) <-chan Item {

	out := make(chan Item)
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go locomotive(ctx, fn, inputCh, out, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func locomotive(ctx context.Context, fn any, inputCh <-chan Job, outCh chan<- Item,
	handlers CancellationHandlers, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				core.Logger(ctx).Debug("job cancelled before run", zap.Int("seq", job.Seq))
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, job)
				}
				return
			}

			item := Item{Job: job, Outcome: op.FromPair[any](invoke(ctx, fn, job.Value))}

			select {
			case <-ctx.Done():
				core.Logger(ctx).Debug("job result dropped",
					zap.Int("seq", job.Seq),
					zap.Stringer("outcome", item.Outcome.Id()),
					zap.Bool("failed", item.Outcome.IsFailure()))
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, item)
				}
				return
			case outCh <- item:
			}
		}
	}
}

func invoke(ctx context.Context, fn any, v any) (any, error) {
	result, err := op.Call(ctx, fn, v)
	if err != nil {
		return nil, err
	}
	if p, ok := result.(op.Pending); ok {
		return p.Await(ctx)
	}
	return result, nil
}

// Collect drains ch and returns its items in feed order.
func Collect(ch <-chan Item) []Item {
	var items []Item
	for item := range ch {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b Item) int {
		return a.Seq - b.Seq
	})
	return items
}
