package core

import (
	"context"
	"sync"
)

// Locomotive pulls inputs from inputCh, runs engine on each and pushes the
// outcome to outCh until inputCh is closed or ctx is done. It calls wg.Done
// on return.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	onProcessed func(ctx context.Context, out Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				return
			case outCh <- pr:
				if onProcessed != nil {
					onProcessed(ctx, pr)
				}
			}
		}
	}
}

// Turnout runs engine over inputCh on the given number of lines. The returned
// channel is closed when every line has stopped. Output order is not kept.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) Out,
	onProcessed func(ctx context.Context, out Out),
	lines int) <-chan Out {

	if lines < 1 {
		lines = 1
	}

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, onProcessed, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
