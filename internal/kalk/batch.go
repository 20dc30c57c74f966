package kalk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of evaluating one input of a batch. Exactly one of
// Value and Err is meaningful.
type Outcome struct {
	Input string
	Value float64
	Err   error
}

// EvaluateAll evaluates every input independently using at most workers
// goroutines. Outcomes are returned in input order. The returned error is
// only ever the context's error; failures of single inputs are kept in their
// Outcome.
func (c *Calculator) EvaluateAll(ctx context.Context, inputs []string, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			value, err := c.Evaluate(input)
			outcomes[i] = Outcome{input, value, err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait comes back clean when ctx was cancelled before any goroutine
	// noticed.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.logger.Debug("batch evaluated", "inputs", len(inputs), "workers", workers)
	return outcomes, nil
}
