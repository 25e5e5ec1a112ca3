package gocube

import (
	"context"
	"fmt"
)

// Option configures Explorer behavior.
type Option func(*config)

type config struct {
	ctx        context.Context
	sampleSize int
	maxDepth   int
	onLayer    func(distance, count int)

	// recorded while applying options, surfaced by NewExplorer
	err error
}

func defaultConfig() *config {
	return &config{
		ctx:        context.Background(),
		sampleSize: 5,
		maxDepth:   0,
		onLayer:    func(int, int) {},
	}
}

// WithContext sets a context that is checked once per dequeued state.
// A cancelled search returns the context's error.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithSampleSize sets how many states Diameter keeps per distance layer.
// The default is 5. Zero keeps no samples.
func WithSampleSize(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: sample size cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.sampleSize = n
	}
}

// WithMaxDepth stops exploring beyond distance d. Zero disables the limit.
// States farther than d are never discovered, so ShortestPath reports
// ErrNotFound for them and Diameter reports a truncated layering.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// WithOnLayer registers a callback that runs when Diameter finishes a
// distance layer, with the layer's distance and population.
func WithOnLayer(fn func(distance, count int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onLayer = fn
		}
	}
}
