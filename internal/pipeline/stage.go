// Package pipeline provides a small generic pipeline: independent steps run
// in parallel within a stage, stages run sequentially per item, and items are
// processed one at a time. The last property is what makes it safe to give a
// stage exclusive write access to shared state, such as the accumulating
// location map.
package pipeline

import (
	"context"
)

// Step is a single operation that mutates the given item in place. Steps in
// the same stage may run concurrently on the same item and must coordinate on
// shared fields. A failing step returns an error; the pipeline logs it and
// keeps going.
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that are safe to execute in parallel for one item. The
// pipeline waits for the whole stage before moving on.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}
