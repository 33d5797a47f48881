package pipeline

import (
	"context"
	"log"
	"sync"
)

// Pipeline applies a fixed sequence of stages to every item read from a
// channel. Items are consumed strictly one after another.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// New constructs a Pipeline from the provided stages.
func New[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// Process consumes items from in until the channel is closed. For each item
// the stages run in order, with a barrier between stages; step errors are
// logged and the item continues through the remaining stages. The context is
// handed to steps for cancellation; the loop itself runs until in is closed.
func (p *Pipeline[T]) Process(ctx context.Context, in <-chan *T) {
	for item := range in {
		for _, stage := range p.stages {
			var wg sync.WaitGroup
			for _, step := range stage.steps {
				wg.Add(1)
				go func(step Step[T]) {
					defer wg.Done()
					if err := step(ctx, item); err != nil {
						log.Printf("Step failed: %v", err)
					}
				}(step)
			}
			wg.Wait()
		}
	}
}
