package renderer

import (
	"context"
	"image"
	"time"

	"github.com/df07/go-wavefront-pathtracer/pkg/integrator"
)

// IterationResult contains the state of the render after one iteration
type IterationResult struct {
	Iteration int
	Image     *image.RGBA
	Stats     integrator.IterationStats
	IsLast    bool
}

// RenderOptions configures progressive rendering behavior
type RenderOptions struct {
	UpdateInterval int // Send an image every N iterations (0 = every iteration)
}

// RenderProgressive renders all configured iterations with channel-based
// communication. Results arrive on the first channel; a failure or
// cancellation arrives on the second. Both channels are closed when
// rendering stops.
func (r *Renderer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan IterationResult, <-chan error) {
	resultChan := make(chan IterationResult, 1)
	errChan := make(chan error, 1)

	interval := options.UpdateInterval
	if interval <= 0 {
		interval = 1
	}

	go func() {
		defer close(resultChan)
		defer close(errChan)

		r.logger.Printf("Starting progressive render: %d iterations, max depth %d\n",
			r.config.Iterations, r.config.MaxDepth)
		startTime := time.Now()

		for i := 1; i <= r.config.Iterations; i++ {
			select {
			case <-ctx.Done():
				r.logger.Printf("Render cancelled before iteration %d\n", i)
				errChan <- ctx.Err()
				return
			default:
			}

			stats := r.RenderIteration()

			isLast := i == r.config.Iterations
			if !isLast && i%interval != 0 {
				continue
			}

			result := IterationResult{
				Iteration: i,
				Image:     r.Image(),
				Stats:     stats,
				IsLast:    isLast,
			}

			select {
			case resultChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}

		r.logger.Printf("Render completed: %d iterations in %v\n",
			r.config.Iterations, time.Since(startTime))
	}()

	return resultChan, errChan
}
