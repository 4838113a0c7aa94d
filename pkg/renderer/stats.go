package renderer

import "github.com/df07/go-wavefront-pathtracer/pkg/integrator"

// RenderStats aggregates statistics across all completed iterations
type RenderStats struct {
	Iterations int   // Iterations completed
	RaysTraced int64 // Total rays traced, including primary rays
	Bounces    int64 // Total shading rounds executed
}

// AverageBounces returns the mean number of shading rounds per iteration
func (s RenderStats) AverageBounces() float64 {
	if s.Iterations == 0 {
		return 0
	}
	return float64(s.Bounces) / float64(s.Iterations)
}

func (s *RenderStats) addIteration(is integrator.IterationStats) {
	s.Iterations++
	s.RaysTraced += int64(is.RaysTraced)
	s.Bounces += int64(is.Bounces)
}
