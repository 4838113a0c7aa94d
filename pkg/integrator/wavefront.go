package integrator

import (
	"github.com/df07/go-wavefront-pathtracer/pkg/core"
	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/df07/go-wavefront-pathtracer/pkg/material"
)

// Camera generates primary rays for pixel indices
type Camera interface {
	GetRay(pixelIndex int, sampler core.Sampler) core.Ray
}

// PathSegment carries the state of one in-flight light path: its
// current ray, the accumulated throughput multiplier, the pixel it
// reports to, and its remaining bounce budget.
type PathSegment struct {
	Ray              core.Ray
	Throughput       core.Vec3
	PixelIndex       int
	RemainingBounces int
	Alive            bool
}

// Config contains integrator configuration
type Config struct {
	MaxDepth   int // maximum bounces per path
	NumWorkers int // parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   8,
		NumWorkers: 0,
	}
}

// IterationStats describes one iteration's work
type IterationStats struct {
	RaysTraced     int   // total intersection tests dispatched
	Bounces        int   // bounce rounds executed
	AlivePerBounce []int // surviving path count after each bounce
}

// Wavefront advances one path per pixel through the scene in
// bounce-synchronized rounds: intersect all active paths, shade and
// scatter them, then compact the terminated ones away so the next
// round only schedules live paths. Geometry and materials are
// read-only for the duration of a render and shared by all workers.
type Wavefront struct {
	geoms     []geometry.Geom
	materials []material.Material
	config    Config
}

// NewWavefront creates a wavefront integrator over the given scene data
func NewWavefront(geoms []geometry.Geom, materials []material.Material, config Config) *Wavefront {
	return &Wavefront{
		geoms:     geoms,
		materials: materials,
		config:    config,
	}
}

// RenderIteration seeds one path per pixel from the camera and traces
// all of them to termination, adding each path's radiance into the
// accumulation buffer. Every path writes only its own pixel's bucket,
// at most once, so no locking is needed. Results are bit-identical for
// the same iteration number regardless of worker count.
func (w *Wavefront) RenderIteration(iteration, width, height int, camera Camera, accum []core.Vec3) IterationStats {
	segments := make([]PathSegment, width*height)

	parallelFor(len(segments), w.config.NumWorkers, func(start, end int) {
		for i := start; i < end; i++ {
			sampler := core.NewSeededSampler(iteration, i, 0)
			segments[i] = PathSegment{
				Ray:              camera.GetRay(i, sampler),
				Throughput:       core.NewVec3(1, 1, 1),
				PixelIndex:       i,
				RemainingBounces: w.config.MaxDepth,
				Alive:            true,
			}
		}
	})

	stats := IterationStats{}
	isects := make([]geometry.Intersection, len(segments))
	hits := make([]bool, len(segments))

	for depth := 0; depth < w.config.MaxDepth && len(segments) > 0; depth++ {
		// Intersection round: a bounce is a barrier, every active path
		// resolves its hit before any path is shaded
		parallelFor(len(segments), w.config.NumWorkers, func(start, end int) {
			for i := start; i < end; i++ {
				isects[i], hits[i] = geometry.Intersect(w.geoms, segments[i].Ray)
			}
		})

		// Shade round: scatter or terminate each path independently
		parallelFor(len(segments), w.config.NumWorkers, func(start, end int) {
			for i := start; i < end; i++ {
				w.shade(iteration, depth, &segments[i], isects[i], hits[i], accum)
			}
		})

		stats.RaysTraced += len(segments)
		stats.Bounces++

		segments = Compact(segments)
		stats.AlivePerBounce = append(stats.AlivePerBounce, len(segments))
	}

	// Paths still alive here exhausted their bounce budget and
	// contribute nothing further
	return stats
}

// shade resolves one path's bounce: misses and emitter hits terminate
// the path (the emitter contributing throughput × color × emittance),
// everything else scatters and attenuates the throughput.
func (w *Wavefront) shade(iteration, depth int, seg *PathSegment, isect geometry.Intersection, hit bool, accum []core.Vec3) {
	if !hit {
		// Escaped the scene without reaching a light
		seg.Alive = false
		return
	}

	mat := &w.materials[isect.MaterialID]
	if mat.IsEmissive() {
		contribution := seg.Throughput.MultiplyVec(mat.Emitted())
		if contribution.IsFinite() {
			accum[seg.PixelIndex] = accum[seg.PixelIndex].Add(contribution)
		}
		seg.Alive = false
		return
	}

	// Depth slot 0 belongs to camera jitter, so bounce sampling starts
	// at slot depth+1 to keep the streams disjoint
	sampler := core.NewSeededSampler(iteration, seg.PixelIndex, depth+1)
	result, ok := mat.Scatter(seg.Ray, isect.Point, isect.Normal, isect.Outside, sampler)
	if !ok {
		seg.Alive = false
		return
	}

	seg.Ray = result.Scattered
	seg.Throughput = seg.Throughput.MultiplyVec(result.Attenuation)
	seg.RemainingBounces--
	if seg.RemainingBounces <= 0 {
		seg.Alive = false
	}
}
