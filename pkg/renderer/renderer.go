package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/df07/go-wavefront-pathtracer/pkg/integrator"
	"github.com/df07/go-wavefront-pathtracer/pkg/material"
)

// Logger receives progress output during rendering
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// Scene provides the data a renderer needs to draw an image
type Scene interface {
	GetCamera() *Camera
	GetMaterials() []material.Material
	GetGeometry() []geometry.Geom
}

// Config contains render configuration
type Config struct {
	Iterations int // Target iterations (samples per pixel)
	MaxDepth   int // Maximum path depth per iteration
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Iterations: 100,
		MaxDepth:   8,
		NumWorkers: 0,
	}
}

// Renderer accumulates radiance over iterations into a persistent buffer
type Renderer struct {
	scene      Scene
	camera     *Camera
	config     Config
	width      int
	height     int
	integrator *integrator.Wavefront
	accum      []core.Vec3
	iterations int
	stats      RenderStats
	logger     Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(scene Scene, config Config, logger Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	camera := scene.GetCamera()
	camConfig := camera.Config()

	wavefront := integrator.NewWavefront(
		scene.GetGeometry(),
		scene.GetMaterials(),
		integrator.Config{
			MaxDepth:   config.MaxDepth,
			NumWorkers: config.NumWorkers,
		},
	)

	return &Renderer{
		scene:      scene,
		camera:     camera,
		config:     config,
		width:      camConfig.Width,
		height:     camConfig.Height,
		integrator: wavefront,
		accum:      make([]core.Vec3, camConfig.Width*camConfig.Height),
		logger:     logger,
	}
}

// Iterations returns the number of completed iterations
func (r *Renderer) Iterations() int {
	return r.iterations
}

// Accumulation returns the raw accumulation buffer. The buffer holds the
// sum of radiance over all completed iterations, not the average.
func (r *Renderer) Accumulation() []core.Vec3 {
	return r.accum
}

// Stats returns aggregated statistics for the render so far
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// Reset clears the accumulation buffer and iteration count so the
// renderer can be reused for a fresh render of the same scene.
func (r *Renderer) Reset() {
	for i := range r.accum {
		r.accum[i] = core.Vec3{}
	}
	r.iterations = 0
	r.stats = RenderStats{}
}

// RenderIteration traces one sample per pixel and adds the results into
// the accumulation buffer. Iteration numbers start at 1 and feed the
// per-pixel seed derivation, so a given iteration always traces the same
// paths regardless of worker count or prior history.
func (r *Renderer) RenderIteration() integrator.IterationStats {
	r.iterations++
	stats := r.integrator.RenderIteration(r.iterations, r.width, r.height, r.camera, r.accum)
	r.stats.addIteration(stats)
	return stats
}

// Render runs the configured number of iterations and returns the final image
func (r *Renderer) Render() (*image.RGBA, error) {
	if r.config.Iterations <= 0 {
		return nil, fmt.Errorf("renderer: iterations must be positive, got %d", r.config.Iterations)
	}
	for i := 0; i < r.config.Iterations; i++ {
		r.RenderIteration()
	}
	return r.Image(), nil
}

// Image converts the accumulation buffer into a displayable image by
// averaging over completed iterations, then applying gamma correction.
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.iterations == 0 {
		return img
	}

	invIterations := 1.0 / float64(r.iterations)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			colorVec := r.accum[y*r.width+x].Multiply(invIterations)
			img.SetRGBA(x, y, vec3ToColor(colorVec))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2.0 to match the accumulation in linear space
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
