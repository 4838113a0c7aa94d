package renderer

import (
	"math"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// CameraConfig contains camera setup parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up vector for orientation
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	VFov   float64   // Vertical field of view in degrees
}

// Camera generates primary rays through image pixels with per-sample jitter
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w points away from the look direction
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a jittered primary ray through the pixel at the given
// flat index (row-major, row 0 at the top of the image).
func (c *Camera) GetRay(pixelIndex int, sampler core.Sampler) core.Ray {
	x := pixelIndex % c.config.Width
	y := pixelIndex / c.config.Width

	jitter := sampler.Get2D()
	s := (float64(x) + jitter.X) / float64(c.config.Width)
	t := (float64(c.config.Height-1-y) + jitter.Y) / float64(c.config.Height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()

	return core.NewRay(c.origin, direction)
}
