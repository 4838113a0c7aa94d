package material

import (
	"math"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// Material is a flat record of one surface's optical parameters.
// Materials are read-only and shared by index across many geometry
// records, so the renderer can keep them in a single slice.
type Material struct {
	Color             core.Vec3 // diffuse base color
	SpecularColor     core.Vec3 // mirror/transmission tint
	SpecularExponent  float64   // highlight exponent (reserved for glossy lobes)
	Reflective        float64   // >0 enables perfect mirror reflection
	Refractive        float64   // >0 enables refraction through the surface
	IndexOfRefraction float64   // e.g. 1.5 for glass
	Emittance         float64   // >0 marks the material as a light source
}

// IsEmissive reports whether this material terminates paths as a light source
func (m *Material) IsEmissive() bool {
	return m.Emittance > 0
}

// Emitted returns the radiance this material emits toward an incoming ray
func (m *Material) Emitted() core.Vec3 {
	return m.Color.Multiply(m.Emittance)
}

// ScatterResult contains the outgoing ray and the throughput multiplier
// for one material interaction
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Vec3
}

// Scatter determines the outgoing ray and throughput multiplier for a
// hit on this material. The normal is expected to oppose the incoming
// ray direction (the intersection routines guarantee this), and outside
// tells refraction whether the ray is entering or exiting. Returns
// false when the material does not scatter (emissive surfaces absorb
// the path; their contribution is handled by the integrator).
func (m *Material) Scatter(rayIn core.Ray, point, normal core.Vec3, outside bool, sampler core.Sampler) (ScatterResult, bool) {
	if m.IsEmissive() {
		return ScatterResult{}, false
	}

	unitDir := rayIn.Direction.Normalize()

	switch {
	case m.Reflective > 0:
		return ScatterResult{
			Scattered:   core.NewRay(point, reflect(unitDir, normal)),
			Attenuation: m.SpecularColor,
		}, true

	case m.Refractive > 0:
		// Entering uses 1/ior, exiting inverts the ratio
		ratio := m.IndexOfRefraction
		if outside {
			ratio = 1.0 / m.IndexOfRefraction
		}

		cosTheta := math.Min(-unitDir.Dot(normal), 1.0)
		sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

		var direction core.Vec3
		if ratio*sinTheta > 1.0 {
			// Total internal reflection: fall back to the mirror bounce
			direction = reflect(unitDir, normal)
		} else {
			direction = refract(unitDir, normal, ratio)
		}

		return ScatterResult{
			Scattered:   core.NewRay(point, direction),
			Attenuation: m.SpecularColor,
		}, true

	default:
		// Cosine-weighted diffuse bounce. The cosine and inverse-PDF
		// terms cancel analytically, leaving the base color alone.
		direction := core.SampleCosineHemisphere(normal, sampler.Get2D())
		return ScatterResult{
			Scattered:   core.NewRay(point, direction),
			Attenuation: m.Color,
		}, true
	}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract calculates the refraction of a vector using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
