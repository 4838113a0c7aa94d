package geometry

import (
	"math"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// sphereRadius is the local radius of the unit-diameter sphere
const sphereRadius = 0.5

// intersectSphere tests the ray against the unit-diameter sphere
// centered at the local origin. Of the two quadratic roots the smaller
// positive one wins when both are positive (origin outside); exactly
// one positive root means the origin is inside and the normal is
// flipped inward.
func (g *Geom) intersectSphere(r core.Ray) (Intersection, bool) {
	q := g.toLocal(r)

	b := q.Origin.Dot(q.Direction)
	radicand := b*b - (q.Origin.Dot(q.Origin) - sphereRadius*sphereRadius)
	if radicand < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(radicand)
	t1 := -b + sqrtD
	t2 := -b - sqrtD

	var t float64
	outside := true
	switch {
	case t1 < 0 && t2 < 0:
		return Intersection{}, false
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	default:
		t = math.Max(t1, t2)
		outside = false
	}

	localPoint := q.At(t - surfaceEpsilon)
	point := g.Transform.Matrix.MulPoint(localPoint)
	normal := g.Transform.InvTranspose.MulDirection(localPoint).Normalize()
	if !outside {
		normal = normal.Negate()
	}

	return Intersection{
		T:          point.Subtract(r.Origin).Length(),
		Point:      point,
		Normal:     normal,
		Outside:    outside,
		MaterialID: g.MaterialID,
	}, true
}
