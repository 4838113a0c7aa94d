package geometry

import (
	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// surfaceEpsilon pulls hit points slightly back along the ray so that
// secondary rays spawned from the hit don't immediately re-intersect
// the same surface.
const surfaceEpsilon = 1e-4

// parallelEpsilon is the threshold below which a ray direction
// component is treated as parallel to a slab or triangle plane.
const parallelEpsilon = 1e-12

// Intersection describes a surface hit in world space. T is the
// Euclidean distance from the original ray origin to the hit point,
// not the local-space ray parameter, so distances compare consistently
// across differently scaled transforms.
type Intersection struct {
	T          float64   // world-space distance from ray origin
	Point      core.Vec3 // world-space hit point
	Normal     core.Vec3 // world-space unit surface normal
	Outside    bool      // whether the ray originated outside the primitive
	MaterialID int       // index into the scene material collection
}

// Intersect tests the ray against this geometry record, dispatching on
// the shape kind. Reports false when no valid forward intersection
// exists.
func (g *Geom) Intersect(r core.Ray) (Intersection, bool) {
	switch g.Kind {
	case KindCube:
		return g.intersectCube(r)
	case KindSphere:
		return g.intersectSphere(r)
	case KindMesh:
		return g.intersectMesh(r)
	}
	return Intersection{}, false
}

// Intersect finds the closest hit of the ray across the whole geometry
// collection by linear scan. Equal distances resolve to the
// first-encountered record, so results are deterministic for a given
// collection order.
func Intersect(geoms []Geom, r core.Ray) (Intersection, bool) {
	var closest Intersection
	found := false

	for i := range geoms {
		isect, ok := geoms[i].Intersect(r)
		if ok && (!found || isect.T < closest.T) {
			closest = isect
			found = true
		}
	}

	return closest, found
}

// toLocal transforms a world-space ray into the geometry's local space.
// The direction is renormalized so local t values behave like distances
// in local space.
func (g *Geom) toLocal(r core.Ray) core.Ray {
	return core.Ray{
		Origin:    g.Transform.Inverse.MulPoint(r.Origin),
		Direction: g.Transform.Inverse.MulDirection(r.Direction).Normalize(),
	}
}
