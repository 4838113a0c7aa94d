package geometry

import (
	"math"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// intersectMesh tests every triangle of the mesh and keeps the closest
// hit. No acceleration structure: the linear scan is the correctness
// baseline and keeps results deterministic in triangle order.
func (g *Geom) intersectMesh(r core.Ray) (Intersection, bool) {
	q := g.toLocal(r)

	var closest Intersection
	found := false

	for i := range g.Triangles {
		isect, ok := g.intersectTriangle(&g.Triangles[i], r, q)
		if ok && (!found || isect.T < closest.T) {
			closest = isect
			found = true
		}
	}

	return closest, found
}

// intersectTriangle runs Möller–Trumbore against one triangle in local
// space, then interpolates an area-weighted smooth normal from the
// authored vertex normals. Triangles without authored normals fall
// back to the flat face normal, computed per vertex from its own edge
// pair so all three agree in orientation. The final world normal is
// flipped toward the ray origin if it faces away.
func (g *Geom) intersectTriangle(tri *Triangle, worldRay core.Ray, q core.Ray) (Intersection, bool) {
	edge1 := tri.V[1].Subtract(tri.V[0])
	edge2 := tri.V[2].Subtract(tri.V[0])

	h := q.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Degenerate triangle or ray parallel to its plane
	if math.Abs(a) < parallelEpsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := q.Origin.Subtract(tri.V[0])
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Intersection{}, false
	}

	qVec := s.Cross(edge1)
	v := f * q.Direction.Dot(qVec)
	if v < 0 || u+v > 1 {
		return Intersection{}, false
	}

	tParam := f * edge2.Dot(qVec)
	if tParam <= 0 {
		return Intersection{}, false // behind the origin
	}

	baryPoint := tri.V[0].Multiply(1 - u - v).
		Add(tri.V[1].Multiply(u)).
		Add(tri.V[2].Multiply(v))
	point := g.Transform.Matrix.MulPoint(baryPoint)

	smooth := interpolateNormal(tri, baryPoint)
	normal := g.Transform.InvTranspose.MulDirection(smooth).Normalize()

	outside := true
	if normal.Dot(worldRay.Direction) > 0 {
		normal = normal.Negate()
		outside = false
	}

	return Intersection{
		T:          point.Subtract(worldRay.Origin).Length(),
		Point:      point,
		Normal:     normal,
		Outside:    outside,
		MaterialID: g.MaterialID,
	}, true
}

// interpolateNormal computes the area-weighted smooth normal at a point
// inside the triangle. The weight of each vertex normal is the area of
// the sub-triangle opposite that vertex over the full triangle area,
// which is exactly the barycentric weight, so the interpolation reduces
// to the authored normal at a vertex.
func interpolateNormal(tri *Triangle, p core.Vec3) core.Vec3 {
	hasNormals := tri.N[0].LengthSquared() > 0 &&
		tri.N[1].LengthSquared() > 0 &&
		tri.N[2].LengthSquared() > 0

	var n0, n1, n2 core.Vec3
	if hasNormals {
		n0, n1, n2 = tri.N[0], tri.N[1], tri.N[2]
	} else {
		// Flat face normal from each vertex's own edge pair, taken in
		// cyclic winding order so all three agree in orientation
		n0 = tri.V[1].Subtract(tri.V[0]).Cross(tri.V[2].Subtract(tri.V[0])).Normalize()
		n1 = tri.V[2].Subtract(tri.V[1]).Cross(tri.V[0].Subtract(tri.V[1])).Normalize()
		n2 = tri.V[0].Subtract(tri.V[2]).Cross(tri.V[1].Subtract(tri.V[2])).Normalize()
	}

	area := 0.5 * tri.V[0].Subtract(tri.V[1]).Cross(tri.V[2].Subtract(tri.V[1])).Length()
	if area < parallelEpsilon {
		return n0
	}

	w0 := 0.5 * tri.V[1].Subtract(p).Cross(tri.V[2].Subtract(p)).Length() / area
	w1 := 0.5 * tri.V[0].Subtract(p).Cross(tri.V[2].Subtract(p)).Length() / area
	w2 := 0.5 * tri.V[0].Subtract(p).Cross(tri.V[1].Subtract(p)).Length() / area

	return n0.Multiply(w0).Add(n1.Multiply(w1)).Add(n2.Multiply(w2)).Normalize()
}
