package geometry

import (
	"math"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// intersectCube tests the ray against the unit cube (local extent
// -0.5..0.5 per axis) using the slab method. The tightest entry/exit
// interval across the three axis slabs determines the hit; when the
// entry point lies behind the origin the ray started inside and the
// exit is reported instead with Outside=false.
func (g *Geom) intersectCube(r core.Ray) (Intersection, bool) {
	q := g.toLocal(r)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	var tminNormal, tmaxNormal core.Vec3

	for axis := 0; axis < 3; axis++ {
		origin := axisComponent(q.Origin, axis)
		dir := axisComponent(q.Direction, axis)

		if math.Abs(dir) < parallelEpsilon {
			// Ray parallel to this slab: either always inside it or
			// never, with no finite crossing on this axis.
			if origin < -0.5 || origin > 0.5 {
				return Intersection{}, false
			}
			continue
		}

		t1 := (-0.5 - origin) / dir
		t2 := (0.5 - origin) / dir
		tNear := math.Min(t1, t2)
		tFar := math.Max(t1, t2)

		sign := -1.0
		if t2 < t1 {
			sign = 1.0
		}
		n := axisNormal(axis, sign)

		if tNear > 0 && tNear > tmin {
			tmin = tNear
			tminNormal = n
		}
		if tFar < tmax {
			tmax = tFar
			tmaxNormal = n
		}
	}

	if tmax < tmin || tmax <= 0 {
		return Intersection{}, false
	}

	outside := true
	if tmin <= 0 {
		// Origin inside the cube: report the exit
		tmin = tmax
		tminNormal = tmaxNormal
		outside = false
	}

	localPoint := q.At(tmin - surfaceEpsilon)
	point := g.Transform.Matrix.MulPoint(localPoint)
	normal := g.Transform.InvTranspose.MulDirection(tminNormal).Normalize()

	return Intersection{
		T:          point.Subtract(r.Origin).Length(),
		Point:      point,
		Normal:     normal,
		Outside:    outside,
		MaterialID: g.MaterialID,
	}, true
}

// axisComponent returns the axis-th component of v
func axisComponent(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// axisNormal returns the unit vector along the given axis with the given sign
func axisNormal(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	}
	return core.NewVec3(0, 0, sign)
}
