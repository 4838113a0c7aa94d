package geometry

import (
	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// ShapeKind discriminates the geometry variants. Geometry is stored as
// flat tagged records rather than an interface hierarchy so the
// per-bounce intersection loop dispatches on a branch instead of a
// virtual call.
type ShapeKind int

const (
	KindCube ShapeKind = iota
	KindSphere
	KindMesh
)

// String returns the shape kind name
func (k ShapeKind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindSphere:
		return "sphere"
	case KindMesh:
		return "mesh"
	}
	return "unknown"
}

// Triangle is a single mesh triangle in local space. A zero-length
// entry in N means that vertex has no authored normal; the flat face
// normal is substituted at intersection time.
type Triangle struct {
	V [3]core.Vec3 // vertex positions
	N [3]core.Vec3 // vertex normals, may be zero
}

// Geom is one geometry record: a shape kind, its local-to-world
// transform (with inverse and inverse-transpose kept consistent), and
// the index of its material in the scene's material collection. Mesh
// records additionally carry their triangle buffer.
type Geom struct {
	Kind       ShapeKind
	Transform  core.Transform
	MaterialID int
	Triangles  []Triangle // only for KindMesh
}

// NewCube creates a unit cube record (local extent -0.5..0.5 per axis)
func NewCube(transform core.Transform, materialID int) Geom {
	return Geom{Kind: KindCube, Transform: transform, MaterialID: materialID}
}

// NewSphere creates a unit-diameter sphere record (local radius 0.5)
func NewSphere(transform core.Transform, materialID int) Geom {
	return Geom{Kind: KindSphere, Transform: transform, MaterialID: materialID}
}

// NewMesh creates a triangle mesh record from local-space triangles
func NewMesh(transform core.Transform, materialID int, triangles []Triangle) Geom {
	return Geom{Kind: KindMesh, Transform: transform, MaterialID: materialID, Triangles: triangles}
}
