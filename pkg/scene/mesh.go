package scene

import (
	"github.com/df07/go-wavefront-pathtracer/pkg/core"
	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/df07/go-wavefront-pathtracer/pkg/material"
	"github.com/df07/go-wavefront-pathtracer/pkg/renderer"
)

// NewMeshScene creates a scene with two triangle meshes on a ground
// plane: a smooth-shaded octahedron with authored vertex normals and a
// flat-shaded tetrahedron relying on geometric normals.
func NewMeshScene() *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center: core.NewVec3(0, 2, 7),
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  800,
		Height: 600,
		VFov:   45,
	})

	const (
		matLight = iota
		matGround
		matGold
		matBlue
	)

	materials := []material.Material{
		matLight:  {Color: core.NewVec3(1, 1, 1), Emittance: 6.0},
		matGround: {Color: core.NewVec3(0.55, 0.55, 0.55)},
		matGold:   {Color: core.NewVec3(0.9, 0.7, 0.2)},
		matBlue:   {Color: core.NewVec3(0.25, 0.35, 0.85)},
	}

	noRotation := core.NewVec3(0, 0, 0)

	geoms := []geometry.Geom{
		geometry.NewCube(core.NewTransform(
			core.NewVec3(0, 8, 0),
			noRotation,
			core.NewVec3(12, 0.5, 12),
		), matLight),
		geometry.NewCube(core.NewTransform(
			core.NewVec3(0, -0.05, 0),
			noRotation,
			core.NewVec3(30, 0.1, 30),
		), matGround),
		geometry.NewMesh(core.NewTransform(
			core.NewVec3(-1.6, 1.2, 0),
			core.NewVec3(0, 30, 0),
			core.NewVec3(1.2, 1.2, 1.2),
		), matGold, octahedronTriangles()),
		geometry.NewMesh(core.NewTransform(
			core.NewVec3(1.8, 0, 0.5),
			core.NewVec3(0, -15, 0),
			core.NewVec3(1.5, 1.5, 1.5),
		), matBlue, tetrahedronTriangles()),
	}

	return &Scene{
		Camera:     camera,
		Materials:  materials,
		Geoms:      geoms,
		Iterations: 300,
		MaxDepth:   8,
	}
}

// octahedronTriangles builds a unit octahedron with vertex normals set
// to the normalized vertex positions, so shading interpolates smoothly
// across faces.
func octahedronTriangles() []geometry.Triangle {
	top := core.NewVec3(0, 1, 0)
	bottom := core.NewVec3(0, -1, 0)
	ring := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 0, 1),
	}

	smooth := func(v0, v1, v2 core.Vec3) geometry.Triangle {
		return geometry.Triangle{
			V: [3]core.Vec3{v0, v1, v2},
			N: [3]core.Vec3{v0.Normalize(), v1.Normalize(), v2.Normalize()},
		}
	}

	triangles := make([]geometry.Triangle, 0, 8)
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		triangles = append(triangles,
			smooth(a, b, top),
			smooth(b, a, bottom),
		)
	}
	return triangles
}

// tetrahedronTriangles builds a tetrahedron without vertex normals,
// exercising the geometric-normal fallback for faceted shading.
func tetrahedronTriangles() []geometry.Triangle {
	v := []core.Vec3{
		core.NewVec3(0, 1.4, 0),
		core.NewVec3(-0.8, 0, 0.6),
		core.NewVec3(0.8, 0, 0.6),
		core.NewVec3(0, 0, -0.9),
	}

	face := func(a, b, c core.Vec3) geometry.Triangle {
		return geometry.Triangle{V: [3]core.Vec3{a, b, c}}
	}

	return []geometry.Triangle{
		face(v[1], v[2], v[0]), // front
		face(v[2], v[3], v[0]), // right
		face(v[3], v[1], v[0]), // left
		face(v[2], v[1], v[3]), // base
	}
}
