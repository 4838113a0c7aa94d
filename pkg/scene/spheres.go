package scene

import (
	"github.com/df07/go-wavefront-pathtracer/pkg/core"
	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/df07/go-wavefront-pathtracer/pkg/material"
	"github.com/df07/go-wavefront-pathtracer/pkg/renderer"
)

// NewSpheresScene creates an open scene with a row of spheres on a
// ground plane under a large overhead light, showing off each material
// model side by side.
func NewSpheresScene() *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center: core.NewVec3(0, 2.5, 9),
		LookAt: core.NewVec3(0, 1.5, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  900,
		Height: 600,
		VFov:   40,
	})

	const (
		matLight = iota
		matGround
		matDiffuse
		matMirror
		matGlass
	)

	materials := []material.Material{
		matLight:   {Color: core.NewVec3(1, 1, 0.9), Emittance: 8.0},
		matGround:  {Color: core.NewVec3(0.6, 0.6, 0.65)},
		matDiffuse: {Color: core.NewVec3(0.8, 0.3, 0.25)},
		matMirror: {
			SpecularColor: core.NewVec3(0.95, 0.95, 0.95),
			Reflective:    1.0,
		},
		matGlass: {
			SpecularColor:     core.NewVec3(0.98, 0.98, 0.98),
			Refractive:        1.0,
			IndexOfRefraction: 1.52,
		},
	}

	noRotation := core.NewVec3(0, 0, 0)
	sphere := func(x float64, materialID int) geometry.Geom {
		return geometry.NewSphere(core.NewTransform(
			core.NewVec3(x, 1.5, 0),
			noRotation,
			core.NewVec3(3, 3, 3),
		), materialID)
	}

	geoms := []geometry.Geom{
		geometry.NewCube(core.NewTransform(
			core.NewVec3(0, 12, 0),
			noRotation,
			core.NewVec3(20, 0.5, 20),
		), matLight),
		geometry.NewCube(core.NewTransform(
			core.NewVec3(0, -0.05, 0),
			noRotation,
			core.NewVec3(40, 0.1, 40),
		), matGround),
		sphere(-3.5, matDiffuse),
		sphere(0, matMirror),
		sphere(3.5, matGlass),
	}

	return &Scene{
		Camera:     camera,
		Materials:  materials,
		Geoms:      geoms,
		Iterations: 300,
		MaxDepth:   8,
	}
}
