package scene

import (
	"github.com/df07/go-wavefront-pathtracer/pkg/core"
	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/df07/go-wavefront-pathtracer/pkg/material"
	"github.com/df07/go-wavefront-pathtracer/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box built from thin scaled
// cubes, with a ceiling area light and two spheres inside.
func NewCornellScene() *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center: core.NewVec3(0, 5, 10.5), // Outside the box looking in
		LookAt: core.NewVec3(0, 5, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  800,
		Height: 800,
		VFov:   45,
	})

	const (
		matLight = iota
		matWhite
		matRed
		matGreen
		matMirror
		matGlass
	)

	materials := []material.Material{
		matLight: {Color: core.NewVec3(1, 1, 1), Emittance: 5.0},
		matWhite: {Color: core.NewVec3(0.98, 0.98, 0.98)},
		matRed:   {Color: core.NewVec3(0.85, 0.35, 0.35)},
		matGreen: {Color: core.NewVec3(0.35, 0.85, 0.35)},
		matMirror: {
			SpecularColor: core.NewVec3(0.98, 0.98, 0.98),
			Reflective:    1.0,
		},
		matGlass: {
			SpecularColor:     core.NewVec3(0.98, 0.98, 0.98),
			Refractive:        1.0,
			IndexOfRefraction: 1.5,
		},
	}

	// 10x10x10 interior with thin cube walls
	noRotation := core.NewVec3(0, 0, 0)
	wall := func(translate, scale core.Vec3, materialID int) geometry.Geom {
		return geometry.NewCube(core.NewTransform(translate, noRotation, scale), materialID)
	}

	geoms := []geometry.Geom{
		// Ceiling light
		wall(core.NewVec3(0, 9.95, 0), core.NewVec3(3, 0.3, 3), matLight),
		// Floor, ceiling, back wall
		wall(core.NewVec3(0, 0, 0), core.NewVec3(10, 0.01, 10), matWhite),
		wall(core.NewVec3(0, 10, 0), core.NewVec3(10, 0.01, 10), matWhite),
		wall(core.NewVec3(0, 5, -5), core.NewVec3(10, 10, 0.01), matWhite),
		// Red left wall, green right wall
		wall(core.NewVec3(-5, 5, 0), core.NewVec3(0.01, 10, 10), matRed),
		wall(core.NewVec3(5, 5, 0), core.NewVec3(0.01, 10, 10), matGreen),
		// Mirror and glass spheres
		geometry.NewSphere(core.NewTransform(
			core.NewVec3(-2, 2, -2),
			noRotation,
			core.NewVec3(4, 4, 4),
		), matMirror),
		geometry.NewSphere(core.NewTransform(
			core.NewVec3(2.5, 1.5, 1),
			noRotation,
			core.NewVec3(3, 3, 3),
		), matGlass),
	}

	return &Scene{
		Camera:     camera,
		Materials:  materials,
		Geoms:      geoms,
		Iterations: 500,
		MaxDepth:   8,
	}
}
