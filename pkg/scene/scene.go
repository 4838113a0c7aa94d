package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/df07/go-wavefront-pathtracer/pkg/material"
	"github.com/df07/go-wavefront-pathtracer/pkg/renderer"
)

// Scene holds everything needed to render an image: geometry, the
// materials it references by index, and a camera.
type Scene struct {
	Camera     *renderer.Camera
	Materials  []material.Material
	Geoms      []geometry.Geom
	Iterations int // Suggested iteration count for this scene
	MaxDepth   int // Suggested path depth for this scene
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetMaterials returns the scene's material table
func (s *Scene) GetMaterials() []material.Material {
	return s.Materials
}

// GetGeometry returns the scene's geometry list
func (s *Scene) GetGeometry() []geometry.Geom {
	return s.Geoms
}

// Validate checks that every geometry references a material that exists
func (s *Scene) Validate() error {
	for i, geom := range s.Geoms {
		if geom.MaterialID < 0 || geom.MaterialID >= len(s.Materials) {
			return fmt.Errorf("scene: geometry %d references material %d, have %d materials",
				i, geom.MaterialID, len(s.Materials))
		}
		if geom.Kind == geometry.KindMesh && len(geom.Triangles) == 0 {
			return fmt.Errorf("scene: mesh geometry %d has no triangles", i)
		}
	}
	return nil
}

// RenderConfig returns the scene's suggested render configuration,
// which callers may override.
func (s *Scene) RenderConfig() renderer.Config {
	return renderer.Config{
		Iterations: s.Iterations,
		MaxDepth:   s.MaxDepth,
	}
}

var sceneConstructors = map[string]func() *Scene{
	"cornell": NewCornellScene,
	"spheres": NewSpheresScene,
	"mesh":    NewMeshScene,
}

// SceneNames returns the available scene names in sorted order
func SceneNames() []string {
	names := make([]string, 0, len(sceneConstructors))
	for name := range sceneConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScene creates a scene by name
func NewScene(name string) (*Scene, error) {
	constructor, ok := sceneConstructors[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q, available: %v", name, SceneNames())
	}
	return constructor(), nil
}
