package scene

import (
	"testing"

	"github.com/df07/go-wavefront-pathtracer/pkg/geometry"
)

func TestAllScenesValidate(t *testing.T) {
	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewScene(name)
			if err != nil {
				t.Fatalf("NewScene(%q) failed: %v", name, err)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Scene %q failed validation: %v", name, err)
			}
			if s.Camera == nil {
				t.Errorf("Scene %q has no camera", name)
			}
			if s.Iterations <= 0 || s.MaxDepth <= 0 {
				t.Errorf("Scene %q has invalid render settings: iterations=%d maxDepth=%d",
					name, s.Iterations, s.MaxDepth)
			}
			if len(s.Geoms) == 0 {
				t.Errorf("Scene %q has no geometry", name)
			}
		})
	}
}

func TestNewScene_UnknownName(t *testing.T) {
	if _, err := NewScene("nonexistent"); err == nil {
		t.Error("Expected error for unknown scene name, got nil")
	}
}

func TestSceneHasEmissiveMaterial(t *testing.T) {
	// Every built-in scene needs at least one light or renders would be black
	for _, name := range SceneNames() {
		s, err := NewScene(name)
		if err != nil {
			t.Fatalf("NewScene(%q) failed: %v", name, err)
		}
		found := false
		for _, m := range s.Materials {
			if m.IsEmissive() {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Scene %q has no emissive material", name)
		}
	}
}

func TestMeshSceneTriangleWinding(t *testing.T) {
	s := NewMeshScene()
	for i, g := range s.Geoms {
		if g.Kind != geometry.KindMesh {
			continue
		}
		for j, tri := range g.Triangles {
			e1 := tri.V[1].Subtract(tri.V[0])
			e2 := tri.V[2].Subtract(tri.V[0])
			if e1.Cross(e2).LengthSquared() == 0 {
				t.Errorf("Geometry %d triangle %d is degenerate", i, j)
			}
		}
	}
}
