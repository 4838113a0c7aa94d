package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

// Hit distances carry the 1e-4 surface offset, so they are compared
// with a loose tolerance while normals use a tight one.
const distanceTolerance = 1e-3
const normalTolerance = 1e-9

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.IdentityTransform(), 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	isect, ok := sphere.Intersect(ray)
	if ok {
		t.Errorf("Expected miss, but got hit at t=%f", isect.T)
	}
}

func TestSphere_Intersect_FromOutside(t *testing.T) {
	sphere := NewSphere(core.IdentityTransform(), 3)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	isect, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(isect.T-1.5) > distanceTolerance {
		t.Errorf("Expected distance 1.5, got %f", isect.T)
	}
	if !isect.Outside {
		t.Error("Expected Outside=true for ray starting outside the sphere")
	}
	expectedNormal := core.NewVec3(0, 0, 1)
	if isect.Normal.Subtract(expectedNormal).Length() > normalTolerance {
		t.Errorf("Expected normal %v, got %v", expectedNormal, isect.Normal)
	}
	if isect.MaterialID != 3 {
		t.Errorf("Expected material index 3, got %d", isect.MaterialID)
	}
}

func TestSphere_Intersect_FromInside(t *testing.T) {
	sphere := NewSphere(core.IdentityTransform(), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	isect, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit from inside, but got miss")
	}

	if isect.Outside {
		t.Error("Expected Outside=false for ray starting inside the sphere")
	}
	if math.Abs(isect.T-0.5) > distanceTolerance {
		t.Errorf("Expected distance 0.5, got %f", isect.T)
	}
	// Normal is negated to oppose the ray when exiting
	expectedNormal := core.NewVec3(0, 0, -1)
	if isect.Normal.Subtract(expectedNormal).Length() > normalTolerance {
		t.Errorf("Expected normal %v, got %v", expectedNormal, isect.Normal)
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.IdentityTransform(), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 1))

	if isect, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss for sphere behind ray, got hit at t=%f", isect.T)
	}
}

func TestSphere_Intersect_ScaledTransform(t *testing.T) {
	// Scale 2 turns the radius-0.5 sphere into radius 1; the reported
	// distance must be measured in world space, not local space.
	transform := core.NewTransform(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2))
	sphere := NewSphere(transform, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	isect, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit on scaled sphere, but got miss")
	}

	if math.Abs(isect.T-2.0) > distanceTolerance {
		t.Errorf("Expected world distance 2.0, got %f", isect.T)
	}
	expectedNormal := core.NewVec3(0, 0, 1)
	if isect.Normal.Subtract(expectedNormal).Length() > normalTolerance {
		t.Errorf("Expected normal %v, got %v", expectedNormal, isect.Normal)
	}
}

func TestSphere_Intersect_Translated(t *testing.T) {
	transform := core.NewTransform(core.NewVec3(5, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))
	sphere := NewSphere(transform, 0)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "hits translated sphere",
			ray:       core.NewRay(core.NewVec3(5, 0, 2), core.NewVec3(0, 0, -1)),
			shouldHit: true,
			expectedT: 1.5,
		},
		{
			name:      "misses at original location",
			ray:       core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isect, ok := sphere.Intersect(tt.ray)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, ok)
			}
			if ok && math.Abs(isect.T-tt.expectedT) > distanceTolerance {
				t.Errorf("Expected distance %f, got %f", tt.expectedT, isect.T)
			}
		})
	}
}
