package material

import (
	"math"
	"testing"

	"github.com/df07/go-wavefront-pathtracer/pkg/core"
)

func TestMaterial_Scatter_Emissive(t *testing.T) {
	light := &Material{Color: core.NewVec3(1, 1, 1), Emittance: 5}
	sampler := core.NewSeededSampler(1, 0, 0)

	_, ok := light.Scatter(
		core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
		core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true, sampler)

	if ok {
		t.Error("Emissive material must not scatter")
	}
	expected := core.NewVec3(5, 5, 5)
	if light.Emitted().Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected emitted radiance %v, got %v", expected, light.Emitted())
	}
}

func TestMaterial_Scatter_ReflectionLaw(t *testing.T) {
	mirror := &Material{SpecularColor: core.NewVec3(0.9, 0.9, 0.9), Reflective: 1}
	sampler := core.NewSeededSampler(1, 0, 0)

	tests := []struct {
		name   string
		dir    core.Vec3
		normal core.Vec3
	}{
		{"45 degree incidence", core.NewVec3(1, -1, 0).Normalize(), core.NewVec3(0, 1, 0)},
		{"normal incidence", core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)},
		{"oblique", core.NewVec3(0.2, -0.7, 0.3).Normalize(), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRay(tt.dir.Negate(), tt.dir)
			result, ok := mirror.Scatter(rayIn, core.NewVec3(0, 0, 0), tt.normal, true, sampler)
			if !ok {
				t.Fatal("Mirror must scatter")
			}

			// d' = d − 2(d·n)n
			expected := tt.dir.Subtract(tt.normal.Multiply(2 * tt.dir.Dot(tt.normal)))
			if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
				t.Errorf("Expected mirror direction %v, got %v", expected, result.Scattered.Direction)
			}
			if result.Attenuation != mirror.SpecularColor {
				t.Errorf("Expected specular attenuation %v, got %v", mirror.SpecularColor, result.Attenuation)
			}
		})
	}
}

func TestMaterial_Scatter_RefractionSnell(t *testing.T) {
	glass := &Material{SpecularColor: core.NewVec3(1, 1, 1), Refractive: 1, IndexOfRefraction: 1.5}
	sampler := core.NewSeededSampler(1, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	// 45° incidence entering the denser medium
	incoming := core.NewVec3(1, -1, 0).Normalize()
	result, ok := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), incoming),
		core.NewVec3(0, 0, 0), normal, true, sampler)
	if !ok {
		t.Fatal("Refractive material must scatter")
	}

	// sin(θt) = sin(45°)/1.5
	sinIn := math.Sqrt2 / 2
	sinOut := sinIn / 1.5
	got := result.Scattered.Direction.Normalize()
	gotSin := math.Abs(got.X)
	if math.Abs(gotSin-sinOut) > 1e-9 {
		t.Errorf("Expected sin(θt)=%f, got %f", sinOut, gotSin)
	}
	if got.Y >= 0 {
		t.Errorf("Refracted ray must continue into the surface, got %v", got)
	}
}

func TestMaterial_Scatter_NormalIncidencePassesThrough(t *testing.T) {
	glass := &Material{SpecularColor: core.NewVec3(1, 1, 1), Refractive: 1, IndexOfRefraction: 1.5}
	sampler := core.NewSeededSampler(1, 0, 0)

	incoming := core.NewVec3(0, -1, 0)
	result, ok := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), incoming),
		core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), true, sampler)
	if !ok {
		t.Fatal("Refractive material must scatter")
	}

	if result.Scattered.Direction.Normalize().Subtract(incoming).Length() > 1e-9 {
		t.Errorf("Normal incidence should pass straight through, got %v", result.Scattered.Direction)
	}
}

func TestMaterial_Scatter_TotalInternalReflection(t *testing.T) {
	glass := &Material{SpecularColor: core.NewVec3(1, 1, 1), Refractive: 1, IndexOfRefraction: 1.5}
	sampler := core.NewSeededSampler(1, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	// Exiting glass at 60°: sin(60°)*1.5 > 1, so refraction has no
	// real solution and the ray must mirror instead
	incoming := core.NewVec3(math.Sin(60*math.Pi/180), -math.Cos(60*math.Pi/180), 0)
	result, ok := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), incoming),
		core.NewVec3(0, 0, 0), normal, false, sampler)
	if !ok {
		t.Fatal("TIR must still scatter")
	}

	expected := incoming.Subtract(normal.Multiply(2 * incoming.Dot(normal)))
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected TIR mirror direction %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestMaterial_Scatter_DiffuseHemisphere(t *testing.T) {
	diffuse := &Material{Color: core.NewVec3(0.7, 0.2, 0.1)}
	normal := core.NewVec3(0, 1, 0)
	sampler := core.NewSeededSampler(1, 123, 0)

	for i := 0; i < 500; i++ {
		result, ok := diffuse.Scatter(
			core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
			core.NewVec3(0, 0, 0), normal, true, sampler)
		if !ok {
			t.Fatal("Diffuse material must scatter")
		}

		if result.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Diffuse bounce %v went below the surface", result.Scattered.Direction)
		}
		if result.Attenuation != diffuse.Color {
			t.Fatalf("Diffuse attenuation must be the base color, got %v", result.Attenuation)
		}
	}
}

func TestMaterial_Scatter_Deterministic(t *testing.T) {
	diffuse := &Material{Color: core.NewVec3(0.5, 0.5, 0.5)}
	normal := core.NewVec3(0, 1, 0)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	a, _ := diffuse.Scatter(rayIn, core.NewVec3(0, 0, 0), normal, true, core.NewSeededSampler(4, 9, 2))
	b, _ := diffuse.Scatter(rayIn, core.NewVec3(0, 0, 0), normal, true, core.NewSeededSampler(4, 9, 2))

	if a.Scattered.Direction != b.Scattered.Direction {
		t.Errorf("Same seed produced different bounces: %v vs %v", a.Scattered.Direction, b.Scattered.Direction)
	}
}
