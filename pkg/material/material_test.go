package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/seridescent/raytracing/pkg/core"
)

func floorHit() core.HitRecord {
	return core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
	}
}

func TestLambertianScatter(t *testing.T) {
	m := NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	random := rand.New(rand.NewSource(42))
	hit := floorHit()
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	for i := 0; i < 100; i++ {
		scatter, ok := m.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("lambertian should always scatter")
		}
		if scatter.Attenuation != m.Albedo {
			t.Fatalf("attenuation = %v, want albedo %v", scatter.Attenuation, m.Albedo)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("scattered ray should originate at the hit point")
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("lambertian scattered below the surface: %v", scatter.Scattered.Direction)
		}
	}
}

func TestMetalMirrorReflection(t *testing.T) {
	m := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))
	hit := floorHit()

	// 45 degrees in, 45 degrees out
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	scatter, ok := m.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("expected scatter")
	}

	want := core.NewVec3(1, 1, 0).Normalize()
	got := scatter.Scattered.Direction.Normalize()
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("reflected direction = %v, want %v", got, want)
	}
}

func TestMetalGrazingAbsorption(t *testing.T) {
	// Heavy fuzz at grazing incidence must sometimes perturb the ray into
	// the surface, which absorbs it
	m := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(42))
	hit := floorHit()
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	absorbed := 0
	for i := 0; i < 200; i++ {
		scatter, ok := m.Scatter(rayIn, hit, random)
		if !ok {
			absorbed++
			continue
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatal("scattered ray must point away from the surface")
		}
	}
	if absorbed == 0 {
		t.Error("expected some absorption at grazing incidence with full fuzz")
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	if m := NewMetal(core.Vec3{}, 2.5); m.Fuzz != 1.0 {
		t.Errorf("fuzz = %v, want clamped to 1", m.Fuzz)
	}
	if m := NewMetal(core.Vec3{}, -0.5); m.Fuzz != 0.0 {
		t.Errorf("fuzz = %v, want clamped to 0", m.Fuzz)
	}
}

func TestDielectricEqualIndicesPassThrough(t *testing.T) {
	// A dielectric with index 1.0 in air never bends the ray: Schlick
	// reflectance is 0 and refraction is the identity
	m := NewDielectric(1.0)
	random := rand.New(rand.NewSource(42))
	hit := floorHit()

	directions := []core.Vec3{
		core.NewVec3(1, -1, 0).Normalize(),
		core.NewVec3(0.2, -0.9, 0.1).Normalize(),
		core.NewVec3(0, -1, 0),
	}

	for _, d := range directions {
		rayIn := core.NewRay(core.NewVec3(0, 1, 0), d)
		for i := 0; i < 20; i++ {
			scatter, ok := m.Scatter(rayIn, hit, random)
			if !ok {
				t.Fatal("dielectric should always scatter")
			}
			got := scatter.Scattered.Direction.Normalize()
			if got.Subtract(d).Length() > 1e-9 {
				t.Fatalf("equal indices should not bend the ray: in %v, out %v", d, got)
			}
		}
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	// Exiting glass at a grazing angle exceeds the critical angle, so
	// every sample must reflect
	m := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, -1, 0), // back face: normal flipped against the ray
		FrontFace: false,
	}
	in := core.NewVec3(1, 0.1, 0).Normalize()
	rayIn := core.NewRay(core.NewVec3(-1, -0.1, 0), in)
	want := core.Reflect(in, hit.Normal)

	for i := 0; i < 50; i++ {
		scatter, ok := m.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("dielectric should always scatter")
		}
		got := scatter.Scattered.Direction
		if got.Subtract(want).Length() > 1e-9 {
			t.Fatalf("expected forced reflection %v, got %v", want, got)
		}
	}
}

func TestDielectricAttenuationIsWhite(t *testing.T) {
	m := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, ok := m.Scatter(rayIn, floorHit(), random)
	if !ok {
		t.Fatal("expected scatter")
	}
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("attenuation = %v, want white", scatter.Attenuation)
	}
}

func TestEmissive(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	m := NewEmissive(emission)
	random := rand.New(rand.NewSource(42))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, ok := m.Scatter(rayIn, floorHit(), random); ok {
		t.Error("emissive materials must not scatter")
	}
	if m.Emitted(floorHit()) != emission {
		t.Errorf("emitted = %v, want %v", m.Emitted(floorHit()), emission)
	}
	if NewLambertian(core.NewVec3(1, 1, 1)).Emitted(floorHit()) != (core.Vec3{}) {
		t.Error("non-emissive materials must emit zero")
	}
}

func TestUVGradient(t *testing.T) {
	m := NewUVGradient(2.0)
	random := rand.New(rand.NewSource(42))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit := floorHit()
	hit.U, hit.V = 0.25, 0.5

	if _, ok := m.Scatter(rayIn, hit, random); ok {
		t.Error("uv-gradient materials must not scatter")
	}
	want := core.NewVec3(0.5, 1.0, 0.5)
	if m.Emitted(hit) != want {
		t.Errorf("emitted = %v, want %v", m.Emitted(hit), want)
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence matches r0, grazing incidence approaches 1
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	if got := Reflectance(1.0, 1.5); math.Abs(got-r0) > 1e-12 {
		t.Errorf("normal incidence reflectance = %v, want %v", got, r0)
	}
	if got := Reflectance(0.0, 1.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("grazing reflectance = %v, want 1", got)
	}
}
