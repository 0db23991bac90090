package geometry

import (
	"math"
	"testing"

	"github.com/seridescent/raytracing/pkg/core"
)

func TestQuadHit(t *testing.T) {
	// Unit quad in the z=0 plane with corner at origin
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	rayT := core.NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name    string
		target  core.Vec3
		wantHit bool
	}{
		{"center", core.NewVec3(0.5, 0.5, 0), true},
		{"near corner", core.NewVec3(0.01, 0.01, 0), true},
		{"far corner", core.NewVec3(0.99, 0.99, 0), true},
		{"outside alpha", core.NewVec3(1.5, 0.5, 0), false},
		{"outside beta", core.NewVec3(0.5, -0.5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := tt.target.Add(core.NewVec3(0, 0, 5))
			ray := core.NewRay(origin, core.NewVec3(0, 0, -1))
			hit, ok := quad.Hit(ray, rayT)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && math.Abs(hit.T-5.0) > 1e-9 {
				t.Errorf("t = %v, want 5", hit.T)
			}
		})
	}
}

func TestQuadParallelRay(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	// Ray travelling in the quad's plane must miss, not divide by zero
	ray := core.NewRay(core.NewVec3(-1, 0.5, 0), core.NewVec3(1, 0, 0))
	if _, ok := quad.Hit(ray, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Error("parallel ray should miss")
	}
}

func TestTriangleHit(t *testing.T) {
	tri := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	rayT := core.NewInterval(0.001, math.Inf(1))

	tests := []struct {
		name    string
		target  core.Vec3
		wantHit bool
	}{
		{"inside", core.NewVec3(0.25, 0.25, 0), true},
		{"on hypotenuse side", core.NewVec3(0.75, 0.75, 0), false},
		{"outside quad too", core.NewVec3(1.5, 0.5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := tt.target.Add(core.NewVec3(0, 0, 5))
			ray := core.NewRay(origin, core.NewVec3(0, 0, -1))
			if _, ok := tri.Hit(ray, rayT); ok != tt.wantHit {
				t.Errorf("hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestQuadFaceNormal(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	rayT := core.NewInterval(0.001, math.Inf(1))

	// Approaching from +z hits the front face (normal = u cross v = +z)
	front := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, ok := quad.Hit(front, rayT)
	if !ok || !hit.FrontFace {
		t.Errorf("expected front face hit, got ok=%v frontFace=%v", ok, hit.FrontFace)
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("front normal = %v, want (0,0,1)", hit.Normal)
	}

	// Approaching from -z hits the back face with the normal flipped
	back := core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1))
	hit, ok = quad.Hit(back, rayT)
	if !ok || hit.FrontFace {
		t.Errorf("expected back face hit, got ok=%v frontFace=%v", ok, hit.FrontFace)
	}
	if hit.Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("back normal = %v, want (0,0,-1)", hit.Normal)
	}
}

func TestPlanarBoundingBoxPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	box := quad.BoundingBox()

	if !box.IsValid() {
		t.Fatal("planar bounding box should be valid")
	}
	if box.Size().Z <= 0 {
		t.Errorf("planar box must be padded along its flat axis, got %+v", box)
	}
}

func TestSurfaceTagsMaterial(t *testing.T) {
	surface := NewSurface(MustSphere(core.NewVec3(0, 0, -2), 1.0), core.MaterialID(7))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := surface.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Material != core.MaterialID(7) {
		t.Errorf("material id = %d, want 7", hit.Material)
	}
}

func TestBoundsOf(t *testing.T) {
	if BoundsOf(nil).IsValid() {
		t.Error("bounds of no surfaces should be the empty box")
	}

	surfaces := []Surface{
		NewSurface(MustSphere(core.NewVec3(-2, 0, 0), 1), 0),
		NewSurface(MustSphere(core.NewVec3(2, 0, 0), 1), 0),
	}
	bounds := BoundsOf(surfaces)
	if bounds.Min.X != -3 || bounds.Max.X != 3 {
		t.Errorf("bounds = %+v, want x span [-3, 3]", bounds)
	}
}
