package core

import (
	"math"
	"math/rand"
	"testing"
)

func randomPointIn(box AABB, random *rand.Rand) Vec3 {
	size := box.Size()
	return Vec3{
		X: box.Min.X + random.Float64()*size.X,
		Y: box.Min.Y + random.Float64()*size.Y,
		Z: box.Min.Z + random.Float64()*size.Z,
	}
}

func TestAABBUnionContainsBoth(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		a := NewAABB(
			NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5),
			NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5),
		)
		b := NewAABB(
			NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5),
			NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5),
		)
		union := a.Union(b)

		for i := 0; i < 20; i++ {
			if p := randomPointIn(a, random); !union.ContainsPoint(p) {
				t.Fatalf("union %+v does not contain %v from a %+v", union, p, a)
			}
			if p := randomPointIn(b, random); !union.ContainsPoint(p) {
				t.Fatalf("union %+v does not contain %v from b %+v", union, p, b)
			}
		}

		// Smallest such box: every face must touch a face of a or b
		for axis := 0; axis < 3; axis++ {
			wantMin := math.Min(a.Min.Component(axis), b.Min.Component(axis))
			wantMax := math.Max(a.Max.Component(axis), b.Max.Component(axis))
			if union.Min.Component(axis) != wantMin || union.Max.Component(axis) != wantMax {
				t.Fatalf("union not tight on axis %d: %+v", axis, union)
			}
		}
	}
}

func TestAABBUnionIdentity(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))
	if got := EmptyAABB().Union(box); got != box {
		t.Errorf("empty union box: expected %+v, got %+v", box, got)
	}
	if got := box.Union(EmptyAABB()); got != box {
		t.Errorf("box union empty: expected %+v, got %+v", box, got)
	}
	if EmptyAABB().IsValid() {
		t.Error("empty box should not be valid")
	}
}

func TestAABBHit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name string
		ray  Ray
		rayT Interval
		want bool
	}{
		{"through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0.001, math.Inf(1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), NewInterval(0.001, math.Inf(1)), false},
		{"misses to the side", NewRay(NewVec3(5, 0, -5), NewVec3(0, 0, 1)), NewInterval(0.001, math.Inf(1)), false},
		{"diagonal through corner region", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), NewInterval(0.001, math.Inf(1)), true},
		{"interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), NewInterval(0.001, 2.0), false},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), NewInterval(0.001, math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.rayT); got != tt.want {
				t.Errorf("Hit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBHitParallelRay(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	rayT := NewInterval(0.001, math.Inf(1))

	// Zero x-component, origin inside the x slab
	inside := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !box.Hit(inside, rayT) {
		t.Error("parallel ray inside slab should hit")
	}

	// Zero x-component, origin outside the x slab
	outside := NewRay(NewVec3(2, 0, -5), NewVec3(0, 0, 1))
	if box.Hit(outside, rayT) {
		t.Error("parallel ray outside slab should miss")
	}
}

func TestAABBHitDegenerateBox(t *testing.T) {
	// A zero-extent box (a point) must not divide by zero or NaN out
	point := NewAABB(NewVec3(1, 1, 1), NewVec3(1, 1, 1))
	through := NewRay(NewVec3(1, 1, -5), NewVec3(0, 0, 1))
	if !point.Hit(through, NewInterval(0.001, math.Inf(1))) {
		t.Error("ray through degenerate box should hit")
	}
	if point.SurfaceArea() != 0 {
		t.Errorf("degenerate box surface area: expected 0, got %v", point.SurfaceArea())
	}
}

func TestAABBPadded(t *testing.T) {
	flat := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 0, 2))
	padded := flat.Padded(0.0001)
	if padded.Size().Y <= 0 {
		t.Errorf("padding should open the flat axis, got %+v", padded)
	}
	if padded.Size().X != 2 || padded.Size().Z != 2 {
		t.Errorf("padding should not grow full axes, got %+v", padded)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	tests := []struct {
		name string
		box  AABB
		want int
	}{
		{"x longest", NewAABB(NewVec3(0, 0, 0), NewVec3(5, 1, 2)), 0},
		{"y longest", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 2)), 1},
		{"z longest", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 5)), 2},
		{"tie goes to later axis", NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.want {
				t.Errorf("LongestAxis() = %d, want %d", got, tt.want)
			}
		})
	}
}
