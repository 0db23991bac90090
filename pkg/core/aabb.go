package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates an AABB from two opposite corners, in either order
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// EmptyAABB returns the empty box, the identity element for Union
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Union returns the smallest AABB containing both boxes
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Hit tests if a ray intersects this AABB within the parameter interval,
// using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		minVal := aabb.Min.Component(axis)
		maxVal := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		// Near-zero direction: the ray is parallel to this slab, so the
		// interval is either fully open or empty depending on the origin
		if math.Abs(direction) < 1e-12 {
			if origin < minVal || origin > maxVal {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (minVal - origin) * invDirection
		t2 := (maxVal - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// ContainsPoint returns true if the point is inside the box (inclusive)
func (aabb AABB) ContainsPoint(p Vec3) bool {
	return aabb.Min.X <= p.X && p.X <= aabb.Max.X &&
		aabb.Min.Y <= p.Y && p.Y <= aabb.Max.Y &&
		aabb.Min.Z <= p.Z && p.Z <= aabb.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB.
// The empty box reports zero area.
func (aabb AABB) SurfaceArea() float64 {
	if !aabb.IsValid() {
		return 0
	}
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a non-empty AABB (min <= max on all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Padded returns an AABB expanded by eps along any axis whose extent is
// smaller than eps. Planar geometry needs this to avoid degenerate boxes.
func (aabb AABB) Padded(eps float64) AABB {
	padded := aabb
	if padded.Max.X-padded.Min.X < eps {
		padded.Min.X -= eps / 2
		padded.Max.X += eps / 2
	}
	if padded.Max.Y-padded.Min.Y < eps {
		padded.Min.Y -= eps / 2
		padded.Max.Y += eps / 2
	}
	if padded.Max.Z-padded.Min.Z < eps {
		padded.Min.Z -= eps / 2
		padded.Max.Z += eps / 2
	}
	return padded
}
