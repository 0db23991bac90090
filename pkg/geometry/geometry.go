// Package geometry provides the closed set of primitive shapes the
// renderer can intersect. Shapes are a tagged variant dispatched through
// a single switch per operation, keeping the set exhaustively checkable.
package geometry

import (
	"fmt"

	"github.com/seridescent/raytracing/pkg/core"
)

// Kind identifies a geometry variant
type Kind int

const (
	KindSphere Kind = iota
	KindQuad
	KindTriangle
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindQuad:
		return "quad"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Geometry is a variant over the supported shapes. Sphere uses Center and
// Radius; quad and triangle share the planar parameterization Q + alpha*U +
// beta*V with precomputed plane normal, offset and projection vector.
type Geometry struct {
	Kind Kind

	// Sphere parameters
	Center core.Vec3
	Radius float64

	// Planar parameters (quad, triangle)
	Q, U, V core.Vec3
	normal  core.Vec3
	d       float64
	w       core.Vec3
}

// NewSphere creates a sphere geometry. A negative radius is rejected;
// hollow-interior tricks are handled at the material level instead.
func NewSphere(center core.Vec3, radius float64) (Geometry, error) {
	if radius < 0 {
		return Geometry{}, fmt.Errorf("invalid sphere radius %v (expected non-negative radius)", radius)
	}
	return Geometry{Kind: KindSphere, Center: center, Radius: radius}, nil
}

// MustSphere is NewSphere for statically known-valid radii
func MustSphere(center core.Vec3, radius float64) Geometry {
	g, err := NewSphere(center, radius)
	if err != nil {
		panic(err)
	}
	return g
}

// NewQuad creates a parallelogram with corner q and edge vectors u, v
func NewQuad(q, u, v core.Vec3) Geometry {
	g := newPlanar(q, u, v)
	g.Kind = KindQuad
	return g
}

// NewTriangle creates a triangle with corner q and edge vectors u, v
func NewTriangle(q, u, v core.Vec3) Geometry {
	g := newPlanar(q, u, v)
	g.Kind = KindTriangle
	return g
}

func newPlanar(q, u, v core.Vec3) Geometry {
	n := u.Cross(v)
	normal := n.Normalize()
	return Geometry{
		Q:      q,
		U:      u,
		V:      v,
		normal: normal,
		d:      normal.Dot(q),
		w:      n.Multiply(1.0 / n.Dot(n)),
	}
}

// Hit tests the ray against the geometry within the parameter interval
func (g Geometry) Hit(ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	switch g.Kind {
	case KindSphere:
		return sphereHit(g.Center, g.Radius, ray, rayT)
	case KindQuad:
		return quadHit(g, ray, rayT)
	case KindTriangle:
		return triangleHit(g, ray, rayT)
	default:
		return core.HitRecord{}, false
	}
}

// BoundingBox returns the axis-aligned bounding box for the geometry
func (g Geometry) BoundingBox() core.AABB {
	switch g.Kind {
	case KindSphere:
		return sphereBoundingBox(g.Center, g.Radius)
	case KindQuad:
		return quadBoundingBox(g.Q, g.U, g.V)
	case KindTriangle:
		return triangleBoundingBox(g.Q, g.U, g.V)
	default:
		return core.EmptyAABB()
	}
}

// Surface pairs a geometry with an index into the scene's material arena
type Surface struct {
	Geometry Geometry
	Material core.MaterialID
}

// NewSurface creates a surface from a geometry and a material index
func NewSurface(geometry Geometry, material core.MaterialID) Surface {
	return Surface{Geometry: geometry, Material: material}
}

// Hit tests the ray against the surface and tags the hit with the
// surface's material
func (s Surface) Hit(ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	hit, ok := s.Geometry.Hit(ray, rayT)
	if !ok {
		return core.HitRecord{}, false
	}
	hit.Material = s.Material
	return hit, true
}

// BoundingBox returns the surface's bounding box
func (s Surface) BoundingBox() core.AABB {
	return s.Geometry.BoundingBox()
}

// BoundsOf returns the union bounding box of a slice of surfaces.
// An empty slice yields the empty box.
func BoundsOf(surfaces []Surface) core.AABB {
	bounds := core.EmptyAABB()
	for _, s := range surfaces {
		bounds = bounds.Union(s.BoundingBox())
	}
	return bounds
}
