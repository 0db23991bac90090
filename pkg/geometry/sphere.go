package geometry

import (
	"math"

	"github.com/seridescent/raytracing/pkg/core"
)

// sphereHit solves the quadratic for a ray-sphere intersection
func sphereHit(center core.Vec3, radius float64, ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	oc := center.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the nearer root first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	hit := core.HitRecord{
		T:     root,
		Point: ray.At(root),
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.SetFaceNormal(ray, outwardNormal)

	// Spherical coordinates of the hit for surface parameterization
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	hit.U = phi / (2 * math.Pi)
	hit.V = theta / math.Pi

	return hit, true
}

func sphereBoundingBox(center core.Vec3, radius float64) core.AABB {
	radii := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(radii), center.Add(radii))
}
