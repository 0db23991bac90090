package geometry

import (
	"math"

	"github.com/seridescent/raytracing/pkg/core"
)

// planarHit intersects the ray with the plane of a quad or triangle and
// computes the (alpha, beta) coordinates of the hit point in the U/V basis
func planarHit(g Geometry, ray core.Ray, rayT core.Interval) (t, alpha, beta float64, point core.Vec3, ok bool) {
	denominator := g.normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-10 {
		// Ray parallel to the plane
		return 0, 0, 0, core.Vec3{}, false
	}

	t = (g.d - g.normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return 0, 0, 0, core.Vec3{}, false
	}

	point = ray.At(t)
	qp := point.Subtract(g.Q)
	alpha = g.w.Dot(qp.Cross(g.V))
	beta = g.w.Dot(g.U.Cross(qp))
	return t, alpha, beta, point, true
}

func planarRecord(g Geometry, ray core.Ray, t, alpha, beta float64, point core.Vec3) core.HitRecord {
	hit := core.HitRecord{
		T:     t,
		Point: point,
		U:     alpha,
		V:     beta,
	}
	hit.SetFaceNormal(ray, g.normal)
	return hit
}

// quadHit restricts the planar hit to the parallelogram 0<=alpha,beta<=1
func quadHit(g Geometry, ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	t, alpha, beta, point, ok := planarHit(g, ray, rayT)
	if !ok {
		return core.HitRecord{}, false
	}
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}
	return planarRecord(g, ray, t, alpha, beta, point), true
}

func quadBoundingBox(q, u, v core.Vec3) core.AABB {
	return core.NewAABB(q, q.Add(u).Add(v)).
		Union(core.NewAABB(q.Add(u), q.Add(v))).
		Padded(0.0001)
}

// triangleHit restricts the planar hit to alpha>=0, beta>=0, alpha+beta<=1
func triangleHit(g Geometry, ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	t, alpha, beta, point, ok := planarHit(g, ray, rayT)
	if !ok {
		return core.HitRecord{}, false
	}
	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return core.HitRecord{}, false
	}
	return planarRecord(g, ray, t, alpha, beta, point), true
}

func triangleBoundingBox(q, u, v core.Vec3) core.AABB {
	return core.NewAABB(q, q.Add(u)).
		Union(core.NewAABB(q, q.Add(v))).
		Padded(0.0001)
}
