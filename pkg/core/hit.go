package core

// MaterialID indexes into the scene-owned material arena. Surfaces hold
// the index rather than a pointer so the scene stays the single owner.
type MaterialID int32

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     Vec3       // Point of intersection
	Normal    Vec3       // Surface normal at intersection, facing the ray
	T         float64    // Parameter t along the ray
	U, V      float64    // Surface parameterization of the hit point
	FrontFace bool       // Whether the ray hit the outward face
	Material  MaterialID // Material of the hit surface
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
