package material

import (
	"math"
	"math/rand"

	"github.com/seridescent/raytracing/pkg/core"
)

// scatterLambertian bounces the ray in a cosine-weighted random direction
// about the surface normal
func scatterLambertian(m Material, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can nearly cancel the normal; fall back to
	// the normal itself rather than scattering a degenerate direction
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: m.Albedo,
	}, true
}

// scatterMetal reflects the ray about the normal, perturbed by the fuzz
// radius. Rays fuzzed into the surface are absorbed.
func scatterMetal(m Material, rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction, hit.Normal).Normalize()
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

// scatterDielectric chooses between reflection and refraction per sample,
// weighted by Schlick reflectance, forcing reflection on total internal
// reflection
func scatterDielectric(m Material, rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// The ratio of refractive indices depends on whether the ray is
	// entering or exiting the material
	var etaRatio float64
	if hit.FrontFace {
		etaRatio = 1.0 / m.RefractiveIndex
	} else {
		etaRatio = m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, etaRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, etaRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
