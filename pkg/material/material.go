// Package material provides the closed set of material behaviors: diffuse,
// metallic, dielectric and emissive. Like geometry, the set is a tagged
// variant dispatched through a single switch per operation.
package material

import (
	"fmt"
	"math/rand"

	"github.com/seridescent/raytracing/pkg/core"
)

// Kind identifies a material variant
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindEmissive
	KindUVGradient
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindEmissive:
		return "emissive"
	case KindUVGradient:
		return "uv-gradient"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is a variant over the supported material behaviors
type Material struct {
	Kind Kind

	Albedo          core.Vec3 // lambertian, metal
	Fuzz            float64   // metal: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float64   // dielectric
	Emission        core.Vec3 // emissive
	Intensity       float64   // uv-gradient
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a specular material with a fuzz radius clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a refractive material such as glass.
// refractiveIndex is the index of the material relative to the enclosing
// medium (e.g. 1.5 for glass in air).
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// NewEmissive creates a light-emitting material
func NewEmissive(emission core.Vec3) Material {
	return Material{Kind: KindEmissive, Emission: emission}
}

// NewUVGradient creates a debug material that emits the surface
// parameterization as color, scaled by intensity. Useful for checking
// the UV mapping of a geometry.
func NewUVGradient(intensity float64) Material {
	return Material{Kind: KindUVGradient, Intensity: intensity}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation applied to the path throughput
}

// Scatter computes the material's response to an incoming ray. The second
// return value is false when the ray is absorbed. Materials are the only
// entropy consumers on the intersection path; the generator is always
// passed explicitly so sampling stays reproducible.
func (m Material) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m, hit, random)
	case KindMetal:
		return scatterMetal(m, rayIn, hit, random)
	case KindDielectric:
		return scatterDielectric(m, rayIn, hit, random)
	default:
		// Emissive and debug materials absorb all incoming rays
		return ScatterResult{}, false
	}
}

// Emitted returns the radiance the material contributes at the hit point;
// zero for materials that do not emit
func (m Material) Emitted(hit core.HitRecord) core.Vec3 {
	switch m.Kind {
	case KindEmissive:
		return m.Emission
	case KindUVGradient:
		return core.NewVec3(hit.U, hit.V, 1.0-hit.U-hit.V).Multiply(m.Intensity)
	default:
		return core.Vec3{}
	}
}
