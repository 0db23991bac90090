package renderer

import (
	"math"
	"math/rand"

	"github.com/seridescent/raytracing/pkg/core"
)

// Intersections closer than this are ignored to avoid surface acne
const rayEpsilon = 0.001

// PathTracer estimates radiance along a ray by iterative path tracing.
// Each bounce multiplies the running throughput by the material's
// attenuation and adds any emitted light weighted by that throughput.
type PathTracer struct {
	maxDepth int
}

// NewPathTracer creates a path tracer with the given bounce limit
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{maxDepth: maxDepth}
}

// RayColor computes the color seen along a single ray
func (pt *PathTracer) RayColor(ray core.Ray, scene Scene, random *rand.Rand) core.Vec3 {
	world := scene.GetWorld()
	materials := scene.GetMaterials()

	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)
	current := ray

	// maxDepth bounds the number of scatter events, so the loop runs at
	// most maxDepth+1 times and a ray that escapes after its last
	// allowed bounce still picks up the background
	for bounce := 0; ; bounce++ {
		hit, isHit := world.Hit(current, core.NewInterval(rayEpsilon, math.Inf(1)))
		if !isHit {
			background := backgroundGradient(current, scene)
			radiance = radiance.Add(throughput.MultiplyVec(background))
			break
		}

		mat := materials[hit.Material]
		radiance = radiance.Add(throughput.MultiplyVec(mat.Emitted(hit)))

		if bounce >= pt.maxDepth {
			break
		}
		scatter, didScatter := mat.Scatter(current, hit, random)
		if !didScatter {
			break
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		current = scatter.Scattered
	}

	return radiance
}

// backgroundGradient returns a vertical gradient based on ray direction
func backgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
