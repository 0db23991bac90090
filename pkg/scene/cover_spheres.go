package scene

import (
	"math/rand"

	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

const (
	smallSphereRadius = 0.2
	bigSphereRadius   = 1.0
)

// NewCoverSpheres creates the classic field of random small spheres
// around three large ones. The same seed always produces the same
// arrangement.
func NewCoverSpheres(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	s := New()
	s.CameraConfig.Center = core.NewVec3(13, 2, 3)
	s.CameraConfig.LookAt = core.NewVec3(0, 0, 0)
	s.CameraConfig.VFov = 20.0
	s.CameraConfig.Width = 1200
	s.CameraConfig.AspectRatio = 16.0 / 9.0
	s.CameraConfig.Aperture = apertureFor(0.6, 10.0)
	s.CameraConfig.FocusDistance = 10.0
	s.Sampling.SamplesPerPixel = 500
	s.Sampling.MaxDepth = 50
	s.SetBackground(core.NewVec3(0.7, 0.8, 1.0))

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSurface(geometry.MustSphere(core.NewVec3(0, -1000, 0), 1000), ground)

	bigCenters := []core.Vec3{
		core.NewVec3(-4, 1, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(4, 1, 0),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				smallSphereRadius,
				float64(b)+0.9*random.Float64(),
			)

			if overlapsBigSphere(center, bigCenters) {
				continue
			}

			s.AddSurface(geometry.MustSphere(center, smallSphereRadius), randomMaterial(s, random))
		}
	}

	brown := s.AddMaterial(material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	steel := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))

	s.AddSurface(geometry.MustSphere(bigCenters[0], bigSphereRadius), brown)
	s.AddSurface(geometry.MustSphere(bigCenters[1], bigSphereRadius), glass)
	s.AddSurface(geometry.MustSphere(bigCenters[2], bigSphereRadius), steel)

	return s
}

func overlapsBigSphere(center core.Vec3, bigCenters []core.Vec3) bool {
	for _, big := range bigCenters {
		if big.Subtract(center).Length() < bigSphereRadius+smallSphereRadius {
			return true
		}
	}
	return false
}

func randomMaterial(s *Scene, random *rand.Rand) core.MaterialID {
	choose := random.Float64()
	switch {
	case choose < 0.8:
		albedo := randomVec3(random, 0, 1).MultiplyVec(randomVec3(random, 0, 1))
		return s.AddMaterial(material.NewLambertian(albedo))
	case choose < 0.95:
		albedo := randomVec3(random, 0.5, 1)
		fuzz := random.Float64() * 0.5
		return s.AddMaterial(material.NewMetal(albedo, fuzz))
	default:
		return s.AddMaterial(material.NewDielectric(1.5))
	}
}

func randomVec3(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
