package scene

import (
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// NewDemoSpheres creates the glass, diffuse and fuzzy-metal sphere trio
// with a hollow glass bubble, seen from an angle with heavy defocus
func NewDemoSpheres() *Scene {
	s := New()
	s.CameraConfig.Center = core.NewVec3(-2, 2, 1)
	s.CameraConfig.LookAt = core.NewVec3(0, 0, -1)
	s.CameraConfig.VFov = 20.0
	s.CameraConfig.Width = 400
	s.CameraConfig.AspectRatio = 16.0 / 9.0
	s.CameraConfig.Aperture = apertureFor(10.0, 3.4)
	s.CameraConfig.FocusDistance = 3.4
	s.Sampling.SamplesPerPixel = 100
	s.Sampling.MaxDepth = 50

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	bubble := s.AddMaterial(material.NewDielectric(1.0 / 1.5))
	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0))

	s.AddSurface(geometry.MustSphere(core.NewVec3(0, -100.5, -1), 100), ground)
	s.AddSurface(geometry.MustSphere(core.NewVec3(0, 0, -1.2), 0.5), center)
	s.AddSurface(geometry.MustSphere(core.NewVec3(-1, 0, -1), 0.5), glass)
	s.AddSurface(geometry.MustSphere(core.NewVec3(-1, 0, -1), 0.4), bubble)
	s.AddSurface(geometry.MustSphere(core.NewVec3(1, 0, -1), 0.5), metal)

	return s
}
