package scene

import (
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// NewSimpleScene creates three spheres over a yellow ground sphere,
// viewed head-on with a wide field of view
func NewSimpleScene() *Scene {
	s := New()
	s.CameraConfig.Center = core.NewVec3(0, 0, 0)
	s.CameraConfig.LookAt = core.NewVec3(0, 0, -1)
	s.CameraConfig.VFov = 90.0
	s.CameraConfig.Width = 400
	s.CameraConfig.AspectRatio = 16.0 / 9.0
	s.CameraConfig.FocusDistance = 1.0
	s.Sampling.SamplesPerPixel = 100
	s.Sampling.MaxDepth = 50

	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	blue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.3, 0.3, 0.7)))
	metal := s.AddMaterial(material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0))
	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	s.AddSurface(geometry.MustSphere(core.NewVec3(0, 0, -1), 0.5), red)
	s.AddSurface(geometry.MustSphere(core.NewVec3(-1, 0, -1), 0.5), blue)
	s.AddSurface(geometry.MustSphere(core.NewVec3(1, 0, -1), 0.5), metal)
	s.AddSurface(geometry.MustSphere(core.NewVec3(0, -100.5, -1), 100), ground)

	return s
}
