package scene

import (
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// NewSimpleLight creates a sphere lit by a rectangular area light
// against a dark background
func NewSimpleLight() *Scene {
	s := New()
	s.CameraConfig.Center = core.NewVec3(26, 3, 6)
	s.CameraConfig.LookAt = core.NewVec3(0, 2, 0)
	s.CameraConfig.VFov = 20.0
	s.CameraConfig.Width = 400
	s.CameraConfig.AspectRatio = 16.0 / 9.0
	s.CameraConfig.FocusDistance = 1.0
	s.Sampling.SamplesPerPixel = 1000
	s.Sampling.MaxDepth = 50
	s.SetBackground(core.Vec3{})

	ground := s.AddMaterial(material.NewLambertian(core.NewVec3(0.6, 0.5, 0.4)))
	pink := s.AddMaterial(material.NewLambertian(core.NewVec3(0.8, 0.4, 0.6)))
	light := s.AddMaterial(material.NewEmissive(core.NewVec3(10, 10, 10)))

	s.AddSurface(geometry.MustSphere(core.NewVec3(0, -1000, 0), 1000), ground)
	s.AddSurface(geometry.MustSphere(core.NewVec3(0, 2, 0), 2), pink)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)), light)

	return s
}
