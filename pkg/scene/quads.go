package scene

import (
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// NewQuads creates five colored quads arranged around the view axis
func NewQuads() *Scene {
	s := New()
	s.CameraConfig.Center = core.NewVec3(0, 0, 9)
	s.CameraConfig.LookAt = core.NewVec3(0, 0, 0)
	s.CameraConfig.VFov = 80.0
	s.CameraConfig.Width = 400
	s.CameraConfig.AspectRatio = 1.0
	s.Sampling.SamplesPerPixel = 100
	s.Sampling.MaxDepth = 50
	s.SetBackground(core.NewVec3(0.7, 0.8, 1.0))

	leftRed := s.AddMaterial(material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2)))
	backGreen := s.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2)))
	rightBlue := s.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0)))
	upperOrange := s.AddMaterial(material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0)))
	lowerTeal := s.AddMaterial(material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8)))

	s.AddSurface(geometry.NewQuad(
		core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0)), leftRed)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0)), backGreen)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0)), rightBlue)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4)), upperOrange)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4)), lowerTeal)

	return s
}
