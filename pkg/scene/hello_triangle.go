package scene

import (
	"math"

	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// NewHelloTriangle creates a single equilateral triangle shaded by its
// surface parameterization, for checking the UV mapping
func NewHelloTriangle() *Scene {
	s := New()
	s.CameraConfig.Center = core.NewVec3(0, 0, 3)
	s.CameraConfig.LookAt = core.NewVec3(0, 0, 0)
	s.CameraConfig.VFov = 45.0
	s.CameraConfig.Width = 400
	s.CameraConfig.AspectRatio = 16.0 / 9.0
	s.Sampling.SamplesPerPixel = 1000
	s.Sampling.MaxDepth = 50
	s.SetBackground(core.Vec3{})

	gradient := s.AddMaterial(material.NewUVGradient(1.0))

	sideLength := 2.0
	height := sideLength * math.Sqrt(3) / 2

	top := core.NewVec3(0, height*0.5, 0)
	bottomLeft := core.NewVec3(-sideLength*0.5, -height*0.5, 0)
	bottomRight := core.NewVec3(sideLength*0.5, -height*0.5, 0)

	u := bottomRight.Subtract(bottomLeft)
	v := top.Subtract(bottomLeft)
	s.AddSurface(geometry.NewTriangle(bottomLeft, u, v), gradient)

	return s
}
