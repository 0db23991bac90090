package scene

import (
	"math"

	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// NewCornellBox creates the Cornell box with a tall mirrored box and a
// short diffuse box, lit by a ceiling light
func NewCornellBox() *Scene {
	s := New()
	s.CameraConfig.Center = core.NewVec3(278, 278, -800)
	s.CameraConfig.LookAt = core.NewVec3(278, 278, 0)
	s.CameraConfig.VFov = 40.0
	s.CameraConfig.Width = 600
	s.CameraConfig.AspectRatio = 1.0
	s.Sampling.SamplesPerPixel = 2000
	s.Sampling.MaxDepth = 50
	s.SetBackground(core.Vec3{})

	red := s.AddMaterial(material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)))
	white := s.AddMaterial(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	green := s.AddMaterial(material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)))
	light := s.AddMaterial(material.NewEmissive(core.NewVec3(50, 50, 50)))
	mirror := s.AddMaterial(material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))

	// Walls. The red wall sits at x = 555, the green at x = 0.
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555)), red)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555)), green)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105)), light)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555)), white)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555)), white)
	s.AddSurface(geometry.NewQuad(
		core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0)), white)

	// Tall mirrored box, rotated 18 degrees about its vertical axis
	addBox(s,
		core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460),
		mirror, 18.0*math.Pi/180)

	// Short diffuse box, rotated -18 degrees
	addBox(s,
		core.NewVec3(100, 0, 65), core.NewVec3(265, 165, 230),
		white, -18.0*math.Pi/180)

	return s
}

// addBox adds the six quads of an axis-aligned box spanning a to b,
// rotated about the vertical axis through its center by theta radians
func addBox(s *Scene, a, b core.Vec3, id core.MaterialID, theta float64) {
	boxMin := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	boxMax := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))
	center := boxMin.Add(boxMax.Subtract(boxMin).Multiply(0.5))

	cosTheta := math.Cos(theta)
	sinTheta := math.Sin(theta)
	rotateY := func(v core.Vec3) core.Vec3 {
		relative := v.Subtract(center)
		rotated := core.NewVec3(
			cosTheta*relative.X+sinTheta*relative.Z,
			relative.Y,
			-sinTheta*relative.X+cosTheta*relative.Z,
		)
		return rotated.Add(center)
	}

	v000 := rotateY(core.NewVec3(boxMin.X, boxMin.Y, boxMin.Z))
	v001 := rotateY(core.NewVec3(boxMin.X, boxMin.Y, boxMax.Z))
	v010 := rotateY(core.NewVec3(boxMin.X, boxMax.Y, boxMin.Z))
	v011 := rotateY(core.NewVec3(boxMin.X, boxMax.Y, boxMax.Z))
	v100 := rotateY(core.NewVec3(boxMax.X, boxMin.Y, boxMin.Z))
	v101 := rotateY(core.NewVec3(boxMax.X, boxMin.Y, boxMax.Z))
	v110 := rotateY(core.NewVec3(boxMax.X, boxMax.Y, boxMin.Z))
	v111 := rotateY(core.NewVec3(boxMax.X, boxMax.Y, boxMax.Z))

	s.AddSurface(geometry.NewQuad(v001, v101.Subtract(v001), v011.Subtract(v001)), id) // front
	s.AddSurface(geometry.NewQuad(v100, v000.Subtract(v100), v110.Subtract(v100)), id) // back
	s.AddSurface(geometry.NewQuad(v000, v001.Subtract(v000), v010.Subtract(v000)), id) // left
	s.AddSurface(geometry.NewQuad(v101, v100.Subtract(v101), v111.Subtract(v101)), id) // right
	s.AddSurface(geometry.NewQuad(v000, v100.Subtract(v000), v001.Subtract(v000)), id) // bottom
	s.AddSurface(geometry.NewQuad(v010, v011.Subtract(v010), v110.Subtract(v010)), id) // top
}
