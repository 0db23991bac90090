// Package scene assembles surfaces, materials and camera settings into a
// renderable world. Materials live in a scene-owned arena; surfaces refer
// to them by index so the hot intersection path stays free of pointers.
package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/seridescent/raytracing/pkg/bvh"
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
	"github.com/seridescent/raytracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Surfaces  []geometry.Surface
	Materials []material.Material

	CameraConfig renderer.CameraConfig
	Sampling     renderer.SamplingConfig

	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3

	camera    *renderer.Camera
	world     *bvh.BVH
	buildTime time.Duration
}

// New creates an empty scene with default camera and sampling settings
// and the classic sky gradient background
func New() *Scene {
	return &Scene{
		CameraConfig:     renderer.DefaultCameraConfig(),
		Sampling:         renderer.DefaultSamplingConfig(),
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// apertureFor converts a defocus cone angle in degrees to the lens
// diameter producing the same blur at the given focus distance
func apertureFor(defocusAngleDegrees, focusDistance float64) float64 {
	return 2 * focusDistance * math.Tan(defocusAngleDegrees*math.Pi/360)
}

// SetBackground sets a constant background color
func (s *Scene) SetBackground(color core.Vec3) {
	s.BackgroundTop = color
	s.BackgroundBottom = color
}

// AddMaterial appends a material to the scene's arena and returns its ID
func (s *Scene) AddMaterial(m material.Material) core.MaterialID {
	s.Materials = append(s.Materials, m)
	return core.MaterialID(len(s.Materials) - 1)
}

// AddSurface adds a geometry tagged with a material from the arena
func (s *Scene) AddSurface(g geometry.Geometry, id core.MaterialID) {
	s.Surfaces = append(s.Surfaces, geometry.NewSurface(g, id))
}

// Preprocess validates the configuration and builds the camera and the
// acceleration structure. It must be called before rendering and again
// after any change to the scene's surfaces.
func (s *Scene) Preprocess(opts bvh.Options) error {
	for _, surface := range s.Surfaces {
		if int(surface.Material) >= len(s.Materials) || surface.Material < 0 {
			return fmt.Errorf("surface references material %d but the scene has %d materials",
				surface.Material, len(s.Materials))
		}
	}

	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return err
	}
	if err := s.Sampling.Validate(); err != nil {
		return err
	}

	start := time.Now()
	s.world = bvh.Build(s.Surfaces, opts)
	s.buildTime = time.Since(start)
	s.camera = camera
	return nil
}

// BuildTime returns how long the last Preprocess spent building the BVH
func (s *Scene) BuildTime() time.Duration {
	return s.buildTime
}

// PrimitiveCount returns the number of surfaces in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Surfaces)
}

// GetCamera returns the camera built by Preprocess
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetSamplingConfig returns the scene's sampling configuration
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.Sampling
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.BackgroundTop, s.BackgroundBottom
}

// GetWorld returns the acceleration structure built by Preprocess
func (s *Scene) GetWorld() *bvh.BVH {
	return s.world
}

// GetMaterials returns the scene's material arena
func (s *Scene) GetMaterials() []material.Material {
	return s.Materials
}
