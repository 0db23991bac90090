package renderer

import (
	"math"
	"math/rand"

	"github.com/seridescent/raytracing/pkg/core"
)

// CameraConfig describes the viewing geometry for a render
type CameraConfig struct {
	Center        core.Vec3 // Camera position in world space
	LookAt        core.Vec3 // Point the camera is aimed at
	Up            core.Vec3 // View-up direction, need not be orthogonal to the view axis
	VFov          float64   // Vertical field of view in degrees
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus, 0 = distance to LookAt
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0,
	}
}

// Camera generates rays through a virtual viewport, with optional
// depth of field via a thin lens of the configured aperture
type Camera struct {
	center          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Camera basis vectors spanning the lens disk
	lensRadius      float64
	width           int
	height          int
}

// NewCamera builds a camera from the config, validating it first
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		center:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		width:           config.Width,
		height:          height,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels, derived from the aspect ratio
func (c *Camera) Height() int { return c.height }

// GetRay generates a ray through pixel (i, j) with sub-pixel jitter.
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	s := (float64(i) + random.Float64()) / float64(c.width)
	t := 1.0 - (float64(j)+random.Float64())/float64(c.height)

	origin := c.center
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
