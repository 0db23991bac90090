package renderer

import (
	"errors"
	"fmt"
)

// Configuration validation errors. Callers can match these with errors.Is
// after NewCamera or NewRaytracer rejects a config.
var (
	ErrInvalidWidth     = errors.New("image width must be positive")
	ErrInvalidAspect    = errors.New("aspect ratio must be positive")
	ErrInvalidVFov      = errors.New("vertical field of view must be in (0, 180) degrees")
	ErrNegativeAperture = errors.New("aperture must not be negative")
	ErrInvalidFocus     = errors.New("focus distance must not be negative")
	ErrDegenerateView   = errors.New("camera center and look-at point coincide")
	ErrDegenerateUp     = errors.New("up vector is parallel to the view direction")
	ErrInvalidSamples   = errors.New("samples per pixel must be positive")
	ErrInvalidDepth     = errors.New("max depth must be positive")
)

// Validate reports the first problem with the camera configuration
func (config CameraConfig) Validate() error {
	if config.Width <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, config.Width)
	}
	if config.AspectRatio <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidAspect, config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return fmt.Errorf("%w: got %g", ErrInvalidVFov, config.VFov)
	}
	if config.Aperture < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeAperture, config.Aperture)
	}
	if config.FocusDistance < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidFocus, config.FocusDistance)
	}

	view := config.LookAt.Subtract(config.Center)
	if view.NearZero() {
		return ErrDegenerateView
	}
	if config.Up.Cross(view).NearZero() {
		return ErrDegenerateUp
	}
	return nil
}

// Validate reports the first problem with the sampling configuration
func (config SamplingConfig) Validate() error {
	if config.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, config.MaxDepth)
	}
	return nil
}
