package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/seridescent/raytracing/pkg/bvh"
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/geometry"
	"github.com/seridescent/raytracing/pkg/material"
)

// testScene implements Scene for tests in this package
type testScene struct {
	camera    *Camera
	sampling  SamplingConfig
	top       core.Vec3
	bottom    core.Vec3
	world     *bvh.BVH
	materials []material.Material
}

func (ts *testScene) GetCamera() *Camera                  { return ts.camera }
func (ts *testScene) GetSamplingConfig() SamplingConfig   { return ts.sampling }
func (ts *testScene) GetWorld() *bvh.BVH                  { return ts.world }
func (ts *testScene) GetMaterials() []material.Material   { return ts.materials }
func (ts *testScene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return ts.top, ts.bottom
}

// newTestScene builds a small scene with the given surfaces and materials
func newTestScene(t *testing.T, surfaces []geometry.Surface, materials []material.Material, sampling SamplingConfig) *testScene {
	t.Helper()

	config := testCameraConfig()
	config.Width = 32
	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera() error = %v", err)
	}

	return &testScene{
		camera:    camera,
		sampling:  sampling,
		top:       core.NewVec3(0.5, 0.7, 1.0),
		bottom:    core.NewVec3(1.0, 1.0, 1.0),
		world:     bvh.Build(surfaces, bvh.DefaultOptions()),
		materials: materials,
	}
}

func sphereScene(t *testing.T, sampling SamplingConfig) *testScene {
	t.Helper()
	materials := []material.Material{
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)),
	}
	surfaces := []geometry.Surface{
		geometry.NewSurface(geometry.MustSphere(core.NewVec3(0, 0, -2), 0.5), 0),
	}
	return newTestScene(t, surfaces, materials, sampling)
}

func TestRenderDeterministic(t *testing.T) {
	sampling := SamplingConfig{SamplesPerPixel: 4, MaxDepth: 5, Seed: 7}
	scene := sphereScene(t, sampling)

	options := []RenderOptions{
		{TileSize: 8, NumWorkers: 1},
		{TileSize: 8, NumWorkers: 4},
		{TileSize: 5, NumWorkers: 2},
		{TileSize: 64, NumWorkers: 3},
	}

	var reference *Framebuffer
	for _, opts := range options {
		rt, err := NewRaytracer(scene, opts)
		if err != nil {
			t.Fatalf("NewRaytracer() error = %v", err)
		}
		fb, _, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		if reference == nil {
			reference = fb
			continue
		}
		for y := 0; y < fb.Height(); y++ {
			for x := 0; x < fb.Width(); x++ {
				if fb.At(x, y) != reference.At(x, y) {
					t.Fatalf("pixel (%d, %d) differs with options %+v: %+v vs %+v",
						x, y, opts, fb.At(x, y), reference.At(x, y))
				}
			}
		}
	}
}

func TestRenderSeedChangesImage(t *testing.T) {
	samplingA := SamplingConfig{SamplesPerPixel: 2, MaxDepth: 5, Seed: 1}
	samplingB := SamplingConfig{SamplesPerPixel: 2, MaxDepth: 5, Seed: 2}

	render := func(sampling SamplingConfig) *Framebuffer {
		rt, err := NewRaytracer(sphereScene(t, sampling), RenderOptions{NumWorkers: 2})
		if err != nil {
			t.Fatalf("NewRaytracer() error = %v", err)
		}
		fb, _, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		return fb
	}

	a, b := render(samplingA), render(samplingB)
	same := true
	for y := 0; y < a.Height() && same; y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical images")
	}
}

func TestRenderCancellation(t *testing.T) {
	sampling := SamplingConfig{SamplesPerPixel: 1, MaxDepth: 2, Seed: 1}
	rt, err := NewRaytracer(sphereScene(t, sampling), RenderOptions{})
	if err != nil {
		t.Fatalf("NewRaytracer() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() with cancelled context error = %v, want context.Canceled", err)
	}
}

func TestRenderStatsReported(t *testing.T) {
	sampling := SamplingConfig{SamplesPerPixel: 3, MaxDepth: 2, Seed: 1}
	scene := sphereScene(t, sampling)

	rt, err := NewRaytracer(scene, RenderOptions{TileSize: 10, NumWorkers: 2})
	if err != nil {
		t.Fatalf("NewRaytracer() error = %v", err)
	}
	fb, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantPixels := fb.Width() * fb.Height()
	if stats.TotalPixels != wantPixels {
		t.Errorf("TotalPixels = %d, want %d", stats.TotalPixels, wantPixels)
	}
	if stats.TotalSamples != wantPixels*3 {
		t.Errorf("TotalSamples = %d, want %d", stats.TotalSamples, wantPixels*3)
	}
	if stats.Workers != 2 {
		t.Errorf("Workers = %d, want 2", stats.Workers)
	}
	if stats.Tiles == 0 {
		t.Error("Tiles should be non-zero")
	}
}

func TestNewRaytracerRejectsInvalidSampling(t *testing.T) {
	tests := []struct {
		name     string
		sampling SamplingConfig
		want     error
	}{
		{"zero samples", SamplingConfig{SamplesPerPixel: 0, MaxDepth: 5}, ErrInvalidSamples},
		{"zero depth", SamplingConfig{SamplesPerPixel: 10, MaxDepth: 0}, ErrInvalidDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRaytracer(sphereScene(t, tt.sampling), RenderOptions{})
			if !errors.Is(err, tt.want) {
				t.Errorf("NewRaytracer() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTileGridCoversImage(t *testing.T) {
	tiles := tileGrid(100, 60, 32)

	covered := make([][]int, 60)
	for y := range covered {
		covered[y] = make([]int, 100)
	}
	for _, bounds := range tiles {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				covered[y][x]++
			}
		}
	}
	for y := range covered {
		for x := range covered[y] {
			if covered[y][x] != 1 {
				t.Fatalf("pixel (%d, %d) covered %d times", x, y, covered[y][x])
			}
		}
	}
}

func TestPixelSeedVaries(t *testing.T) {
	seen := make(map[int64]bool)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			seen[pixelSeed(42, x, y, 0)] = true
		}
	}
	if len(seen) != 32*32 {
		t.Errorf("expected %d distinct seeds, got %d", 32*32, len(seen))
	}

	if pixelSeed(1, 5, 5, 0) == pixelSeed(2, 5, 5, 0) {
		t.Error("seeds should differ across base seeds")
	}
	if pixelSeed(1, 5, 5, 1) == pixelSeed(1, 5, 5, 2) {
		t.Error("seeds should differ across passes")
	}
}
