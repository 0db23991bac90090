package renderer

import (
	"context"
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/seridescent/raytracing/pkg/bvh"
	"github.com/seridescent/raytracing/pkg/core"
	"github.com/seridescent/raytracing/pkg/material"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-pixel random generators
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetSamplingConfig() SamplingConfig
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() *bvh.BVH
	GetMaterials() []material.Material
}

// RenderOptions controls the parallel execution of a render.
// The image itself is identical for any tile size and worker count.
type RenderOptions struct {
	TileSize   int // Size of each square tile, 0 = default 64
	NumWorkers int // Number of parallel workers, 0 = CPU count
}

// Raytracer renders a scene to a framebuffer using parallel tiles
type Raytracer struct {
	scene      Scene
	camera     *Camera
	config     SamplingConfig
	integrator *PathTracer
	tileSize   int
	numWorkers int
}

// NewRaytracer creates a raytracer for the scene, validating its
// sampling configuration
func NewRaytracer(scene Scene, options RenderOptions) (*Raytracer, error) {
	config := scene.GetSamplingConfig()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tileSize := options.TileSize
	if tileSize <= 0 {
		tileSize = 64
	}
	numWorkers := options.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &Raytracer{
		scene:      scene,
		camera:     scene.GetCamera(),
		config:     config,
		integrator: NewPathTracer(config.MaxDepth),
		tileSize:   tileSize,
		numWorkers: numWorkers,
	}, nil
}

// Render renders the full image, distributing tiles across workers.
// Every pixel draws samples from its own random generator seeded from
// the base seed and the pixel coordinates, so the result does not
// depend on scheduling.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	fb := NewFramebuffer(width, height)
	tiles := tileGrid(width, height, rt.tileSize)

	tasks := make(chan image.Rectangle, len(tiles))
	var wg sync.WaitGroup

	for w := 0; w < rt.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bounds := range tasks {
				select {
				case <-ctx.Done():
					return
				default:
				}
				rt.renderBounds(bounds, fb)
			}
		}()
	}

	for _, bounds := range tiles {
		tasks <- bounds
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		Tiles:           len(tiles),
		Workers:         rt.numWorkers,
		Elapsed:         time.Since(start),
	}
	return fb, stats, nil
}

// renderBounds renders all pixels in a tile. Tiles never overlap, so
// writing to the shared framebuffer needs no locking.
func (rt *Raytracer) renderBounds(bounds image.Rectangle, fb *Framebuffer) {
	spp := rt.config.SamplesPerPixel

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			random := rand.New(rand.NewSource(pixelSeed(rt.config.Seed, x, y, 0)))

			colorAccum := core.Vec3{}
			for sample := 0; sample < spp; sample++ {
				ray := rt.camera.GetRay(x, y, random)
				colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, random))
			}

			fb.Set(x, y, colorAccum.Multiply(1.0/float64(spp)))
		}
	}
}

// pixelSeed derives a per-pixel seed from the base seed, the pixel
// coordinates and a pass number, using a splitmix64 finalizer so that
// neighboring pixels get uncorrelated sequences
func pixelSeed(base int64, x, y, pass int) int64 {
	h := uint64(base)
	h += uint64(uint32(x)) * 0x9e3779b97f4a7c15
	h += uint64(uint32(y)) * 0xbf58476d1ce4e5b9
	h += uint64(uint32(pass)) * 0x94d049bb133111eb
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return int64(h)
}

// tileGrid splits the image into non-overlapping tiles in row-major order
func tileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, image.Rect(x0, y0, x1, y1))
		}
	}

	return tiles
}
