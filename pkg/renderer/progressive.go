package renderer

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/seridescent/raytracing/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize       int // Size of each tile, 0 = default 64
	InitialSamples int // Samples per pixel for the first preview pass
	MaxPasses      int // Number of passes to spread the sample budget over
	NumWorkers     int // Number of parallel workers, 0 = CPU count
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:       64,
		InitialSamples: 1,
		MaxPasses:      6,
		NumWorkers:     0,
	}
}

// PassResult contains the result of a single progressive pass
type PassResult struct {
	PassNumber int
	Frame      *Framebuffer
	Stats      RenderStats
	IsLast     bool
}

// ProgressiveRaytracer renders a scene in multiple passes, each pass
// adding samples to every pixel so early passes give a fast preview.
// The accumulated image after the final pass matches the scene's full
// sample budget.
type ProgressiveRaytracer struct {
	scene      Scene
	camera     *Camera
	config     ProgressiveConfig
	sampling   SamplingConfig
	integrator *PathTracer
	tiles      []image.Rectangle
	accum      []core.Vec3 // Linear color sums per pixel
	counts     []int       // Samples accumulated per pixel
	logger     core.Logger
}

// NewProgressiveRaytracer creates a progressive raytracer for the scene
func NewProgressiveRaytracer(scene Scene, config ProgressiveConfig, logger core.Logger) (*ProgressiveRaytracer, error) {
	sampling := scene.GetSamplingConfig()
	if err := sampling.Validate(); err != nil {
		return nil, err
	}
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.MaxPasses <= 0 {
		config.MaxPasses = 1
	}
	if config.InitialSamples <= 0 {
		config.InitialSamples = 1
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	camera := scene.GetCamera()
	width, height := camera.Width(), camera.Height()

	return &ProgressiveRaytracer{
		scene:      scene,
		camera:     camera,
		config:     config,
		sampling:   sampling,
		integrator: NewPathTracer(sampling.MaxDepth),
		tiles:      tileGrid(width, height, config.TileSize),
		accum:      make([]core.Vec3, width*height),
		counts:     make([]int, width*height),
		logger:     logger,
	}, nil
}

// getSamplesForPass calculates the target total samples after a given pass
func (pr *ProgressiveRaytracer) getSamplesForPass(passNumber int) int {
	maxSamples := pr.sampling.SamplesPerPixel

	if pr.config.MaxPasses == 1 || passNumber >= pr.config.MaxPasses {
		return maxSamples
	}
	if passNumber == 1 {
		return min(pr.config.InitialSamples, maxSamples)
	}

	// Divide the remaining samples evenly across the remaining passes
	remainingSamples := maxSamples - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	return min(pr.config.InitialSamples+(passNumber-1)*samplesPerPass, maxSamples)
}

// RenderProgressive renders all passes, sending each completed pass on
// the returned channel. The caller must drain both channels. Rendering
// stops early if the context is cancelled.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()
			targetSamples := pr.getSamplesForPass(pass)
			pr.renderPass(ctx, pass, targetSamples)

			if err := ctx.Err(); err != nil {
				errChan <- err
				return
			}

			stats := RenderStats{
				Width:           pr.camera.Width(),
				Height:          pr.camera.Height(),
				TotalPixels:     len(pr.accum),
				SamplesPerPixel: targetSamples,
				TotalSamples:    targetSamples * len(pr.accum),
				Tiles:           len(pr.tiles),
				Workers:         pr.config.NumWorkers,
				Elapsed:         time.Since(startTime),
			}

			isLast := targetSamples >= pr.sampling.SamplesPerPixel || pass == pr.config.MaxPasses
			result := PassResult{
				PassNumber: pass,
				Frame:      pr.snapshot(),
				Stats:      stats,
				IsLast:     isLast,
			}

			pr.logger.Printf("Pass %d completed in %v (%d samples/pixel)\n",
				pass, stats.Elapsed, targetSamples)

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if isLast {
				break
			}
		}
	}()

	return passChan, errChan
}

// renderPass brings every pixel up to targetSamples accumulated samples
func (pr *ProgressiveRaytracer) renderPass(ctx context.Context, pass, targetSamples int) {
	width := pr.camera.Width()

	tasks := make(chan image.Rectangle, len(pr.tiles))
	var wg sync.WaitGroup

	for w := 0; w < pr.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bounds := range tasks {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
					for x := bounds.Min.X; x < bounds.Max.X; x++ {
						idx := y*width + x
						needed := targetSamples - pr.counts[idx]
						if needed <= 0 {
							continue
						}

						random := rand.New(rand.NewSource(pixelSeed(pr.sampling.Seed, x, y, pass)))
						for sample := 0; sample < needed; sample++ {
							ray := pr.camera.GetRay(x, y, random)
							pr.accum[idx] = pr.accum[idx].Add(pr.integrator.RayColor(ray, pr.scene, random))
						}
						pr.counts[idx] += needed
					}
				}
			}
		}()
	}

	for _, bounds := range pr.tiles {
		tasks <- bounds
	}
	close(tasks)
	wg.Wait()
}

// snapshot averages the accumulated samples into a framebuffer
func (pr *ProgressiveRaytracer) snapshot() *Framebuffer {
	width, height := pr.camera.Width(), pr.camera.Height()
	fb := NewFramebuffer(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if pr.counts[idx] > 0 {
				fb.Set(x, y, pr.accum[idx].Multiply(1.0/float64(pr.counts[idx])))
			}
		}
	}
	return fb
}
