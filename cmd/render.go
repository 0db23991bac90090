package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/seridescent/raytracing/log"
	"github.com/seridescent/raytracing/pkg/bvh"
	"github.com/seridescent/raytracing/pkg/renderer"
	"github.com/seridescent/raytracing/pkg/scene"
)

// RenderScene renders a built-in scene to an image file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument (run 'scenes' for the list)")
	}

	sc, err := scene.Create(ctx.Args().First(), ctx.Int64("seed"))
	if err != nil {
		return err
	}

	if width := ctx.Int("width"); width > 0 {
		sc.CameraConfig.Width = width
	}
	if spp := ctx.Int("spp"); spp > 0 {
		sc.Sampling.SamplesPerPixel = spp
	}
	if depth := ctx.Int("max-depth"); depth > 0 {
		sc.Sampling.MaxDepth = depth
	}
	if seed := ctx.Int64("seed"); seed != 0 {
		sc.Sampling.Seed = seed
	}

	opts := bvh.DefaultOptions()
	if name := ctx.String("strategy"); name != "" {
		strategy, err := bvh.ParseStrategy(name)
		if err != nil {
			return err
		}
		opts.Strategy = strategy
	}
	if size := ctx.Int("leaf-size"); size > 0 {
		opts.LeafSize = size
	}
	if buckets := ctx.Int("sah-buckets"); buckets > 0 {
		opts.SAHBuckets = buckets
	}

	logger.Noticef("building scene %q with %d primitives", ctx.Args().First(), sc.PrimitiveCount())
	if err = sc.Preprocess(opts); err != nil {
		return err
	}
	displayBuildStats(sc, opts)

	var frame *renderer.Framebuffer
	var stats renderer.RenderStats
	if passes := ctx.Int("passes"); passes > 1 {
		frame, stats, err = renderProgressive(sc, ctx, passes)
	} else {
		frame, stats, err = renderFrame(sc, ctx)
	}
	if err != nil {
		return err
	}
	displayRenderStats(stats)

	return writeFrame(frame, ctx.String("out"))
}

func renderFrame(sc *scene.Scene, ctx *cli.Context) (*renderer.Framebuffer, renderer.RenderStats, error) {
	r, err := renderer.NewRaytracer(sc, renderer.RenderOptions{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	})
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	logger.Notice("rendering frame")
	return r.Render(context.Background())
}

// renderProgressive spreads the sample budget over several passes so
// progress shows up in the log, then returns the final accumulated frame
func renderProgressive(sc *scene.Scene, ctx *cli.Context, passes int) (*renderer.Framebuffer, renderer.RenderStats, error) {
	config := renderer.DefaultProgressiveConfig()
	config.MaxPasses = passes
	if size := ctx.Int("tile-size"); size > 0 {
		config.TileSize = size
	}
	if workers := ctx.Int("workers"); workers > 0 {
		config.NumWorkers = workers
	}

	pr, err := renderer.NewProgressiveRaytracer(sc, config, log.NewPrintfAdapter("render"))
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	passChan, errChan := pr.RenderProgressive(context.Background())
	var final renderer.PassResult
	for result := range passChan {
		final = result
	}
	if err := <-errChan; err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return final.Frame, final.Stats, nil
}

// writeFrame writes the framebuffer in the format implied by the file
// extension: .ppm for plain text PPM, anything else gets PNG.
func writeFrame(frame *renderer.Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if strings.HasSuffix(strings.ToLower(path), ".ppm") {
		err = frame.WritePPM(f)
	} else {
		err = frame.WritePNG(f)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %v", path, err)
	}

	logger.Noticef("wrote frame to %s in %d ms", path, time.Since(start).Nanoseconds()/1e6)
	return nil
}

func displayBuildStats(sc *scene.Scene, opts bvh.Options) {
	stats := sc.GetWorld().Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Strategy", "Surfaces", "Nodes", "Leaves", "Max leaf", "Max depth", "Avg leaf depth", "Build time"})
	table.Append([]string{
		opts.Strategy.String(),
		fmt.Sprintf("%d", stats.TotalSurfaces),
		fmt.Sprintf("%d", stats.TotalNodes),
		fmt.Sprintf("%d", stats.LeafNodes),
		fmt.Sprintf("%d", stats.MaxLeafSize),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%.1f", stats.AvgLeafDepth),
		fmt.Sprintf("%s", sc.BuildTime()),
	})

	table.Render()
	logger.Noticef("acceleration structure\n%s", buf.String())
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Total rays", "Tiles", "Workers", "Rays/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		fmt.Sprintf("%s", stats.Elapsed),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
