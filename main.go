package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/seridescent/raytracing/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracing"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Build the requested scene, construct a bounding volume hierarchy over its
surfaces and path trace it with parallel tiles. The output format follows
the file extension: .ppm writes plain text PPM, everything else PNG.`,
			ArgsUsage: "scene_name",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel, 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum ray bounces, 0 keeps the scene default",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base seed for deterministic output, 0 keeps the scene default",
				},
				cli.StringFlag{
					Name:  "strategy",
					Value: "sah",
					Usage: "bvh split strategy (median, midpoint, sah)",
				},
				cli.IntFlag{
					Name:  "leaf-size",
					Usage: "bvh leaf size threshold, 0 = default",
				},
				cli.IntFlag{
					Name:  "sah-buckets",
					Usage: "candidate split planes per axis for sah, 0 = default",
				},
				cli.IntFlag{
					Name:  "passes",
					Usage: "spread the sample budget over this many progressive passes",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Usage: "render tile size, 0 = default",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers, 0 = cpu count",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve an interactive render preview over http",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Value: ":8080",
					Usage: "listen address",
				},
			},
			Action: cmd.ServeWeb,
		},
	}

	app.Run(os.Args)
}
