package cmd

import (
	"github.com/urfave/cli"

	"github.com/seridescent/raytracing/web/server"
)

// ServeWeb starts the interactive render preview server.
func ServeWeb(ctx *cli.Context) error {
	setupLogging(ctx)
	return server.NewServer(ctx.String("addr")).Start()
}
