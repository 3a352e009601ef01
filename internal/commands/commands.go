// Package commands implements the codenest CLI commands
package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/codenest/internal/app"
)

// appFromContext retrieves the initialized application from CLI metadata
func appFromContext(c *cli.Context) (*app.App, error) {
	application, ok := c.App.Metadata["app"].(*app.App)
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}

// sourceFlags are shared by every command that acquires input
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "File path or URL to read input from",
		},
		&cli.BoolFlag{
			Name:    "clipboard",
			Aliases: []string{"c"},
			Usage:   "Read input from the system clipboard",
		},
	}
}

// acquireInput reads the raw text according to the source flags
func acquireInput(ctx context.Context, c *cli.Context, application *app.App) (string, error) {
	switch {
	case c.Bool("clipboard"):
		return application.Source.FromClipboard()
	case c.String("file") != "":
		return application.Source.Acquire(ctx, c.String("file"))
	default:
		return "", fmt.Errorf("no input source specified, use --file or --clipboard")
	}
}
