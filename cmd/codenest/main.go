package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/codenest/internal/app"
	"github.com/tildaslashalef/codenest/internal/commands"
)

// Version information - populated at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cliApp := &cli.App{
		Name:  "codenest",
		Usage: "Turn pasted AI output into real project files",
		Description: "Codenest parses chat transcripts and markdown documents for " +
			"fenced code blocks and tree-drawn directory listings, then materializes " +
			"them as a project on disk.\n\n" +
			"When run without subcommands, codenest analyzes the input (default action).",
		Version: Version,
		Compiled: func() time.Time {
			t, err := time.Parse(time.RFC3339, BuildTime)
			if err != nil {
				return time.Now()
			}
			return t
		}(),
		Before: func(c *cli.Context) error {
			application, err := app.New()
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			// Store the app instance in the context for later use
			c.App.Metadata = map[string]interface{}{
				"app": application,
			}

			return nil
		},
		After: func(c *cli.Context) error {
			if application, ok := c.App.Metadata["app"].(*app.App); ok {
				return application.Shutdown()
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.AnalyzeCommand(),
			commands.CreateCommand(),
			commands.StructureCommand(),
		},
		Flags: commands.AnalyzeCommand().Flags,
		Action: func(c *cli.Context) error {
			// Default action is to run the analyze command
			return commands.AnalyzeCommand().Action(c)
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
