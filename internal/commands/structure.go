package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/codenest/internal/report"
)

// StructureCommand returns the CLI command for materializing tree-drawn
// directory listings
func StructureCommand() *cli.Command {
	return &cli.Command{
		Name:  "structure",
		Usage: "Parse tree-drawn directory listings and create them on disk",
		Description: "Scans the input for ASCII/Unicode tree listings (the \"├──\" style) " +
			"and recreates each one as real directories and empty files under the " +
			"output directory. Use --test to parse and report without creating anything.",
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Base directory to create structures under",
			},
			&cli.BoolFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "Parse and report only, do not create files",
			},
		),
		Action: func(c *cli.Context) error {
			application, err := appFromContext(c)
			if err != nil {
				return err
			}

			content, err := acquireInput(c.Context, c, application)
			if err != nil {
				report.PrintError(fmt.Sprintf("Failed to read input: %s", err))
				return err
			}

			structures := application.Tree.ParseAll(content)
			if len(structures) == 0 {
				report.PrintWarning("No folder structures found in the input")
				return nil
			}

			output := c.String("output")
			if output == "" {
				output = application.Config.Output.BaseDir
			}

			for i := range structures {
				structure := &structures[i]
				report.PrintStructure(structure)

				if c.Bool("test") {
					report.PrintInfo(fmt.Sprintf("Test mode: %d entries parsed, nothing created", len(structure.Entries)))
					continue
				}

				markers, target := application.Scaffold.MaterializeStructure(structure, output)
				report.PrintMarkers(markers)
				report.PrintSuccess("Created structure at " + color.YellowString("%s", target))
			}

			return nil
		},
	}
}
