package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/codenest/internal/git"
	"github.com/tildaslashalef/codenest/internal/report"
)

// CreateCommand returns the CLI command for generating a project from
// extracted code blocks
func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Extract code blocks and write them as a project",
		Description: "Analyzes the input, then writes every extracted code block " +
			"to the output directory. Blocks whose header was not a file path are " +
			"written under synthesized artifact names. Directory listings found in " +
			"the input can be materialized alongside with --structures.",
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory for the generated project",
			},
			&cli.BoolFlag{
				Name:  "structures",
				Usage: "Also materialize any folder structures found in the input",
			},
			&cli.BoolFlag{
				Name:  "git-init",
				Usage: "Initialize a git repository with an initial commit",
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

			output := c.String("output")
			if output == "" {
				output = application.Config.Output.BaseDir
			}

			blocks := application.Extractor.ExtractCodeBlocks(content)
			structures := application.Tree.ParseAll(content)

			if len(blocks) == 0 && len(structures) == 0 {
				report.PrintWarning("No code blocks or folder structures found in the input")
				return nil
			}

			if len(blocks) > 0 {
				report.PrintAnalysis(blocks)

				report.PrintHeading("Creating project in " + color.YellowString("%s", output))
				written, markers := application.Scaffold.WriteCodeBlocks(blocks, output)
				report.PrintMarkers(markers)
				report.PrintSuccess(fmt.Sprintf("Created %d files", written))
			}

			if c.Bool("structures") {
				for i := range structures {
					markers, target := application.Scaffold.MaterializeStructure(&structures[i], output)
					report.PrintMarkers(markers)
					report.PrintSuccess("Materialized structure at " + color.YellowString("%s", target))
				}
			}

			if c.Bool("git-init") {
				cfg := application.Config.Git
				result, err := application.Git.InitAndCommit(git.InitRequest{
					Dir:           output,
					AuthorName:    cfg.AuthorName,
					AuthorEmail:   cfg.AuthorEmail,
					CommitMessage: cfg.CommitMessage,
				})
				if err != nil {
					report.PrintError(fmt.Sprintf("Git initialization failed: %s", err))
					return err
				}
				report.PrintSuccess("Initialized git repository, commit " + color.CyanString("%s", result.CommitHash[:12]))
			}

			return nil
		},
	}
}
