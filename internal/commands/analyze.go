package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/codenest/internal/report"
)

// AnalyzeCommand returns the CLI command for analyzing input without
// creating anything on disk
func AnalyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze text for code blocks and folder structures",
		Description: "Reads a chat transcript, markdown document, or pasted AI output " +
			"and reports the code blocks and directory listings found in it. " +
			"Nothing is written to disk.",
		Flags: sourceFlags(),
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

			blocks := application.Extractor.ExtractCodeBlocks(content)
			structures := application.Tree.ParseAll(content)

			if len(blocks) == 0 && len(structures) == 0 {
				report.PrintWarning("No code blocks or folder structures found in the input")
				return nil
			}

			if len(blocks) > 0 {
				report.PrintAnalysis(blocks)
			}
			for i := range structures {
				report.PrintStructure(&structures[i])
			}

			return nil
		},
	}
}
