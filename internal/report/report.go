// Package report renders analysis and scaffolding results for the terminal
package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tildaslashalef/codenest/internal/extractor"
	"github.com/tildaslashalef/codenest/internal/scaffold"
	"github.com/tildaslashalef/codenest/internal/tree"
)

// Theme holds the semantic colors used across all output
var Theme = struct {
	Success text.Colors
	Info    text.Colors
	Warning text.Colors
	Error   text.Colors
	Heading text.Colors
	Subtle  text.Colors
	Accent  text.Colors
}{
	Success: text.Colors{text.FgGreen},
	Info:    text.Colors{text.FgBlue},
	Warning: text.Colors{text.FgYellow},
	Error:   text.Colors{text.FgRed},
	Heading: text.Colors{text.FgHiCyan, text.Bold},
	Subtle:  text.Colors{text.FgHiBlack},
	Accent:  text.Colors{text.FgCyan},
}

// PrintHeading prints a formatted heading
func PrintHeading(title string) {
	fmt.Println(Theme.Heading.Sprint(title))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(Theme.Success.Sprint("✓ ") + message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Println(Theme.Info.Sprint("ℹ ") + message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(Theme.Warning.Sprint("⚠ ") + message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(Theme.Error.Sprint("✗ ") + message)
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	fmt.Printf("%s: %s\n", text.Colors{text.Bold}.Sprint(key), value)
}

// PrintAnalysis renders the full analysis of extracted code blocks:
// overview counts, folder layout, per-language totals, and artifacts.
func PrintAnalysis(blocks []extractor.CodeBlock) {
	stats := extractor.Stats(blocks)

	PrintHeading("Analysis")
	PrintKeyValue("Code blocks", fmt.Sprintf("%d", len(blocks)))
	PrintKeyValue("Files", fmt.Sprintf("%d", stats.TotalFiles))
	PrintKeyValue("Lines", fmt.Sprintf("%d", stats.TotalLines))
	fmt.Println()

	printFolders(blocks)
	printLanguages(blocks, stats)

	if len(stats.Artifacts) > 0 {
		PrintHeading("Artifacts")
		for _, name := range stats.Artifacts {
			fmt.Println("  " + Theme.Accent.Sprint(name))
		}
	}
}

func printFolders(blocks []extractor.CodeBlock) {
	structure := extractor.FolderStructure(blocks)
	if len(structure) == 0 {
		return
	}

	lineCounts := make(map[string]int, len(blocks))
	for _, block := range blocks {
		if block.Path != "" {
			lineCounts[block.Path] = block.LineCount
		}
	}

	folders := make([]string, 0, len(structure))
	for folder := range structure {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	PrintHeading("Folders")
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	l.SetOutputMirror(os.Stdout)

	for _, folder := range folders {
		l.AppendItem(folder + "/")
		l.Indent()
		for _, file := range structure[folder] {
			path := file
			if folder != "." {
				path = folder + "/" + file
			}
			l.AppendItem(fmt.Sprintf("%s (%d lines)", file, lineCounts[path]))
		}
		l.UnIndent()
	}

	l.Render()
	fmt.Println()
}

func printLanguages(blocks []extractor.CodeBlock, stats extractor.ProjectStats) {
	if len(stats.Languages) == 0 {
		return
	}

	lineTotals := make(map[string]int, len(stats.Languages))
	for _, block := range blocks {
		lineTotals[block.Language] += block.LineCount
	}

	languages := make([]string, 0, len(stats.Languages))
	for lang := range stats.Languages {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Language", "Blocks", "Lines"})
	for _, lang := range languages {
		t.AppendRow(table.Row{lang, stats.Languages[lang], lineTotals[lang]})
	}
	t.Render()
	fmt.Println()
}

// PrintStructure renders a parsed tree structure as a nested list
func PrintStructure(structure *tree.Structure) {
	root := structure.RootFolder
	if root == "" {
		root = "(unnamed)"
	}
	PrintHeading("Structure " + root)

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	l.SetOutputMirror(os.Stdout)

	currentDepth := 0
	for _, entry := range structure.Entries {
		for currentDepth < entry.Depth {
			l.Indent()
			currentDepth++
		}
		for currentDepth > entry.Depth {
			l.UnIndent()
			currentDepth--
		}
		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		l.AppendItem(name)
	}

	l.Render()
	fmt.Println()
}

// PrintMarkers renders a creation log, one line per marker
func PrintMarkers(markers []scaffold.Marker) {
	failures := 0
	for _, m := range markers {
		if m.Failed() {
			failures++
			PrintError(m.String())
			continue
		}
		fmt.Println("  " + Theme.Subtle.Sprint(m.String()))
	}

	if failures > 0 {
		PrintWarning(fmt.Sprintf("%d of %d entries failed", failures, len(markers)))
	}
}
