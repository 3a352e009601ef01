package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// languageExtensions maps fence language tags to the file extension used
// when synthesizing artifact names.
var languageExtensions = map[string]string{
	"go":         "go",
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"html":       "html",
	"css":        "css",
	"yaml":       "yaml",
	"json":       "json",
	"bash":       "sh",
	"shell":      "sh",
	"markdown":   "md",
	"xml":        "xml",
	"sql":        "sql",
	"rust":       "rs",
	"dockerfile": "dockerfile",
	"toml":       "toml",
	"text":       "txt",
}

// ExtensionForLanguage returns the file extension for a fence language
// tag, defaulting to "txt" for unknown tags.
func ExtensionForLanguage(language string) string {
	if ext, ok := languageExtensions[strings.ToLower(language)]; ok {
		return ext
	}
	return "txt"
}

// ArtifactName synthesizes a filename for the n-th artifact block
// (1-based) based on its declared language.
func ArtifactName(n int, language string) string {
	return fmt.Sprintf("artifact_%d.%s", n, ExtensionForLanguage(language))
}

// inferLanguage determines a language for a block whose fence carried no
// tag. When the header resolved to a path, enry can usually identify the
// language from the filename and content; otherwise the sentinel stands.
func inferLanguage(path, content string) string {
	if path == "" {
		return LanguageText
	}

	language := enry.GetLanguage(filepath.Base(path), []byte(content))
	if language == "" || language == enry.OtherLanguage {
		return LanguageText
	}

	return strings.ToLower(language)
}
