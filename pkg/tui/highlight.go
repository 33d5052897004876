package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// fenceLanguage maps an output format to the markdown fence used to
// highlight it.
var fenceLanguage = map[string]string{
	"curl":   "bash",
	"python": "python",
}

// HighlightArtifact renders an artifact as a syntax-highlighted code block.
// If rendering fails, it returns the original artifact.
func HighlightArtifact(artifact, format string) string {
	if strings.TrimSpace(artifact) == "" {
		return artifact
	}

	var sb strings.Builder
	sb.WriteString("```")
	sb.WriteString(fenceLanguage[format])
	sb.WriteString("\n")
	sb.WriteString(artifact)
	sb.WriteString("\n```")

	// No word wrap: a wrapped curl line no longer pastes.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return artifact
	}

	out, err := renderer.Render(sb.String())
	if err != nil {
		return artifact
	}

	return strings.TrimSpace(out)
}
