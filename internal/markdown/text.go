package markdown

import (
	"regexp"
	"strings"
)

var excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes raw markdown text before parsing: line endings become
// LF, trailing whitespace is stripped per line, heading lines lose any leading
// indentation, and runs of blank lines collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			cleaned = append(cleaned, "")
			continue
		}
		// Headings are significant to the parser; normalize their leading
		// indentation to zero so indented headers still start blocks.
		if trimmed := strings.TrimLeft(line, " \t"); strings.HasPrefix(trimmed, "#") {
			line = trimmed
		}
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
