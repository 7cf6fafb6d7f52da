// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"
	"unicode"
)

// markdownParser passes already-structured Markdown through unchanged and
// wraps plain text in the generic outline.
type markdownParser struct{}

func (markdownParser) Outline(content, instructions string) (string, error) {
	if hasHeading(content) {
		return content, nil
	}
	return renderText(content, firstLine(content), instructions), nil
}

// hasHeading reports whether content contains a level-1 or level-2 heading
// marker anywhere, not only at the start of a line.
func hasHeading(content string) bool {
	return strings.Contains(content, "# ") || strings.Contains(content, "## ")
}

// firstLine returns the first non-blank line, or untitledTopic. The line is
// kept as written except for the carriage return of a CRLF line ending,
// which would otherwise end up inside the heading.
func firstLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimFunc(line, isBlank) != "" {
			return strings.TrimSuffix(line, "\r")
		}
	}
	return untitledTopic
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
