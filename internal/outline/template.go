// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"strings"
)

const (
	defaultTitle  = "Presentation based on file content"
	untitledTopic = "Untitled topic"
	noDescription = "No description available"

	// overviewLimit is the number of runes of body text kept in the overview.
	overviewLimit = 100
)

// renderText builds the generic outline. An empty title uses defaultTitle.
func renderText(body, title, instructions string) string {
	if title == "" {
		title = defaultTitle
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "## Overview\n%s\n\n", overview(body))
	b.WriteString("## Main Content\n- Point one\n- Point two\n- Point three\n\n")
	b.WriteString("## Summary\nSummary outline generated from the provided content\n\n")
	writeInstructions(&b, instructions)
	return b.String()
}

// renderStructured builds the outline for a titled JSON document.
func renderStructured(title, description, instructions string) string {
	if description == "" {
		description = noDescription
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "## Introduction\n%s\n\n", description)
	b.WriteString("## Main Content\n- Core concepts\n- Implementation plan\n- Expected outcomes\n\n")
	fmt.Fprintf(&b, "## Conclusion\nSummary and outlook for %s\n\n", title)
	writeInstructions(&b, instructions)
	return b.String()
}

func writeInstructions(b *strings.Builder, instructions string) {
	if instructions == "" {
		return
	}
	fmt.Fprintf(b, "\n## Custom Requirements\n%s", instructions)
}

// overview truncates body to overviewLimit runes, appending "..." only when
// something was cut.
func overview(body string) string {
	runes := []rune(body)
	if len(runes) <= overviewLimit {
		return body
	}
	return string(runes[:overviewLimit]) + "..."
}
