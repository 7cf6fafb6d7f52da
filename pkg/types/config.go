package types

import "fmt"

// OutputFormat selects how the CLI prints an ImportResult.
type OutputFormat string

const (
	// OutputText prints the outline only.
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates an output format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want text, json, or yaml)", s)
}

// ImportConfig holds defaults for the generate command, loaded from
// deck-outline.yaml or DECK_OUTLINE_* environment variables.
type ImportConfig struct {
	// Template is the presentation template identifier passed through to requests (default "default").
	Template string `json:"template" yaml:"template"`

	// CustomInstructions is appended to every outline unless overridden by a flag.
	CustomInstructions string `json:"instructions" yaml:"instructions"`

	// Output selects the result format: text, json, or yaml.
	Output OutputFormat `json:"output" yaml:"output"`
}
