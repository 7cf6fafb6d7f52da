// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deck-outline/internal/outline"
	"github.com/pdiddy/deck-outline/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a presentation outline from a JSON or Markdown file",
	Long: `Generate reads one file and prints its presentation outline. The file type
is inferred from the extension (.json, .md, .markdown) unless --type is set.
Use "-" to read from stdin; --type is then required.

Custom instructions are appended as a "Custom Requirements" section. The
template identifier is passed through with the request and reserved for
per-template formatting.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("type", "", "input type: json or markdown (default: from file extension)")
	generateCmd.Flags().String("template", "default", "presentation template identifier")
	generateCmd.Flags().String("instructions", "", "custom instructions appended to the outline")
	generateCmd.Flags().StringP("output", "o", "text", "output format: text, json, or yaml")

	for _, key := range []string{"template", "instructions", "output"} {
		if err := viper.BindPFlag(key, generateCmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := args[0]
	typeFlag, _ := cmd.Flags().GetString("type")

	cfg := loadImportConfig()
	format, err := types.ParseOutputFormat(string(cfg.Output))
	if err != nil {
		return err
	}

	req, err := newImportRequest(path, cmd.InOrStdin(), typeFlag, cfg)
	if err != nil {
		return err
	}

	log := logger.WithFields(logrus.Fields{"file": path, "type": req.FileType})
	log.Debug("generating outline")

	res, err := outline.Generate(cmd.Context(), req)
	if err != nil {
		log.WithField("kind", outline.KindOf(err)).WithError(err).Debug("generation failed")
		return errors.New(outline.UserMessage(err))
	}
	return writeResult(cmd.OutOrStdout(), res, format)
}

// loadImportConfig reads generate defaults from viper (flags, env, config file).
func loadImportConfig() types.ImportConfig {
	return types.ImportConfig{
		Template:           viper.GetString("template"),
		CustomInstructions: viper.GetString("instructions"),
		Output:             types.OutputFormat(viper.GetString("output")),
	}
}

// newImportRequest reads content from path (or stdin for "-") and resolves
// the file type from typeFlag or the path's extension.
func newImportRequest(path string, stdin io.Reader, typeFlag string, cfg types.ImportConfig) (types.ImportRequest, error) {
	var ft types.FileType
	var err error
	switch {
	case typeFlag != "":
		ft, err = types.ParseFileType(typeFlag)
	case path == "-":
		err = errors.New("reading from stdin requires --type")
	default:
		ft, err = types.FileTypeFromPath(path)
	}
	if err != nil {
		return types.ImportRequest{}, err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return types.ImportRequest{}, fmt.Errorf("reading input: %w", err)
	}

	return types.ImportRequest{
		Content:            string(data),
		FileType:           ft,
		Template:           cfg.Template,
		CustomInstructions: cfg.CustomInstructions,
	}, nil
}

// writeResult prints res in the requested format. Text output is the
// outline exactly as generated.
func writeResult(w io.Writer, res types.ImportResult, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, res.Outline)
		return err
	}
}
