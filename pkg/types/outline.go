// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FileType identifies the shape of uploaded content. The set is closed:
// only FileTypeJSON and FileTypeMarkdown are supported.
type FileType string

const (
	FileTypeJSON     FileType = "json"
	FileTypeMarkdown FileType = "markdown"
)

// ParseFileType maps a user-supplied type name to a FileType. Matching is
// case-insensitive and accepts "md" as an alias for markdown.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FileTypeJSON, nil
	case "markdown", "md":
		return FileTypeMarkdown, nil
	}
	return "", fmt.Errorf("unsupported file type %q (want json or markdown)", s)
}

// FileTypeFromPath infers the FileType from a file extension.
func FileTypeFromPath(path string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FileTypeJSON, nil
	case ".md", ".markdown":
		return FileTypeMarkdown, nil
	}
	return "", fmt.Errorf("cannot infer file type from %q: use .json, .md, or --type", filepath.Base(path))
}

// ImportRequest is one outline-generation request for uploaded content.
type ImportRequest struct {
	// Content is the raw file content.
	Content string `json:"content" yaml:"content"`

	// FileType declares how Content is interpreted.
	FileType FileType `json:"file_type" yaml:"file_type" validate:"required,oneof=json markdown"`

	// Template identifies the presentation template. It is reserved for
	// per-template formatting and is never interpreted.
	Template string `json:"template" yaml:"template"`

	// CustomInstructions is appended as a "Custom Requirements" section when
	// non-empty.
	CustomInstructions string `json:"custom_instructions,omitempty" yaml:"custom_instructions,omitempty"`
}

var validate = validator.New()

// Validate checks the request's struct tags.
func (r *ImportRequest) Validate() error {
	return validate.Struct(r)
}

// ImportResult holds a generated outline. A result is only returned on
// success, so Success is always true for a value produced by the generator.
type ImportResult struct {
	Outline string `json:"outline" yaml:"outline"`
	Success bool   `json:"success" yaml:"success"`
}
