// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		in      string
		want    FileType
		wantErr bool
	}{
		{in: "json", want: FileTypeJSON},
		{in: " JSON ", want: FileTypeJSON},
		{in: "markdown", want: FileTypeMarkdown},
		{in: "md", want: FileTypeMarkdown},
		{in: "pdf", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFileType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileTypeFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    FileType
		wantErr bool
	}{
		{path: "uploads/transcript.json", want: FileTypeJSON},
		{path: "notes.MD", want: FileTypeMarkdown},
		{path: "deck.markdown", want: FileTypeMarkdown},
		{path: "slides.pptx", wantErr: true},
		{path: "README", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FileTypeFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ImportRequest
		wantErr string
	}{
		{
			name: "json request",
			req:  ImportRequest{Content: "{}", FileType: FileTypeJSON, Template: "default"},
		},
		{
			name: "empty content is allowed",
			req:  ImportRequest{FileType: FileTypeMarkdown},
		},
		{
			name:    "missing file type",
			req:     ImportRequest{Content: "x"},
			wantErr: "FileType",
		},
		{
			name:    "unknown file type",
			req:     ImportRequest{Content: "x", FileType: "docx"},
			wantErr: "oneof",
		},
		{
			name: "template is not constrained",
			req:  ImportRequest{FileType: FileTypeJSON, Template: strings.Repeat("a", 4096)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml"} {
		got, err := ParseOutputFormat(s)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(s), got)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)
}
