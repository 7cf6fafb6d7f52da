// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline turns uploaded JSON or Markdown content into a
// heading-structured presentation outline.
//
// Generate is the single entry point. It dispatches on the request's file
// type to a Parser, and every failure is returned as an *Error that keeps its
// Kind while matching ErrParseFailed for callers that only show a generic
// message.
package outline

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/deck-outline/pkg/types"
)

// Parser builds an outline from content of one file type.
type Parser interface {
	// Outline returns the outline for content, appending instructions as a
	// custom requirements section when non-empty.
	Outline(content, instructions string) (string, error)
}

// ParserFor returns the Parser for ft, or an *Error of KindUnsupported.
func ParserFor(ft types.FileType) (Parser, error) {
	switch ft {
	case types.FileTypeJSON:
		return jsonParser{}, nil
	case types.FileTypeMarkdown:
		return markdownParser{}, nil
	default:
		return nil, unsupported(ft)
	}
}

// Generate validates req and builds its outline. The context is checked once
// on entry; generation itself does not block. On success the result always
// has Success set. On failure the result is zero and err is an *Error.
func Generate(ctx context.Context, req types.ImportRequest) (types.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return types.ImportResult{}, &Error{Kind: KindInternal, Err: err}
	}
	if err := req.Validate(); err != nil {
		return types.ImportResult{}, validationError(err)
	}

	p, err := ParserFor(req.FileType)
	if err != nil {
		return types.ImportResult{}, err
	}
	text, err := p.Outline(req.Content, req.CustomInstructions)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return types.ImportResult{}, e
		}
		return types.ImportResult{}, &Error{Kind: KindInternal, Err: err}
	}
	return types.ImportResult{Outline: text, Success: true}, nil
}

// validationError maps a validator failure to an *Error. FileType is the
// only validated field, so a validation failure is KindUnsupported.
func validationError(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &Error{Kind: KindUnsupported, Err: err}
	}
	return &Error{Kind: KindInternal, Err: err}
}
