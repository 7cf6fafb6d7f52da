// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"errors"
	"fmt"

	"github.com/pdiddy/deck-outline/pkg/types"
)

// Kind classifies why outline generation failed.
type Kind int

const (
	// KindInternal covers failures with no more specific kind, including
	// cancellation.
	KindInternal Kind = iota
	// KindFormat means the content did not parse as its declared type.
	KindFormat
	// KindUnsupported means the declared file type is not json or markdown.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindUnsupported:
		return "unsupported"
	default:
		return "internal"
	}
}

var (
	// ErrParseFailed is the generic failure shown to end users. Every *Error
	// matches it under errors.Is.
	ErrParseFailed = errors.New("File parsing failed")

	ErrFormat          = errors.New("JSON format error")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Error is returned by Generate. Kind is preserved so callers can decide how
// much detail to surface; Err holds the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	msg := ErrParseFailed.Error()
	if s := e.sentinel(); s != nil {
		msg += ": " + s.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is ErrParseFailed or the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	if target == ErrParseFailed {
		return true
	}
	s := e.sentinel()
	return s != nil && target == s
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindFormat:
		return ErrFormat
	case KindUnsupported:
		return ErrUnsupportedType
	}
	return nil
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// UserMessage returns the message to show an end user for err. Generation
// failures collapse to ErrParseFailed's text; other errors are returned as-is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrParseFailed) {
		return ErrParseFailed.Error()
	}
	return err.Error()
}

func formatError(err error) *Error {
	return &Error{Kind: KindFormat, Err: err}
}

func unsupported(ft types.FileType) *Error {
	return &Error{Kind: KindUnsupported, Err: fmt.Errorf("file type %q", string(ft))}
}
